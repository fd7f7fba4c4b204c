package handlers

import (
	"errors"
	"net/http"

	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftTemplateHandler handles HTTP requests for shift template operations
type ShiftTemplateHandler struct {
	templateService service.ShiftTemplateServiceInterface
}

// NewShiftTemplateHandler creates a new shift template handler
func NewShiftTemplateHandler(templateService service.ShiftTemplateServiceInterface) *ShiftTemplateHandler {
	return &ShiftTemplateHandler{
		templateService: templateService,
	}
}

// CreateShiftTemplate handles POST /shift-templates
// @Summary Create a new shift template
// @Description Create a recurring weekly time slot for a hub. An end time at or before the start time means the slot runs past midnight.
// @Tags shift-templates
// @Accept json
// @Produce json
// @Param template body service.CreateShiftTemplateRequest true "Shift template data"
// @Success 201 {object} service.ShiftTemplateResponse "Successfully created shift template"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time format"
// @Failure 404 {object} map[string]interface{} "Hub not found"
// @Failure 409 {object} map[string]interface{} "Duplicate template for this day and time"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-templates [post]
func (h *ShiftTemplateHandler) CreateShiftTemplate(c *gin.Context) {
	var req service.CreateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHubNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrShiftTemplateExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTimeOfDay),
			errors.Is(err, apperrors.ErrHubSuspended),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetShiftTemplate handles GET /shift-templates/:id
// @Summary Get shift template by ID
// @Description Get a specific shift template by its UUID
// @Tags shift-templates
// @Accept json
// @Produce json
// @Param id path string true "Shift template ID (UUID)"
// @Success 200 {object} service.ShiftTemplateResponse "Successfully retrieved shift template"
// @Failure 400 {object} map[string]interface{} "Invalid shift template ID"
// @Failure 404 {object} map[string]interface{} "Shift template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-templates/{id} [get]
func (h *ShiftTemplateHandler) GetShiftTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift template ID"})
		return
	}

	template, err := h.templateService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrShiftTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, template)
}

// GetHubShiftTemplates handles GET /hubs/:id/shift-templates
// @Summary List a hub's shift templates
// @Description Get all templates of a hub in their stable authoring order
// @Tags shift-templates
// @Accept json
// @Produce json
// @Param id path string true "Hub ID (UUID)"
// @Success 200 {array} service.ShiftTemplateResponse "Successfully retrieved shift templates"
// @Failure 400 {object} map[string]interface{} "Invalid hub ID"
// @Failure 404 {object} map[string]interface{} "Hub not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs/{id}/shift-templates [get]
func (h *ShiftTemplateHandler) GetHubShiftTemplates(c *gin.Context) {
	hubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub ID"})
		return
	}

	templates, err := h.templateService.GetByHub(hubID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// UpdateShiftTemplate handles PUT /shift-templates/:id
// @Summary Update shift template
// @Description Update an existing shift template
// @Tags shift-templates
// @Accept json
// @Produce json
// @Param id path string true "Shift template ID (UUID)"
// @Param template body service.UpdateShiftTemplateRequest true "Shift template data"
// @Success 200 {object} service.ShiftTemplateResponse "Successfully updated shift template"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Shift template not found"
// @Failure 409 {object} map[string]interface{} "Duplicate template for this day and time"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-templates/{id} [put]
func (h *ShiftTemplateHandler) UpdateShiftTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift template ID"})
		return
	}

	var req service.UpdateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrShiftTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrShiftTemplateExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTimeOfDay),
			errors.Is(err, apperrors.ErrInvalidDayOfWeek),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteShiftTemplate handles DELETE /shift-templates/:id
// @Summary Delete shift template
// @Description Delete a shift template. Existing shifts keep their times but lose the template link.
// @Tags shift-templates
// @Accept json
// @Produce json
// @Param id path string true "Shift template ID (UUID)"
// @Success 204 "Successfully deleted shift template"
// @Failure 400 {object} map[string]interface{} "Invalid shift template ID"
// @Failure 404 {object} map[string]interface{} "Shift template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-templates/{id} [delete]
func (h *ShiftTemplateHandler) DeleteShiftTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift template ID"})
		return
	}

	if err := h.templateService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrShiftTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
