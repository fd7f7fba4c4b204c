package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfessionalHandler handles HTTP requests for professional operations
type ProfessionalHandler struct {
	professionalService service.ProfessionalServiceInterface
}

// NewProfessionalHandler creates a new professional handler
func NewProfessionalHandler(professionalService service.ProfessionalServiceInterface) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalService: professionalService,
	}
}

// CreateProfessional handles POST /professionals
// @Summary Create a new professional
// @Description Register a gig professional who can pick up shifts
// @Tags professionals
// @Accept json
// @Produce json
// @Param professional body service.CreateProfessionalRequest true "Professional data"
// @Success 201 {object} service.ProfessionalResponse "Successfully created professional"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /professionals [post]
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var req service.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	professional, err := h.professionalService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfessionalExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, professional)
}

// GetProfessional handles GET /professionals/:id
// @Summary Get professional by ID
// @Description Get a specific professional by their UUID
// @Tags professionals
// @Accept json
// @Produce json
// @Param id path string true "Professional ID (UUID)"
// @Success 200 {object} service.ProfessionalResponse "Successfully retrieved professional"
// @Failure 400 {object} map[string]interface{} "Invalid professional ID"
// @Failure 404 {object} map[string]interface{} "Professional not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /professionals/{id} [get]
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid professional ID"})
		return
	}

	professional, err := h.professionalService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfessionalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, professional)
}

// GetAllProfessionals handles GET /professionals
// @Summary List all professionals
// @Description Get all professionals with pagination and optional active-only filtering
// @Tags professionals
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param active query bool false "Only return active professionals"
// @Success 200 {object} service.ProfessionalListResponse "Successfully retrieved professionals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /professionals [get]
func (h *ProfessionalHandler) GetAllProfessionals(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	activeOnly := c.Query("active") == "true"

	professionals, err := h.professionalService.GetAll(page, pageSize, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, professionals)
}

// UpdateProfessional handles PUT /professionals/:id
// @Summary Update professional
// @Description Update an existing professional's details
// @Tags professionals
// @Accept json
// @Produce json
// @Param id path string true "Professional ID (UUID)"
// @Param professional body service.UpdateProfessionalRequest true "Professional data"
// @Success 200 {object} service.ProfessionalResponse "Successfully updated professional"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Professional not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /professionals/{id} [put]
func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid professional ID"})
		return
	}

	var req service.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	professional, err := h.professionalService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfessionalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, professional)
}

// DeleteProfessional handles DELETE /professionals/:id
// @Summary Delete professional
// @Description Delete a professional and their assignments
// @Tags professionals
// @Accept json
// @Produce json
// @Param id path string true "Professional ID (UUID)"
// @Success 204 "Successfully deleted professional"
// @Failure 400 {object} map[string]interface{} "Invalid professional ID"
// @Failure 404 {object} map[string]interface{} "Professional not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /professionals/{id} [delete]
func (h *ProfessionalHandler) DeleteProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid professional ID"})
		return
	}

	if err := h.professionalService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrProfessionalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
