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

// HubHandler handles HTTP requests for hub operations
type HubHandler struct {
	hubService service.HubServiceInterface
}

// NewHubHandler creates a new hub handler
func NewHubHandler(hubService service.HubServiceInterface) *HubHandler {
	return &HubHandler{
		hubService: hubService,
	}
}

// CreateHub handles POST /hubs
// @Summary Create a new hub
// @Description Create a new venue that posts shifts
// @Tags hubs
// @Accept json
// @Produce json
// @Param hub body service.CreateHubRequest true "Hub data"
// @Success 201 {object} service.HubResponse "Successfully created hub"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Hub name already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs [post]
func (h *HubHandler) CreateHub(c *gin.Context) {
	var req service.CreateHubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hub, err := h.hubService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHubExists) {
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

	c.JSON(http.StatusCreated, hub)
}

// GetHub handles GET /hubs/:id
// @Summary Get hub by ID
// @Description Get a specific hub by its UUID
// @Tags hubs
// @Accept json
// @Produce json
// @Param id path string true "Hub ID (UUID)"
// @Success 200 {object} service.HubResponse "Successfully retrieved hub"
// @Failure 400 {object} map[string]interface{} "Invalid hub ID"
// @Failure 404 {object} map[string]interface{} "Hub not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs/{id} [get]
func (h *HubHandler) GetHub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub ID"})
		return
	}

	hub, err := h.hubService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrHubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hub)
}

// GetAllHubs handles GET /hubs
// @Summary List all hubs
// @Description Get all hubs with pagination
// @Tags hubs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.HubListResponse "Successfully retrieved hubs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs [get]
func (h *HubHandler) GetAllHubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	hubs, err := h.hubService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hubs)
}

// UpdateHub handles PUT /hubs/:id
// @Summary Update hub
// @Description Update an existing hub's details
// @Tags hubs
// @Accept json
// @Produce json
// @Param id path string true "Hub ID (UUID)"
// @Param hub body service.UpdateHubRequest true "Hub data"
// @Success 200 {object} service.HubResponse "Successfully updated hub"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Hub not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs/{id} [put]
func (h *HubHandler) UpdateHub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub ID"})
		return
	}

	var req service.UpdateHubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hub, err := h.hubService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hub)
}

// DeleteHub handles DELETE /hubs/:id
// @Summary Delete hub
// @Description Delete a hub and its templates, shifts and assignments
// @Tags hubs
// @Accept json
// @Produce json
// @Param id path string true "Hub ID (UUID)"
// @Success 204 "Successfully deleted hub"
// @Failure 400 {object} map[string]interface{} "Invalid hub ID"
// @Failure 404 {object} map[string]interface{} "Hub not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs/{id} [delete]
func (h *HubHandler) DeleteHub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub ID"})
		return
	}

	if err := h.hubService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrHubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
