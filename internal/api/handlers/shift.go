package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hospogo-backend/internal/database/models"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for shift and assignment operations
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// CreateShift handles POST /shifts
// @Summary Create a new shift
// @Description Create a concrete shift occurrence on a hub's calendar
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Successfully created shift"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Hub or template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHubNotFound),
			errors.Is(err, apperrors.ErrShiftTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTimeRange),
			errors.Is(err, apperrors.ErrHubSuspended),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift handles GET /shifts/:id
// @Summary Get shift by ID
// @Description Get a specific shift with its assignments
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 400 {object} map[string]interface{} "Invalid shift ID"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrShiftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// GetHubShifts handles GET /hubs/:id/shifts
// @Summary List a hub's shifts
// @Description Get shifts of a hub with pagination and optional open-only filtering
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Hub ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param open query bool false "Only return open shifts"
// @Success 200 {object} service.ShiftListResponse "Successfully retrieved shifts"
// @Failure 400 {object} map[string]interface{} "Invalid hub ID"
// @Failure 404 {object} map[string]interface{} "Hub not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs/{id}/shifts [get]
func (h *ShiftHandler) GetHubShifts(c *gin.Context) {
	hubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	openOnly := c.Query("open") == "true"

	shifts, err := h.shiftService.GetByHub(hubID, page, pageSize, openOnly)
	if err != nil {
		if errors.Is(err, apperrors.ErrHubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update shift
// @Description Update an existing shift's times, status or notes
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.UpdateShiftRequest true "Shift data"
// @Success 200 {object} service.ShiftResponse "Successfully updated shift"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTimeRange),
			errors.Is(err, apperrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete shift
// @Description Delete a shift and its assignments
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Successfully deleted shift"
// @Failure 400 {object} map[string]interface{} "Invalid shift ID"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrShiftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignProfessional handles POST /shifts/:id/assignments/:professional_id
// @Summary Assign a professional to a shift
// @Description Book a professional onto an open shift, checking for schedule conflicts
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param professional_id path string true "Professional ID (UUID)"
// @Success 201 {object} service.ShiftResponse "Successfully assigned professional"
// @Failure 400 {object} map[string]interface{} "Shift not open or professional inactive"
// @Failure 404 {object} map[string]interface{} "Shift or professional not found"
// @Failure 409 {object} map[string]interface{} "Schedule conflict or duplicate assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id}/assignments/{professional_id} [post]
func (h *ShiftHandler) AssignProfessional(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}
	professionalID, err := uuid.Parse(c.Param("professional_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid professional ID"})
		return
	}

	shift, err := h.shiftService.Assign(shiftID, professionalID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrShiftNotFound),
			errors.Is(err, apperrors.ErrProfessionalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrScheduleConflict),
			errors.Is(err, apperrors.ErrShiftAssignmentExists),
			errors.Is(err, apperrors.ErrShiftFullyStaffed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrShiftNotOpen),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// UnassignProfessional handles DELETE /shifts/:id/assignments/:professional_id
// @Summary Remove a professional from a shift
// @Description Delete an assignment; a booked shift reopens
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param professional_id path string true "Professional ID (UUID)"
// @Success 204 "Successfully removed assignment"
// @Failure 400 {object} map[string]interface{} "Invalid IDs"
// @Failure 404 {object} map[string]interface{} "Shift or assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id}/assignments/{professional_id} [delete]
func (h *ShiftHandler) UnassignProfessional(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}
	professionalID, err := uuid.Parse(c.Param("professional_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid professional ID"})
		return
	}

	if err := h.shiftService.Unassign(shiftID, professionalID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateAssignmentRequest represents the request to change an assignment status
type UpdateAssignmentRequest struct {
	Status models.AssignmentStatus `json:"status" binding:"required"`
}

// UpdateAssignment handles PATCH /shifts/:id/assignments/:professional_id
// @Summary Confirm or decline an assignment
// @Description Change the status of an existing assignment
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param professional_id path string true "Professional ID (UUID)"
// @Param request body UpdateAssignmentRequest true "New status"
// @Success 204 "Successfully updated assignment"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id}/assignments/{professional_id} [patch]
func (h *ShiftHandler) UpdateAssignment(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}
	professionalID, err := uuid.Parse(c.Param("professional_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid professional ID"})
		return
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.shiftService.UpdateAssignmentStatus(shiftID, professionalID, req.Status); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrShiftAssignmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
