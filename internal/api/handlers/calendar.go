package handlers

import (
	"errors"
	"net/http"
	"time"

	"hospogo-backend/internal/calendar"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarHandler handles HTTP requests for the bucketed calendar
type CalendarHandler struct {
	calendarService service.CalendarServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService service.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// GetBuckets handles GET /hubs/:id/calendar/buckets
// @Summary Get the bucketed calendar for a hub
// @Description Groups the hub's shifts into template buckets for the month, week or day containing the given date. Weeks start on Sunday. Shifts that match no template are returned ungrouped.
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Hub ID (UUID)"
// @Param view query string false "Calendar view: month, week or day" default(month)
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.CalendarResponse "Successfully computed calendar buckets"
// @Failure 400 {object} map[string]interface{} "Invalid hub ID, view or date"
// @Failure 404 {object} map[string]interface{} "Hub not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hubs/{id}/calendar/buckets [get]
func (h *CalendarHandler) GetBuckets(c *gin.Context) {
	hubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub ID"})
		return
	}

	view := calendar.View(c.DefaultQuery("view", string(calendar.ViewMonth)))

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed := calendar.ParseInstant(raw)
		if parsed.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = parsed
	}

	resp, err := h.calendarService.Buckets(hubID, view, date)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHubNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidView):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
