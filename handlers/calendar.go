package handlers

import (
	"net/http"

	apptSvc "physiocare/services/appointment"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the physiotherapist calendar view backed by the
// per-therapist session hub. Every mutation answers with the fresh snapshot.
type CalendarHandler struct {
	Hub *apptSvc.CalendarHub
}

// GetCalendarHandler handles GET /api/calendar.
func (h *CalendarHandler) GetCalendarHandler(c *gin.Context) {
	cal := h.Hub.Get(c.Request.Context(), c.GetString("userID"))
	c.JSON(http.StatusOK, cal.State())
}

// RefreshCalendarHandler handles POST /api/calendar/refresh. This is also
// the recovery path out of an error state.
func (h *CalendarHandler) RefreshCalendarHandler(c *gin.Context) {
	cal := h.Hub.Get(c.Request.Context(), c.GetString("userID"))
	cal.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, cal.State())
}

// SelectDateHandler handles POST /api/calendar/date.
func (h *CalendarHandler) SelectDateHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cal := h.Hub.Get(c.Request.Context(), c.GetString("userID"))
	cal.SelectDate(c.Request.Context(), input.Date)
	c.JSON(http.StatusOK, cal.State())
}

// BlockCalendarSlotHandler handles POST /api/calendar/block for the
// selected date.
func (h *CalendarHandler) BlockCalendarSlotHandler(c *gin.Context) {
	var input struct {
		TimeSlot string `json:"timeSlot" binding:"required"`
		Reason   string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cal := h.Hub.Get(c.Request.Context(), c.GetString("userID"))
	cal.Block(c.Request.Context(), input.TimeSlot, input.Reason)
	c.JSON(http.StatusOK, cal.State())
}

// UnblockCalendarSlotHandler handles POST /api/calendar/unblock for the
// selected date.
func (h *CalendarHandler) UnblockCalendarSlotHandler(c *gin.Context) {
	var input struct {
		TimeSlot string `json:"timeSlot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cal := h.Hub.Get(c.Request.Context(), c.GetString("userID"))
	cal.Unblock(c.Request.Context(), input.TimeSlot)
	c.JSON(http.StatusOK, cal.State())
}
