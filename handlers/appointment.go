package handlers

import (
	"errors"
	"net/http"

	"physiocare/models"
	apptSvc "physiocare/services/appointment"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking, cancellation and slot endpoints.
type AppointmentHandler struct {
	AppointmentService apptSvc.AppointmentService
}

// BookHandler handles POST /api/appointments. The caller becomes the patient.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appt.UserID = c.GetString("userID")

	booked, err := h.AppointmentService.Book(c.Request.Context(), appt)
	if err != nil {
		switch {
		case errors.Is(err, apptSvc.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Bu zaman dilimi dolu"})
		case errors.Is(err, apptSvc.ErrUnknownSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz zaman dilimi"})
		default:
			utils.GetLogger().Error("Failed to book appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Randevu oluşturulamadı"})
		}
		return
	}
	c.JSON(http.StatusOK, booked)
}

// CancelHandler handles POST /api/appointments/:id/cancel. The canceller is
// recorded so both sides can see who backed out.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.AppointmentService.Cancel(c.Request.Context(), id, c.GetString("userID")); err != nil {
		if errors.Is(err, apptSvc.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Randevu bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to cancel appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Randevu iptal edilemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

// UpdateNotesHandler handles PUT /api/appointments/:id/notes.
func (h *AppointmentHandler) UpdateNotesHandler(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.AppointmentService.UpdateNotes(c.Request.Context(), id, input.Notes); err != nil {
		if errors.Is(err, apptSvc.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Randevu bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to update notes", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Notlar kaydedilemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListMineHandler handles GET /api/appointments. Physiotherapists get their
// calendar's list, patients get their own bookings.
func (h *AppointmentHandler) ListMineHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var (
		appts    []models.Appointment
		failures []models.DecodeFailure
		err      error
	)
	if c.GetString("role") == string(models.RolePhysiotherapist) {
		appts, failures, err = h.AppointmentService.ListForPhysiotherapist(c.Request.Context(), userID)
	} else {
		appts, failures, err = h.AppointmentService.ListForPatient(c.Request.Context(), userID)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Randevular yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "failures": failures})
}

// AvailableSlotsHandler handles GET /api/appointments/slots?physioId=&date=.
func (h *AppointmentHandler) AvailableSlotsHandler(c *gin.Context) {
	physioID := c.Query("physioId")
	date := c.Query("date")
	if physioID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "physioId and date are required"})
		return
	}

	slots, err := h.AppointmentService.AvailableSlots(c.Request.Context(), physioID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to load availability", zap.String("physioID", physioID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Uygun zaman dilimleri yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// BlockSlotHandler handles POST /api/appointments/blocked.
func (h *AppointmentHandler) BlockSlotHandler(c *gin.Context) {
	var input struct {
		Date     string `json:"date" binding:"required"`
		TimeSlot string `json:"timeSlot" binding:"required"`
		Reason   string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	physioID := c.GetString("userID")
	if err := h.AppointmentService.BlockSlot(c.Request.Context(), physioID, input.Date, input.TimeSlot, input.Reason); err != nil {
		if errors.Is(err, apptSvc.ErrUnknownSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz zaman dilimi"})
			return
		}
		utils.GetLogger().Error("Failed to block slot", zap.String("physioID", physioID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Zaman dilimi kapatılamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked": input.TimeSlot})
}

// UnblockSlotHandler handles DELETE /api/appointments/blocked.
func (h *AppointmentHandler) UnblockSlotHandler(c *gin.Context) {
	var input struct {
		Date     string `json:"date" binding:"required"`
		TimeSlot string `json:"timeSlot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	physioID := c.GetString("userID")
	if err := h.AppointmentService.UnblockSlot(c.Request.Context(), physioID, input.Date, input.TimeSlot); err != nil {
		if errors.Is(err, apptSvc.ErrSlotNotBlocked) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kapalı zaman dilimi bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to unblock slot", zap.String("physioID", physioID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Zaman dilimi açılamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unblocked": input.TimeSlot})
}

// BlockedSlotsHandler handles GET /api/appointments/blocked?date=.
func (h *AppointmentHandler) BlockedSlotsHandler(c *gin.Context) {
	physioID := c.GetString("userID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	blocked, err := h.AppointmentService.BlockedSlots(c.Request.Context(), physioID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to list blocked slots", zap.String("physioID", physioID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kapalı zaman dilimleri yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedSlots": blocked})
}
