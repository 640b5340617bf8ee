package handlers

import (
	"errors"
	"net/http"

	"physiocare/models"
	formSvc "physiocare/services/form"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormHandler exposes the evaluation-form library and response endpoints.
type FormHandler struct {
	FormService formSvc.FormService
}

// ListFormsHandler handles GET /api/forms. The list carries the caller's
// completion flags; undecodable documents are reported, not dropped.
func (h *FormHandler) ListFormsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	list, err := h.FormService.GetForms(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list forms", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Formlar yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// StreamFormsHandler handles GET /api/forms/stream as server-sent events.
// Each remote change re-emits the caller's annotated library until the
// client disconnects.
func (h *FormHandler) StreamFormsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	sub := h.FormService.Forms(c.Request.Context(), userID)
	defer sub.Close()
	streamResource(c, sub.Updates())
}

// GetFormHandler handles GET /api/forms/:id.
func (h *FormHandler) GetFormHandler(c *gin.Context) {
	id := c.Param("id")
	form, err := h.FormService.GetFormByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, formSvc.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to load form", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Form yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, form)
}

// StreamFormHandler handles GET /api/forms/:id/stream as server-sent events.
func (h *FormHandler) StreamFormHandler(c *gin.Context) {
	sub := h.FormService.FormByID(c.Request.Context(), c.Param("id"))
	defer sub.Close()
	streamResource(c, sub.Updates())
}

// SaveResponseHandler handles POST /api/responses. The caller's identity
// overrides any userId in the body; a zero score is computed server-side.
func (h *FormHandler) SaveResponseHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var resp models.FormResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp.UserID = c.GetString("userID")

	id, err := h.FormService.SaveResponse(c.Request.Context(), resp)
	if err != nil {
		logger.Error("Failed to save response", zap.String("formID", resp.FormID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Yanıt kaydedilemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListResponsesHandler handles GET /api/responses for the caller.
func (h *FormHandler) ListResponsesHandler(c *gin.Context) {
	userID := c.GetString("userID")
	responses, failures, err := h.FormService.ResponsesByUser(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list responses", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Yanıtlar yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": responses, "failures": failures})
}

// GetResponseHandler handles GET /api/responses/:id.
func (h *FormHandler) GetResponseHandler(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.FormService.ResponseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, formSvc.ErrResponseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Yanıt bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to load response", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Yanıt yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteResponseHandler handles DELETE /api/responses/:id.
func (h *FormHandler) DeleteResponseHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.FormService.DeleteResponse(c.Request.Context(), id); err != nil {
		if errors.Is(err, formSvc.ErrResponseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Yanıt bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to delete response", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Yanıt silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ShareResponseHandler handles POST /api/responses/:id/share.
func (h *FormHandler) ShareResponseHandler(c *gin.Context) {
	var input struct {
		ReceiverID string `json:"receiverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	senderID := c.GetString("userID")
	threadID, err := h.FormService.ShareResponse(c.Request.Context(), id, senderID, input.ReceiverID)
	if err != nil {
		if errors.Is(err, formSvc.ErrResponseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Yanıt bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to share response", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Yanıt paylaşılamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"threadId": threadID})
}
