package handlers

import (
	"net/http"

	chatSvc "physiocare/services/chat"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the messaging endpoints.
type ChatHandler struct {
	ChatService chatSvc.ChatService
}

// SendMessageHandler handles POST /api/chat/messages.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var input struct {
		ReceiverID string `json:"receiverId" binding:"required"`
		Content    string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	senderID := c.GetString("userID")
	threadID, messageID, err := h.ChatService.SendMessage(c.Request.Context(), senderID, input.ReceiverID, input.Content)
	if err != nil {
		utils.GetLogger().Error("Failed to send message", zap.String("senderID", senderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Mesaj gönderilemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"threadId": threadID, "messageId": messageID})
}

// ListThreadsHandler handles GET /api/chat/threads for the caller.
func (h *ChatHandler) ListThreadsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	threads, err := h.ChatService.ThreadsForUser(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list threads", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sohbetler yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, threads)
}

// ListMessagesHandler handles GET /api/chat/threads/:id/messages.
func (h *ChatHandler) ListMessagesHandler(c *gin.Context) {
	threadID := c.Param("id")
	messages, failures, err := h.ChatService.Messages(c.Request.Context(), threadID)
	if err != nil {
		utils.GetLogger().Error("Failed to list messages", zap.String("threadID", threadID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Mesajlar yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "failures": failures})
}

// StreamMessagesHandler handles GET /api/chat/threads/:id/stream as
// server-sent events.
func (h *ChatHandler) StreamMessagesHandler(c *gin.Context) {
	sub := h.ChatService.WatchMessages(c.Request.Context(), c.Param("id"))
	defer sub.Close()
	streamResource(c, sub.Updates())
}

// MarkThreadReadHandler handles POST /api/chat/threads/:id/read. It zeroes
// the caller's unread counter on the thread.
func (h *ChatHandler) MarkThreadReadHandler(c *gin.Context) {
	threadID := c.Param("id")
	userID := c.GetString("userID")
	if err := h.ChatService.MarkThreadRead(c.Request.Context(), threadID, userID); err != nil {
		utils.GetLogger().Error("Failed to mark thread read", zap.String("threadID", threadID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sohbet güncellenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"threadId": threadID})
}
