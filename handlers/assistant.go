package handlers

import (
	"net/http"

	"habi/models"
	"habi/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the chat assistant endpoints.
type AssistantHandler struct {
	Svc    assistant.AssistantService
	Logger *zap.Logger
}

func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Logger: logger}
}

// Chat handles POST /api/assistant/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	resp, err := h.Svc.ProcessMessage(c.Request.Context(), userID, req.Text)
	if err != nil {
		h.Logger.Error("Chat: failed to process message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "I'm sorry, I encountered an error. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetConversation handles GET /api/assistant/conversation.
func (h *AssistantHandler) GetConversation(c *gin.Context) {
	userID := c.GetString("userID")
	conv, err := h.Svc.GetConversation(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("GetConversation: failed to load session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// ClearConversation handles DELETE /api/assistant/conversation.
func (h *AssistantHandler) ClearConversation(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Svc.ClearConversation(c.Request.Context(), userID); err != nil {
		h.Logger.Error("ClearConversation: failed to clear session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
