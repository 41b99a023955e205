package handlers

import (
	"errors"
	"net/http"
	"time"

	"healthmate-backend/models"
	"healthmate-backend/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles HTTP requests for the AI coaching chat
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest represents the request body for a chat turn
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// messageResponse is the wire shape of one chat message
type messageResponse struct {
	Role      models.ChatRole `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
}

// Send handles POST /api/chat/message
func (h *ChatHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatService.SendMessage(c.Request.Context(), currentUserID(c), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrAIUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get AI response"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Role:      reply.Role,
		Content:   reply.Content,
		Timestamp: reply.Timestamp,
	})
}

// History handles GET /api/chat/history
func (h *ChatHandler) History(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	messages, err := h.chatService.History(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, messageResponse{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	c.JSON(http.StatusOK, gin.H{"messages": out})
}
