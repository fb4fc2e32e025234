package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ait/internal/models/request_models"
	"ait/internal/models/response_models"
	"ait/internal/services"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// maxChatBodyBytes leaves room for JSON escaping of a full-length message.
const maxChatBodyBytes = 64 << 10

// ReplyHandler always answers 200 with {"reply": ...}; the chat widget only ever reads that field.
func (ch *ChatController) ReplyHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxChatBodyBytes)

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, response_models.ChatResponse{Reply: ch.chatService.Unreadable()})
		return
	}

	reply := ch.chatService.Reply(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, response_models.ChatResponse{Reply: reply})
}
