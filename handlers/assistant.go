package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/assistant"
	"tripwise/utils"
)

// AssistantHandler exposes the conversational assistant.
type AssistantHandler struct {
	Service assistant.Service
	Logger  *zap.Logger
}

func NewAssistantHandler(service assistant.Service, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Service: service, Logger: logger}
}

// Chat handles POST /api/v2/assistant/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid assistant request", err.Error())
		return
	}

	resp, err := h.Service.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("assistant message failed", zap.Error(err), zap.String("user", req.UserID))
		utils.JSONError(c, http.StatusInternalServerError, "Assistant failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
