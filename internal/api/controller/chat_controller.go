package controller

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leon37/RoastMaster/internal/api/middleware"
	"github.com/leon37/RoastMaster/internal/api/response"
	"github.com/leon37/RoastMaster/internal/model"
	"github.com/leon37/RoastMaster/internal/service"
)

type ChatController struct {
	roaster *service.RoastService
}

func NewChatController(roaster *service.RoastService) *ChatController {
	return &ChatController{roaster: roaster}
}

type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	Context model.ChatContext `json:"context"`
}

type ChatResponse struct {
	Response    string `json:"response"`
	Personality string `json:"personality"`
}

// Chat 和 AI 斗嘴
// @Summary 聊天
// @Description 常见关键词直接返回固定回复，其余交给 LLM。context 最多保留最近 5 轮。
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "消息和最近的对话"
// @Success 200 {object} response.Response{data=controller.ChatResponse}
// @Failure 400 {object} response.Response "缺少 message"
// @Router /chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		response.Error(c, http.StatusBadRequest, "Message is required")
		return
	}

	slog.Info("收到聊天请求",
		"request_id", c.GetString(middleware.RequestIDKey),
		"context_turns", len(req.Context))

	reply := ctrl.roaster.Chat(c.Request.Context(), req.Message, req.Context)
	response.Success(c, ChatResponse{Response: reply, Personality: "sassy"})
}

type ComebackRequest struct {
	Message string            `json:"message" binding:"required"`
	Context model.ChatContext `json:"context"`
}

type ComebackResponse struct {
	Comeback string `json:"comeback"`
}

// Comeback 回怼一句
// @Summary 快速回怼
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ComebackRequest true "要回怼的话"
// @Success 200 {object} response.Response{data=controller.ComebackResponse}
// @Failure 400 {object} response.Response "缺少 message"
// @Router /comeback [post]
func (ctrl *ChatController) Comeback(c *gin.Context) {
	var req ComebackRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		response.Error(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply := ctrl.roaster.Comeback(c.Request.Context(), req.Message, req.Context)
	response.Success(c, ComebackResponse{Comeback: reply})
}
