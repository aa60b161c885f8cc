package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/dto"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/service"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/response"
)

// DepartmentHandler 院系模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments 获取院系列表
// GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

// GetDepartment 获取院系详情（响应携带当前 row_version，编辑表单须回传）
// GET /api/v1/departments/:id
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	dept, err := h.deptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// CreateDepartment 创建院系
// POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.Created(c, dept)
}

// UpdateDepartment 更新院系（乐观锁）
// PUT /api/v1/departments/:id
//
// 请求体须携带读取时的 row_version；版本不匹配返回 409，
// 响应 data 为冲突对照（数据库当前值 / 用户提交值 / 是否已删除），
// 用户可携带最新版本号重试或放弃修改
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	dept, err := h.deptSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// DeleteDepartment 删除院系（乐观锁）
// DELETE /api/v1/departments/:id?row_version=N
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.DeleteDepartmentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.deptSvc.Delete(c.Request.Context(), id, req.RowVersion); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleDepartmentError 统一处理院系模块业务错误
func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	var conflictErr *service.DepartmentConflictError
	if errors.As(err, &conflictErr) {
		if conflictErr.Conflict.Deleted {
			response.Conflict(c, 15003, "记录已被其他用户删除", conflictErr.Conflict)
			return
		}
		response.Conflict(c, 15002, "记录已被其他用户修改", conflictErr.Conflict)
		return
	}

	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 15001, "院系不存在")
	case errors.Is(err, service.ErrAdministratorNotFound):
		response.BadRequest(c, 15004, "指定的系主任不存在")
	case errors.Is(err, service.ErrDepartmentHasCourses):
		response.BadRequest(c, 15005, "院系下存在课程，无法删除")
	default:
		response.InternalError(c)
	}
}
