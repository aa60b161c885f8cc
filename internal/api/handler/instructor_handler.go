package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/dto"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/service"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/response"
)

// InstructorHandler 教师模块 HTTP 处理器
type InstructorHandler struct {
	instructorSvc service.InstructorService
}

// NewInstructorHandler 创建 InstructorHandler
func NewInstructorHandler(instructorSvc service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorSvc: instructorSvc}
}

// ListInstructors 获取教师列表（含办公室与授课信息）
// GET /api/v1/instructors
func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	page, pageSize := normalizePagination(
		queryInt(c, "page"), queryInt(c, "page_size"))

	instructors, total, err := h.instructorSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, instructors, total, page, pageSize)
}

// GetInstructor 获取教师详情
// GET /api/v1/instructors/:id
func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	instructor, err := h.instructorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.OK(c, instructor)
}

// CreateInstructor 创建教师（可同时指定办公室与授课课程）
// POST /api/v1/instructors
func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	instructor, err := h.instructorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.Created(c, instructor)
}

// UpdateInstructor 更新教师
// PUT /api/v1/instructors/:id
func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	instructor, err := h.instructorSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.OK(c, instructor)
}

// DeleteInstructor 删除教师
// DELETE /api/v1/instructors/:id
func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.instructorSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleInstructorError 统一处理教师模块业务错误
func (h *InstructorHandler) handleInstructorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInstructorNotFound):
		response.NotFound(c, 12001, "教师不存在")
	case errors.Is(err, service.ErrCourseNotFound):
		response.BadRequest(c, 12002, "指定的课程不存在")
	default:
		response.InternalError(c)
	}
}
