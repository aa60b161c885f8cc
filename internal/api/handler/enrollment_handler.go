package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/dto"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/service"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/response"
)

// EnrollmentHandler 选课模块 HTTP 处理器
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler 创建 EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// ListEnrollments 获取选课列表（可按学生/课程过滤）
// GET /api/v1/enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	var req dto.EnrollmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	page, pageSize := normalizePagination(req.Page, req.PageSize)

	enrollments, total, err := h.enrollmentSvc.List(c.Request.Context(), &req, page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, enrollments, total, page, pageSize)
}

// GetEnrollment 获取选课记录详情
// GET /api/v1/enrollments/:id
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	enrollment, err := h.enrollmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// CreateEnrollment 创建选课记录
// POST /api/v1/enrollments
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	enrollment, err := h.enrollmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.Created(c, enrollment)
}

// UpdateEnrollment 更新选课记录（成绩）
// PUT /api/v1/enrollments/:id
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	enrollment, err := h.enrollmentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// DeleteEnrollment 删除选课记录
// DELETE /api/v1/enrollments/:id
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.enrollmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleEnrollmentError 统一处理选课模块业务错误
func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.NotFound(c, 14001, "选课记录不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.BadRequest(c, 14002, "指定的学生不存在")
	case errors.Is(err, service.ErrCourseNotFound):
		response.BadRequest(c, 14003, "指定的课程不存在")
	default:
		response.InternalError(c)
	}
}
