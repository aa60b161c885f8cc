package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/service"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/response"
)

// StatsHandler 统计模块 HTTP 处理器
type StatsHandler struct {
	studentSvc service.StudentService
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(studentSvc service.StudentService) *StatsHandler {
	return &StatsHandler{studentSvc: studentSvc}
}

// EnrollmentDates 按入学日期统计学生人数
// GET /api/v1/stats/enrollment-dates
func (h *StatsHandler) EnrollmentDates(c *gin.Context) {
	groups, err := h.studentSvc.EnrollmentDateStats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": groups})
}
