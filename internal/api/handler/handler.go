package handler

import (
	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Student    *StudentHandler
	Instructor *InstructorHandler
	Course     *CourseHandler
	Enrollment *EnrollmentHandler
	Department *DepartmentHandler
	Stats      *StatsHandler
	Health     *HealthHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, db *gorm.DB) *Handler {
	return &Handler{
		Student:    NewStudentHandler(svc.Student),
		Instructor: NewInstructorHandler(svc.Instructor),
		Course:     NewCourseHandler(svc.Course),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Department: NewDepartmentHandler(svc.Department),
		Stats:      NewStatsHandler(svc.Student),
		Health:     NewHealthHandler(db),
	}
}
