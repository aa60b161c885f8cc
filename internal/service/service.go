package service

import (
	"go.uber.org/zap"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/repository"
)

// dateLayout 日期字段的响应格式（入学日期/聘用日期/成立日期均为纯日期语义）
const dateLayout = "2006-01-02"

// Service 所有 Service 的聚合入口
type Service struct {
	Student    StudentService
	Instructor InstructorService
	Course     CourseService
	Enrollment EnrollmentService
	Department DepartmentService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Student:    NewStudentService(repo, logger),
		Instructor: NewInstructorService(repo, logger),
		Course:     NewCourseService(repo, logger),
		Enrollment: NewEnrollmentService(repo, logger),
		Department: NewDepartmentService(repo, logger),
	}
}
