package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/dto"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/repository"
)

// ── 选课模块业务错误 ──

var ErrEnrollmentNotFound = errors.New("选课记录不存在")

// EnrollmentService 选课业务接口
type EnrollmentService interface {
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.EnrollmentResponse, error)
	List(ctx context.Context, req *dto.EnrollmentListRequest, page, pageSize int) ([]dto.EnrollmentResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	// 学生与课程引用必须存在
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}
	if req.Grade != nil {
		g := model.Grade(*req.Grade)
		enrollment.Grade = &g
	}

	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		s.logger.Error("创建选课记录失败", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, enrollment.ID)
}

// ────────────────────── GetByID ──────────────────────

func (s *enrollmentService) GetByID(ctx context.Context, id int64) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("查询选课记录失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toEnrollmentResponse(enrollment), nil
}

// ────────────────────── List ──────────────────────

func (s *enrollmentService) List(ctx context.Context, req *dto.EnrollmentListRequest, page, pageSize int) ([]dto.EnrollmentResponse, int64, error) {
	filters := &repository.EnrollmentListFilters{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}

	offset := (page - 1) * pageSize
	enrollments, total, err := s.repo.Enrollment.List(ctx, filters, offset, pageSize)
	if err != nil {
		s.logger.Error("列出选课记录失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		result = append(result, *toEnrollmentResponse(&enrollments[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *enrollmentService) Update(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("查询选课记录失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Grade != nil {
		g := model.Grade(*req.Grade)
		enrollment.Grade = &g
	}

	if err := s.repo.Enrollment.Update(ctx, enrollment); err != nil {
		s.logger.Error("更新选课记录失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *enrollmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Enrollment.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		s.logger.Error("查询选课记录失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Enrollment.Delete(ctx, id); err != nil {
		s.logger.Error("删除选课记录失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func toEnrollmentResponse(enrollment *model.Enrollment) *dto.EnrollmentResponse {
	resp := &dto.EnrollmentResponse{
		ID:        enrollment.ID,
		StudentID: enrollment.StudentID,
		CourseID:  enrollment.CourseID,
	}
	if enrollment.Student != nil {
		resp.StudentName = enrollment.Student.FullName()
	}
	if enrollment.Course != nil {
		resp.CourseTitle = enrollment.Course.Title
	}
	if enrollment.Grade != nil {
		resp.Grade = string(*enrollment.Grade)
	}
	return resp
}
