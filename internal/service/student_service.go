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

// ── 学生模块业务错误 ──

var ErrStudentNotFound = errors.New("学生不存在")

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.StudentDetailResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest, page, pageSize int) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
	// EnrollmentDateStats 按入学日期统计学生人数（统计页）
	EnrollmentDateStats(ctx context.Context) ([]dto.EnrollmentDateGroup, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &model.Student{
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		EnrollmentDate: req.EnrollmentDate,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id int64) (*dto.StudentDetailResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	detail := &dto.StudentDetailResponse{
		StudentResponse: *toStudentResponse(student),
		Enrollments:     make([]dto.StudentEnrollmentInfo, 0, len(student.Enrollments)),
	}
	for i := range student.Enrollments {
		e := &student.Enrollments[i]
		info := dto.StudentEnrollmentInfo{
			EnrollmentID: e.ID,
			CourseID:     e.CourseID,
		}
		if e.Course != nil {
			info.CourseTitle = e.Course.Title
		}
		if e.Grade != nil {
			info.Grade = string(*e.Grade)
		}
		detail.Enrollments = append(detail.Enrollments, info)
	}

	return detail, nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest, page, pageSize int) ([]dto.StudentResponse, int64, error) {
	filters := &repository.StudentListFilters{
		Search: req.Search,
		Sort:   req.Sort,
	}

	offset := (page - 1) * pageSize
	students, total, err := s.repo.Student.List(ctx, filters, offset, pageSize)
	if err != nil {
		s.logger.Error("列出学生失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.EnrollmentDate != nil {
		student.EnrollmentDate = *req.EnrollmentDate
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	// 选课记录由外键级联一并删除
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("删除学生失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── EnrollmentDateStats ──────────────────────

func (s *studentService) EnrollmentDateStats(ctx context.Context) ([]dto.EnrollmentDateGroup, error) {
	groups, err := s.repo.Student.CountByEnrollmentDate(ctx)
	if err != nil {
		s.logger.Error("统计入学日期失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EnrollmentDateGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, dto.EnrollmentDateGroup{
			EnrollmentDate: g.EnrollmentDate.Format(dateLayout),
			StudentCount:   g.StudentCount,
		})
	}

	return result, nil
}

// ── 内部辅助方法 ──

func toStudentResponse(student *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             student.ID,
		LastName:       student.LastName,
		FirstName:      student.FirstName,
		FullName:       student.FullName(),
		EnrollmentDate: student.EnrollmentDate.Format(dateLayout),
	}
}
