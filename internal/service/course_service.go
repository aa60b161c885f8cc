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

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound = errors.New("课程不存在")
	// ErrCourseIDExists 课程编号由调用方指定，重复编号在业务层显式检出
	ErrCourseIDExists = errors.New("课程编号已存在")
)

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	List(ctx context.Context, req *dto.CourseListRequest, page, pageSize int) ([]dto.CourseResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id int64) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	// 编号冲突先于外键校验检出，避免落到主键约束错误
	exists, err := s.repo.Course.ExistsByID(ctx, req.ID)
	if err != nil {
		s.logger.Error("探测课程编号失败", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrCourseIDExists
	}

	// 所属院系必须存在
	if _, err := s.repo.Department.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	instructors, err := s.resolveInstructors(ctx, req.InstructorIDs)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		ID:           req.ID,
		Title:        req.Title,
		Credits:      *req.Credits,
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	if len(instructors) > 0 {
		if err := s.repo.Course.ReplaceInstructors(ctx, course, instructors); err != nil {
			s.logger.Error("写入授课教师失败", zap.Int64("id", course.ID), zap.Error(err))
			return nil, err
		}
	}

	return s.GetByID(ctx, course.ID)
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course), nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context, req *dto.CourseListRequest, page, pageSize int) ([]dto.CourseResponse, int64, error) {
	offset := (page - 1) * pageSize
	courses, total, err := s.repo.Course.List(ctx, req.DepartmentID, offset, pageSize)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.DepartmentID != nil && *req.DepartmentID != course.DepartmentID {
		if _, err := s.repo.Department.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
		course.DepartmentID = *req.DepartmentID
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.InstructorIDs != nil {
		instructors, err := s.resolveInstructors(ctx, *req.InstructorIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Course.ReplaceInstructors(ctx, course, instructors); err != nil {
			s.logger.Error("更新授课教师失败", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Course.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	// 选课记录与授课关联由外键级联删除
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("删除课程失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// resolveInstructors 批量校验教师 ID 并返回对应模型
func (s *courseService) resolveInstructors(ctx context.Context, instructorIDs []int64) ([]model.Instructor, error) {
	if len(instructorIDs) == 0 {
		return nil, nil
	}
	instructors, err := s.repo.Instructor.ListByIDs(ctx, instructorIDs)
	if err != nil {
		s.logger.Error("批量查询教师失败", zap.Error(err))
		return nil, err
	}
	if len(instructors) != len(instructorIDs) {
		return nil, ErrInstructorNotFound
	}
	return instructors, nil
}

func toCourseResponse(course *model.Course) *dto.CourseResponse {
	resp := &dto.CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		Credits:      course.Credits,
		DepartmentID: course.DepartmentID,
		Instructors:  make([]string, 0, len(course.Instructors)),
	}
	if course.Department != nil {
		resp.DepartmentName = course.Department.Name
	}
	for i := range course.Instructors {
		resp.Instructors = append(resp.Instructors, course.Instructors[i].FullName())
	}
	return resp
}
