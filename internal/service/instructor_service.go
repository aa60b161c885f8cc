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

// ── 教师模块业务错误 ──

var ErrInstructorNotFound = errors.New("教师不存在")

// InstructorService 教师业务接口
type InstructorService interface {
	Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.InstructorResponse, error)
	List(ctx context.Context, page, pageSize int) ([]dto.InstructorResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*dto.InstructorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type instructorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInstructorService 创建 InstructorService 实例
func NewInstructorService(repo *repository.Repository, logger *zap.Logger) InstructorService {
	return &instructorService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *instructorService) Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error) {
	// 授课课程引用必须全部存在
	courses, err := s.resolveCourses(ctx, req.CourseIDs)
	if err != nil {
		return nil, err
	}

	instructor := &model.Instructor{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		HireDate:  req.HireDate,
	}

	if err := s.repo.Instructor.Create(ctx, instructor); err != nil {
		s.logger.Error("创建教师失败", zap.Error(err))
		return nil, err
	}

	if req.OfficeLocation != nil && *req.OfficeLocation != "" {
		if err := s.repo.Instructor.SetOffice(ctx, instructor.ID, *req.OfficeLocation); err != nil {
			s.logger.Error("写入办公室分配失败", zap.Int64("id", instructor.ID), zap.Error(err))
			return nil, err
		}
	}

	if len(courses) > 0 {
		if err := s.repo.Instructor.ReplaceCourses(ctx, instructor, courses); err != nil {
			s.logger.Error("写入授课关系失败", zap.Int64("id", instructor.ID), zap.Error(err))
			return nil, err
		}
	}

	return s.GetByID(ctx, instructor.ID)
}

// ────────────────────── GetByID ──────────────────────

func (s *instructorService) GetByID(ctx context.Context, id int64) (*dto.InstructorResponse, error) {
	instructor, err := s.repo.Instructor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("查询教师失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toInstructorResponse(instructor), nil
}

// ────────────────────── List ──────────────────────

func (s *instructorService) List(ctx context.Context, page, pageSize int) ([]dto.InstructorResponse, int64, error) {
	offset := (page - 1) * pageSize
	instructors, total, err := s.repo.Instructor.List(ctx, offset, pageSize)
	if err != nil {
		s.logger.Error("列出教师失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.InstructorResponse, 0, len(instructors))
	for i := range instructors {
		result = append(result, *toInstructorResponse(&instructors[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *instructorService) Update(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*dto.InstructorResponse, error) {
	instructor, err := s.repo.Instructor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("查询教师失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.LastName != nil {
		instructor.LastName = *req.LastName
	}
	if req.FirstName != nil {
		instructor.FirstName = *req.FirstName
	}
	if req.HireDate != nil {
		instructor.HireDate = *req.HireDate
	}

	if err := s.repo.Instructor.Update(ctx, instructor); err != nil {
		s.logger.Error("更新教师失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	// 办公室分配：空字符串表示删除，非空为创建或更新
	if req.OfficeLocation != nil {
		if *req.OfficeLocation == "" {
			err = s.repo.Instructor.RemoveOffice(ctx, id)
		} else {
			err = s.repo.Instructor.SetOffice(ctx, id, *req.OfficeLocation)
		}
		if err != nil {
			s.logger.Error("更新办公室分配失败", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}

	// 授课关系：全量替换
	if req.CourseIDs != nil {
		courses, err := s.resolveCourses(ctx, *req.CourseIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Instructor.ReplaceCourses(ctx, instructor, courses); err != nil {
			s.logger.Error("更新授课关系失败", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *instructorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Instructor.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInstructorNotFound
		}
		s.logger.Error("查询教师失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	// 办公室分配与授课关联级联删除；其管理的院系 instructor_id 置空
	if err := s.repo.Instructor.Delete(ctx, id); err != nil {
		s.logger.Error("删除教师失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// resolveCourses 批量校验课程编号并返回对应模型
func (s *instructorService) resolveCourses(ctx context.Context, courseIDs []int64) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(courseIDs))
	for _, cid := range courseIDs {
		course, err := s.repo.Course.GetByID(ctx, cid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
		courses = append(courses, model.Course{ID: course.ID, Title: course.Title, Credits: course.Credits, DepartmentID: course.DepartmentID})
	}
	return courses, nil
}

func toInstructorResponse(instructor *model.Instructor) *dto.InstructorResponse {
	resp := &dto.InstructorResponse{
		ID:        instructor.ID,
		LastName:  instructor.LastName,
		FirstName: instructor.FirstName,
		FullName:  instructor.FullName(),
		HireDate:  instructor.HireDate.Format(dateLayout),
		Courses:   make([]dto.InstructorCourseInfo, 0, len(instructor.Courses)),
	}
	if instructor.OfficeAssignment != nil {
		resp.OfficeLocation = instructor.OfficeAssignment.Location
	}
	for i := range instructor.Courses {
		resp.Courses = append(resp.Courses, dto.InstructorCourseInfo{
			CourseID: instructor.Courses[i].ID,
			Title:    instructor.Courses[i].Title,
		})
	}
	return resp
}
