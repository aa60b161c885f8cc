package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/dto"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/repository"
	pkgerrors "github.com/Taher-PIO/contoso-migrate-sub001/pkg/errors"
)

// ── 院系模块业务错误 ──

var (
	ErrDepartmentNotFound    = errors.New("院系不存在")
	ErrAdministratorNotFound = errors.New("指定的系主任不存在")
	ErrDepartmentHasCourses  = errors.New("院系下存在课程，无法删除")
)

// DepartmentConflictError 乐观锁冲突错误
// 携带字段级对照数据：数据库当前值、用户提交值、是否已被删除。
// Handler 层通过 errors.As 捕获并渲染 409 响应
type DepartmentConflictError struct {
	Conflict *dto.DepartmentConflictResponse
}

func (e *DepartmentConflictError) Error() string {
	if e.Conflict != nil && e.Conflict.Deleted {
		return pkgerrors.ErrConcurrentDelete.Error()
	}
	return pkgerrors.ErrOptimisticLock.Error()
}

// DepartmentService 院系业务接口
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	// Update 整表单提交更新；版本不匹配时返回 *DepartmentConflictError
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	// Delete 按版本比对删除；编辑期间被他人修改时返回 *DepartmentConflictError
	Delete(ctx context.Context, id int64, rowVersion int) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := s.checkAdministrator(ctx, req.InstructorID); err != nil {
		return nil, err
	}

	dept := &model.Department{
		Name:         req.Name,
		Budget:       *req.Budget,
		StartDate:    req.StartDate,
		InstructorID: req.InstructorID,
	}

	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("创建院系失败", zap.Error(err))
		return nil, err
	}

	return s.toDepartmentResponse(ctx, dept), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *departmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("查询院系失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toDepartmentResponse(ctx, dept), nil
}

// ────────────────────── List ──────────────────────

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("列出院系失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, *s.toDepartmentResponse(ctx, &depts[i]))
	}

	return result, nil
}

// ═══════════════════════════════════════════════════════════
// Update — 乐观锁更新
// ═══════════════════════════════════════════════════════════
//
// 流程：
//  1. 记录必须存在（直接按 ID 查不到 → 404 语义的 ErrDepartmentNotFound）
//  2. 以客户端提交的 row_version 做 compare-and-swap
//  3. 版本过期 → 重新读取当前值，连同用户提交值一并返回 409 对照数据
//  4. CAS 期间记录被他人删除 → 以 deleted=true 区分上报
//
// 任一冲突路径都不改动任何行

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if _, err := s.repo.Department.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("查询院系失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.checkAdministrator(ctx, req.InstructorID); err != nil {
		return nil, err
	}

	dept := &model.Department{
		ID:           id,
		Name:         req.Name,
		Budget:       *req.Budget,
		StartDate:    req.StartDate,
		InstructorID: req.InstructorID,
		RowVersion:   req.RowVersion,
	}

	err := s.repo.Department.Update(ctx, dept)
	switch {
	case err == nil:
		return s.GetByID(ctx, id)
	case errors.Is(err, pkgerrors.ErrOptimisticLock), errors.Is(err, pkgerrors.ErrConcurrentDelete):
		return nil, s.buildConflict(ctx, id, req, err)
	default:
		s.logger.Error("更新院系失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
}

// ────────────────────── Delete ──────────────────────

func (s *departmentService) Delete(ctx context.Context, id int64, rowVersion int) error {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 已不存在视为删除成功（幂等）
			return nil
		}
		s.logger.Error("查询院系失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	// 院系下仍有课程时拒绝删除（courses.department_id 无级联）
	count, err := s.repo.Course.CountByDepartment(ctx, dept.ID)
	if err != nil {
		s.logger.Error("查询院系课程数失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrDepartmentHasCourses
	}

	err = s.repo.Department.Delete(ctx, id, rowVersion)
	if errors.Is(err, pkgerrors.ErrOptimisticLock) {
		// 删除确认期间记录被他人修改，返回当前值供用户重新确认
		attempted := &dto.UpdateDepartmentRequest{
			Name:         dept.Name,
			Budget:       &dept.Budget,
			StartDate:    dept.StartDate,
			InstructorID: dept.InstructorID,
		}
		return s.buildConflict(ctx, id, attempted, err)
	}
	if err != nil {
		s.logger.Error("删除院系失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// checkAdministrator 校验系主任引用（可为空）
func (s *departmentService) checkAdministrator(ctx context.Context, instructorID *int64) error {
	if instructorID == nil {
		return nil
	}
	if _, err := s.repo.Instructor.GetByID(ctx, *instructorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdministratorNotFound
		}
		return err
	}
	return nil
}

// buildConflict 构造乐观锁冲突对照数据
func (s *departmentService) buildConflict(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest, cause error) error {
	conflict := &dto.DepartmentConflictResponse{
		Attempted: dto.DepartmentConflictAttempted{
			Name:         req.Name,
			Budget:       *req.Budget,
			StartDate:    req.StartDate.Format(dateLayout),
			InstructorID: req.InstructorID,
		},
	}

	if errors.Is(cause, pkgerrors.ErrConcurrentDelete) {
		conflict.Deleted = true
		return &DepartmentConflictError{Conflict: conflict}
	}

	current, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 冲突判定与重读之间记录又被删除
			conflict.Deleted = true
			return &DepartmentConflictError{Conflict: conflict}
		}
		s.logger.Error("重读院系当前值失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	conflict.Current = s.toDepartmentResponse(ctx, current)

	return &DepartmentConflictError{Conflict: conflict}
}

func (s *departmentService) toDepartmentResponse(ctx context.Context, dept *model.Department) *dto.DepartmentResponse {
	courseCount, _ := s.repo.Course.CountByDepartment(ctx, dept.ID)
	resp := &dto.DepartmentResponse{
		ID:           dept.ID,
		Name:         dept.Name,
		Budget:       dept.Budget,
		StartDate:    dept.StartDate.Format(dateLayout),
		InstructorID: dept.InstructorID,
		RowVersion:   dept.RowVersion,
		CourseCount:  courseCount,
	}
	if dept.Administrator != nil {
		resp.AdministratorName = dept.Administrator.FullName()
	}
	return resp
}
