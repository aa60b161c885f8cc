package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
	pkgerrors "github.com/Taher-PIO/contoso-migrate-sub001/pkg/errors"
)

// DepartmentRepository 院系数据访问接口
//
// Update/Delete 采用显式版本比对（compare-and-swap）实现乐观锁：
// WHERE id = ? AND row_version = ?，受影响行数为 0 时再探测记录是否存在，
// 以区分"版本过期"（ErrOptimisticLock）与"已被他人删除"（ErrConcurrentDelete）
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Update(ctx context.Context, dept *model.Department) error
	Delete(ctx context.Context, id int64, rowVersion int) error
}

// departmentRepo DepartmentRepository 的 GORM 实现
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	dept.RowVersion = 1
	return r.db.WithContext(ctx).
		Omit("Administrator", "Courses").
		Create(dept).Error
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Preload("Administrator").
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).
		Preload("Administrator").
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

// Update 按版本比对更新，dept.RowVersion 须为客户端读取时的版本号。
// 成功时写入 row_version+1 并同步回 dept；冲突路径不改动任何行。
func (r *departmentRepo) Update(ctx context.Context, dept *model.Department) error {
	oldVersion := dept.RowVersion
	result := r.db.WithContext(ctx).
		Model(dept).
		Where("id = ? AND row_version = ?", dept.ID, oldVersion).
		Updates(map[string]interface{}{
			"name":          dept.Name,
			"budget":        dept.Budget,
			"start_date":    dept.StartDate,
			"instructor_id": dept.InstructorID,
			"row_version":   oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyConflict(ctx, dept.ID)
	}
	dept.RowVersion = oldVersion + 1
	return nil
}

// Delete 按版本比对删除。记录已不存在时视为删除成功（幂等）；
// 存在但版本不匹配时返回 ErrOptimisticLock
func (r *departmentRepo) Delete(ctx context.Context, id int64, rowVersion int) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND row_version = ?", id, rowVersion).
		Delete(&model.Department{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		err := r.classifyConflict(ctx, id)
		if errors.Is(err, pkgerrors.ErrConcurrentDelete) {
			return nil
		}
		return err
	}
	return nil
}

// classifyConflict 区分版本过期与并发删除
func (r *departmentRepo) classifyConflict(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Department{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return pkgerrors.ErrConcurrentDelete
	}
	return pkgerrors.ErrOptimisticLock
}
