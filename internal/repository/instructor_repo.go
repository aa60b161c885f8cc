package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
)

// InstructorRepository 教师数据访问接口
type InstructorRepository interface {
	Create(ctx context.Context, instructor *model.Instructor) error
	GetByID(ctx context.Context, id int64) (*model.Instructor, error)
	List(ctx context.Context, offset, limit int) ([]model.Instructor, int64, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Instructor, error)
	Update(ctx context.Context, instructor *model.Instructor) error
	Delete(ctx context.Context, id int64) error
	// SetOffice 写入办公室分配（存在则更新，不存在则创建）
	SetOffice(ctx context.Context, instructorID int64, location string) error
	// RemoveOffice 删除办公室分配（不存在时静默成功）
	RemoveOffice(ctx context.Context, instructorID int64) error
	// ReplaceCourses 全量替换教师的授课关系
	ReplaceCourses(ctx context.Context, instructor *model.Instructor, courses []model.Course) error
}

// instructorRepo InstructorRepository 的 GORM 实现
type instructorRepo struct {
	db *gorm.DB
}

// NewInstructorRepo 创建 InstructorRepository 实例
func NewInstructorRepo(db *gorm.DB) InstructorRepository {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) Create(ctx context.Context, instructor *model.Instructor) error {
	return r.db.WithContext(ctx).Create(instructor).Error
}

func (r *instructorRepo) GetByID(ctx context.Context, id int64) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.db.WithContext(ctx).
		Preload("OfficeAssignment").
		Preload("Courses").
		Where("id = ?", id).
		First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepo) List(ctx context.Context, offset, limit int) ([]model.Instructor, int64, error) {
	var instructors []model.Instructor
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Instructor{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("OfficeAssignment").
		Preload("Courses").
		Offset(offset).Limit(limit).
		Order("last_name ASC, first_name ASC").
		Find(&instructors).Error; err != nil {
		return nil, 0, err
	}

	return instructors, total, nil
}

func (r *instructorRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.Instructor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var instructors []model.Instructor
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&instructors).Error
	return instructors, err
}

func (r *instructorRepo) Update(ctx context.Context, instructor *model.Instructor) error {
	// Omit 关联，办公室与授课关系由专用方法维护
	return r.db.WithContext(ctx).
		Omit("OfficeAssignment", "Courses").
		Save(instructor).Error
}

// Delete 删除教师，办公室分配与授课关联由外键级联清除；
// 其管理的院系 instructor_id 由外键 ON DELETE SET NULL 置空
func (r *instructorRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Instructor{}).Error
}

func (r *instructorRepo) SetOffice(ctx context.Context, instructorID int64, location string) error {
	office := model.OfficeAssignment{
		InstructorID: instructorID,
		Location:     location,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "instructor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"location", "updated_at"}),
		}).
		Create(&office).Error
}

func (r *instructorRepo) RemoveOffice(ctx context.Context, instructorID int64) error {
	return r.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Delete(&model.OfficeAssignment{}).Error
}

func (r *instructorRepo) ReplaceCourses(ctx context.Context, instructor *model.Instructor, courses []model.Course) error {
	return r.db.WithContext(ctx).
		Model(instructor).
		Association("Courses").
		Replace(courses)
}
