package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	// ExistsByID 判断课程编号是否已被占用（编号由调用方指定，创建前须显式探测）
	ExistsByID(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, departmentID int64, offset, limit int) ([]model.Course, int64, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id int64) error
	// ReplaceInstructors 全量替换课程的授课教师
	ReplaceInstructors(ctx context.Context, course *model.Course, instructors []model.Instructor) error
	CountByDepartment(ctx context.Context, departmentID int64) (int64, error)
}

// courseRepo CourseRepository 的 GORM 实现
type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).
		Omit("Instructors", "Department", "Enrollments").
		Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Instructors").
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *courseRepo) List(ctx context.Context, departmentID int64, offset, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Course{})
	if departmentID > 0 {
		db = db.Where("department_id = ?", departmentID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Department").
		Preload("Instructors").
		Offset(offset).Limit(limit).
		Order("id ASC").
		Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).
		Omit("Instructors", "Department", "Enrollments").
		Save(course).Error
}

// Delete 删除课程，选课记录与授课关联由外键级联清除
func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Course{}).Error
}

func (r *courseRepo) ReplaceInstructors(ctx context.Context, course *model.Course, instructors []model.Instructor) error {
	return r.db.WithContext(ctx).
		Model(course).
		Association("Instructors").
		Replace(instructors)
}

func (r *courseRepo) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
