package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
)

// EnrollmentListFilters 选课列表过滤参数
type EnrollmentListFilters struct {
	StudentID int64
	CourseID  int64
}

// EnrollmentRepository 选课数据访问接口
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	GetByID(ctx context.Context, id int64) (*model.Enrollment, error)
	List(ctx context.Context, filters *EnrollmentListFilters, offset, limit int) ([]model.Enrollment, int64, error)
	Update(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, id int64) error
	CountByStudent(ctx context.Context, studentID int64) (int64, error)
}

// enrollmentRepo EnrollmentRepository 的 GORM 实现
type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).
		Omit("Student", "Course").
		Create(enrollment).Error
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int64) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("id = ?", id).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) List(ctx context.Context, filters *EnrollmentListFilters, offset, limit int) ([]model.Enrollment, int64, error) {
	var enrollments []model.Enrollment
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Enrollment{})
	if filters != nil {
		if filters.StudentID > 0 {
			db = db.Where("student_id = ?", filters.StudentID)
		}
		if filters.CourseID > 0 {
			db = db.Where("course_id = ?", filters.CourseID)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Student").
		Preload("Course").
		Offset(offset).Limit(limit).
		Order("id ASC").
		Find(&enrollments).Error; err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

func (r *enrollmentRepo) Update(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).
		Omit("Student", "Course").
		Save(enrollment).Error
}

func (r *enrollmentRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Enrollment{}).Error
}

func (r *enrollmentRepo) CountByStudent(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}
