package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
)

// StudentListFilters 学生列表过滤与排序参数
type StudentListFilters struct {
	// Search 按姓/名子串过滤（不区分大小写）
	Search string
	// Sort 取值 name/name_desc/date/date_desc，空值按姓氏升序
	Sort string
}

// EnrollmentDateCount 按入学日期分组的人数统计
type EnrollmentDateCount struct {
	EnrollmentDate time.Time
	StudentCount   int64
}

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context, filters *StudentListFilters, offset, limit int) ([]model.Student, int64, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id int64) error
	// CountByEnrollmentDate 按入学日期分组统计学生人数（统计页）
	CountByEnrollmentDate(ctx context.Context) ([]EnrollmentDateCount, error)
}

// studentRepo StudentRepository 的 GORM 实现
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Enrollments").
		Preload("Enrollments.Course").
		Where("id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, filters *StudentListFilters, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Student{})

	if filters != nil && filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		db = db.Where("last_name ILIKE ? OR first_name ILIKE ?", pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "last_name ASC, first_name ASC"
	if filters != nil {
		switch filters.Sort {
		case "name_desc":
			order = "last_name DESC, first_name DESC"
		case "date":
			order = "enrollment_date ASC"
		case "date_desc":
			order = "enrollment_date DESC"
		}
	}

	if err := db.Offset(offset).Limit(limit).
		Order(order).
		Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

// Delete 删除学生，选课记录由外键 ON DELETE CASCADE 一并清除
func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Student{}).Error
}

func (r *studentRepo) CountByEnrollmentDate(ctx context.Context) ([]EnrollmentDateCount, error) {
	var groups []EnrollmentDateCount
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Select("enrollment_date, COUNT(*) AS student_count").
		Group("enrollment_date").
		Order("enrollment_date ASC").
		Scan(&groups).Error
	return groups, err
}
