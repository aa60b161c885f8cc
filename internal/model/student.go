package model

import "time"

// Student 学生表 — 对应 students
type Student struct {
	ID             int64     `gorm:"primaryKey"                json:"id"`
	LastName       string    `gorm:"type:varchar(50);not null" json:"last_name"`
	FirstName      string    `gorm:"type:varchar(50);not null" json:"first_name"`
	EnrollmentDate time.Time `gorm:"not null"                  json:"enrollment_date"`
	BaseModel

	// 选课记录随学生级联删除
	Enrollments []Enrollment `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// FullName 姓在前的完整姓名（列表页展示格式）
func (s *Student) FullName() string {
	return s.LastName + ", " + s.FirstName
}
