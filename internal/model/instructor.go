package model

import "time"

// Instructor 教师表 — 对应 instructors
type Instructor struct {
	ID        int64     `gorm:"primaryKey"                json:"id"`
	LastName  string    `gorm:"type:varchar(50);not null" json:"last_name"`
	FirstName string    `gorm:"type:varchar(50);not null" json:"first_name"`
	HireDate  time.Time `gorm:"not null"                  json:"hire_date"`
	BaseModel

	// 办公室分配一对一，共享主键，随教师级联删除
	OfficeAssignment *OfficeAssignment `gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE" json:"office_assignment,omitempty"`
	// 授课课程多对多
	Courses []Course `gorm:"many2many:course_instructors" json:"courses,omitempty"`
}

// TableName 指定表名
func (Instructor) TableName() string { return "instructors" }

// FullName 姓在前的完整姓名
func (i *Instructor) FullName() string {
	return i.LastName + ", " + i.FirstName
}
