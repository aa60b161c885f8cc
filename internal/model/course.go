package model

// Course 课程表 — 对应 courses
// 主键即课程编号，由调用方指定而非自增
type Course struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title        string `gorm:"type:varchar(50);not null"      json:"title"`
	Credits      int    `gorm:"not null"                       json:"credits"`
	DepartmentID int64  `gorm:"not null"                       json:"department_id"`
	BaseModel

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	// 选课记录随课程级联删除
	Enrollments []Enrollment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
	Instructors []Instructor `gorm:"many2many:course_instructors"                    json:"instructors,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
