package model

// Grade 成绩等级枚举（可为空，表示尚未评分）
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// IsValid 校验成绩等级是否合法
func (g Grade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeF:
		return true
	}
	return false
}

// Enrollment 选课记录表 — 对应 enrollments
type Enrollment struct {
	ID        int64  `gorm:"primaryKey"       json:"id"`
	CourseID  int64  `gorm:"not null"         json:"course_id"`
	StudentID int64  `gorm:"not null"         json:"student_id"`
	Grade     *Grade `gorm:"type:varchar(1)"  json:"grade,omitempty"`
	BaseModel

	Course  *Course  `gorm:"foreignKey:CourseID"  json:"course,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }
