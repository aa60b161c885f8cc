package model

// OfficeAssignment 办公室分配表 — 对应 office_assignments
// 与教师一对一，主键即教师 ID（共享主键）
type OfficeAssignment struct {
	InstructorID int64  `gorm:"primaryKey;autoIncrement:false" json:"instructor_id"`
	Location     string `gorm:"type:varchar(50);not null"      json:"location"`
	BaseModel
}

// TableName 指定表名
func (OfficeAssignment) TableName() string { return "office_assignments" }
