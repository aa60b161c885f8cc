package model

import "time"

// Department 院系表 — 对应 departments
//
// RowVersion 为乐观锁版本列：应用层在每次成功写入时递增，
// 更新/删除均以 WHERE id = ? AND row_version = ? 比对作为前置条件，
// 用于检测并发写丢失（见 repository.DepartmentRepository）
type Department struct {
	ID        int64     `gorm:"primaryKey"                    json:"id"`
	Name      string    `gorm:"type:varchar(50);not null"     json:"name"`
	Budget    float64   `gorm:"type:numeric(12,2);not null"   json:"budget"`
	StartDate time.Time `gorm:"not null"                      json:"start_date"`
	// 系主任（可为空）
	InstructorID *int64 `gorm:"column:instructor_id"          json:"instructor_id,omitempty"`
	RowVersion   int    `gorm:"not null;default:1"            json:"row_version"`
	BaseModel

	Administrator *Instructor `gorm:"foreignKey:InstructorID" json:"administrator,omitempty"`
	Courses       []Course    `gorm:"foreignKey:DepartmentID" json:"courses,omitempty"`
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }
