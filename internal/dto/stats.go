package dto

// ── 统计模块 DTO ──

// EnrollmentDateGroup 按入学日期分组的学生人数
type EnrollmentDateGroup struct {
	EnrollmentDate string `json:"enrollment_date"`
	StudentCount   int64  `json:"student_count"`
}
