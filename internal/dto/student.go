package dto

import "time"

// ── 学生模块 DTO ──

// CreateStudentRequest 创建学生请求
type CreateStudentRequest struct {
	LastName       string    `json:"last_name"       binding:"required,max=50"`
	FirstName      string    `json:"first_name"      binding:"required,max=50"`
	EnrollmentDate time.Time `json:"enrollment_date" binding:"required"`
}

// UpdateStudentRequest 更新学生请求（部分更新）
type UpdateStudentRequest struct {
	LastName       *string    `json:"last_name"       binding:"omitempty,min=1,max=50"`
	FirstName      *string    `json:"first_name"      binding:"omitempty,min=1,max=50"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
}

// StudentListRequest 学生列表查询参数
// search 按姓/名子串过滤；sort 支持 name/name_desc/date/date_desc
type StudentListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Sort     string `form:"sort" binding:"omitempty,oneof=name name_desc date date_desc"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID             int64  `json:"id"`
	LastName       string `json:"last_name"`
	FirstName      string `json:"first_name"`
	FullName       string `json:"full_name"`
	EnrollmentDate string `json:"enrollment_date"`
}

// StudentEnrollmentInfo 学生详情中的选课条目
type StudentEnrollmentInfo struct {
	EnrollmentID int64  `json:"enrollment_id"`
	CourseID     int64  `json:"course_id"`
	CourseTitle  string `json:"course_title"`
	Grade        string `json:"grade,omitempty"`
}

// StudentDetailResponse 学生详细信息响应（含选课记录）
type StudentDetailResponse struct {
	StudentResponse
	Enrollments []StudentEnrollmentInfo `json:"enrollments"`
}
