package dto

import "time"

// ── 教师模块 DTO ──

// CreateInstructorRequest 创建教师请求
// office_location 非空时同时创建办公室分配记录
type CreateInstructorRequest struct {
	LastName       string  `json:"last_name"       binding:"required,max=50"`
	FirstName      string  `json:"first_name"      binding:"required,max=50"`
	HireDate       time.Time `json:"hire_date"     binding:"required"`
	OfficeLocation *string `json:"office_location" binding:"omitempty,max=50"`
	CourseIDs      []int64 `json:"course_ids"      binding:"omitempty,dive,gt=0"`
}

// UpdateInstructorRequest 更新教师请求（部分更新）
// office_location 传空字符串表示删除办公室分配
// course_ids 为全量替换语义（nil 表示不改动授课关系）
type UpdateInstructorRequest struct {
	LastName       *string    `json:"last_name"       binding:"omitempty,min=1,max=50"`
	FirstName      *string    `json:"first_name"      binding:"omitempty,min=1,max=50"`
	HireDate       *time.Time `json:"hire_date"`
	OfficeLocation *string    `json:"office_location" binding:"omitempty,max=50"`
	CourseIDs      *[]int64   `json:"course_ids"      binding:"omitempty,dive,gt=0"`
}

// InstructorCourseInfo 教师详情中的授课条目
type InstructorCourseInfo struct {
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
}

// InstructorResponse 教师信息响应
type InstructorResponse struct {
	ID             int64                  `json:"id"`
	LastName       string                 `json:"last_name"`
	FirstName      string                 `json:"first_name"`
	FullName       string                 `json:"full_name"`
	HireDate       string                 `json:"hire_date"`
	OfficeLocation string                 `json:"office_location,omitempty"`
	Courses        []InstructorCourseInfo `json:"courses"`
}
