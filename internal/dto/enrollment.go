package dto

// ── 选课模块 DTO ──

// CreateEnrollmentRequest 创建选课记录请求
// grade 可为空，表示尚未评分
type CreateEnrollmentRequest struct {
	StudentID int64   `json:"student_id" binding:"required,gt=0"`
	CourseID  int64   `json:"course_id"  binding:"required,gt=0"`
	Grade     *string `json:"grade"      binding:"omitempty,oneof=A B C D F"`
}

// UpdateEnrollmentRequest 更新选课记录请求（仅允许改成绩）
type UpdateEnrollmentRequest struct {
	Grade *string `json:"grade" binding:"omitempty,oneof=A B C D F"`
}

// EnrollmentListRequest 选课列表查询参数
type EnrollmentListRequest struct {
	Page      int   `form:"page"`
	PageSize  int   `form:"page_size"`
	StudentID int64 `form:"student_id"`
	CourseID  int64 `form:"course_id"`
}

// EnrollmentResponse 选课记录响应
type EnrollmentResponse struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	CourseID    int64  `json:"course_id"`
	CourseTitle string `json:"course_title,omitempty"`
	Grade       string `json:"grade,omitempty"`
}
