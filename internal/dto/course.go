package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
// id 即课程编号，由调用方指定而非自增
// credits 使用指针以区分"未传"与合法的 0 学分
type CreateCourseRequest struct {
	ID            int64   `json:"id"            binding:"required,gt=0"`
	Title         string  `json:"title"         binding:"required,min=3,max=50"`
	Credits       *int    `json:"credits"       binding:"required,min=0,max=5"`
	DepartmentID  int64   `json:"department_id" binding:"required,gt=0"`
	InstructorIDs []int64 `json:"instructor_ids" binding:"omitempty,dive,gt=0"`
}

// UpdateCourseRequest 更新课程请求（部分更新，编号不可变更）
type UpdateCourseRequest struct {
	Title         *string  `json:"title"          binding:"omitempty,min=3,max=50"`
	Credits       *int     `json:"credits"        binding:"omitempty,min=0,max=5"`
	DepartmentID  *int64   `json:"department_id"  binding:"omitempty,gt=0"`
	InstructorIDs *[]int64 `json:"instructor_ids" binding:"omitempty,dive,gt=0"`
}

// CourseListRequest 课程列表查询参数
type CourseListRequest struct {
	Page         int   `form:"page"`
	PageSize     int   `form:"page_size"`
	DepartmentID int64 `form:"department_id"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Credits        int      `json:"credits"`
	DepartmentID   int64    `json:"department_id"`
	DepartmentName string   `json:"department_name,omitempty"`
	Instructors    []string `json:"instructors,omitempty"`
}
