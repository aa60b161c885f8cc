package dto

import "time"

// ── 院系模块 DTO ──

// CreateDepartmentRequest 创建院系请求
// budget 使用指针以区分"未传"与合法的 0 预算
type CreateDepartmentRequest struct {
	Name         string    `json:"name"          binding:"required,min=3,max=50"`
	Budget       *float64  `json:"budget"        binding:"required,gte=0"`
	StartDate    time.Time `json:"start_date"    binding:"required"`
	InstructorID *int64    `json:"instructor_id" binding:"omitempty,gt=0"`
}

// UpdateDepartmentRequest 更新院系请求
// 编辑表单整体提交，携带读取时的 row_version；
// 版本不匹配说明存在并发写，返回 409 冲突对照信息
type UpdateDepartmentRequest struct {
	Name         string    `json:"name"          binding:"required,min=3,max=50"`
	Budget       *float64  `json:"budget"        binding:"required,gte=0"`
	StartDate    time.Time `json:"start_date"    binding:"required"`
	InstructorID *int64    `json:"instructor_id" binding:"omitempty,gt=0"`
	RowVersion   int       `json:"row_version"   binding:"required,gt=0"`
}

// DeleteDepartmentRequest 删除院系查询参数
// 删除同样以版本比对作为前置条件（编辑期间被他人删除/修改均可检出）
type DeleteDepartmentRequest struct {
	RowVersion int `form:"row_version" binding:"required,gt=0"`
}

// DepartmentResponse 院系信息响应
type DepartmentResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Budget            float64 `json:"budget"`
	StartDate         string  `json:"start_date"`
	InstructorID      *int64  `json:"instructor_id,omitempty"`
	AdministratorName string  `json:"administrator_name,omitempty"`
	RowVersion        int     `json:"row_version"`
	CourseCount       int64   `json:"course_count"`
}

// DepartmentConflictAttempted 冲突对照中的用户提交值
type DepartmentConflictAttempted struct {
	Name         string  `json:"name"`
	Budget       float64 `json:"budget"`
	StartDate    string  `json:"start_date"`
	InstructorID *int64  `json:"instructor_id,omitempty"`
}

// DepartmentConflictResponse 乐观锁冲突对照响应（409 响应体 data 字段）
// current 为数据库当前值（记录已被删除时为 null），attempted 为用户提交值；
// 用户可携带 current.row_version 重试，或放弃修改
type DepartmentConflictResponse struct {
	Deleted   bool                        `json:"deleted"`
	Current   *DepartmentResponse         `json:"current,omitempty"`
	Attempted DepartmentConflictAttempted `json:"attempted"`
}
