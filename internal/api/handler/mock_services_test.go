package handler

import (
	"context"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/dto"
)

// ═══════════════════════════════════════════════════════════
// 基于函数字段的 Service Mock（仅测试用）
// 未赋值的方法返回零值
// ═══════════════════════════════════════════════════════════

// ────────────────────── StudentService Mock ──────────────────────

type mockStudentService struct {
	createFn func(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	getFn    func(ctx context.Context, id int64) (*dto.StudentDetailResponse, error)
	listFn   func(ctx context.Context, req *dto.StudentListRequest, page, pageSize int) ([]dto.StudentResponse, int64, error)
	updateFn func(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	deleteFn func(ctx context.Context, id int64) error
	statsFn  func(ctx context.Context) ([]dto.EnrollmentDateGroup, error)
}

func (m *mockStudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &dto.StudentResponse{}, nil
}

func (m *mockStudentService) GetByID(ctx context.Context, id int64) (*dto.StudentDetailResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &dto.StudentDetailResponse{}, nil
}

func (m *mockStudentService) List(ctx context.Context, req *dto.StudentListRequest, page, pageSize int) ([]dto.StudentResponse, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockStudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &dto.StudentResponse{}, nil
}

func (m *mockStudentService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockStudentService) EnrollmentDateStats(ctx context.Context) ([]dto.EnrollmentDateGroup, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return nil, nil
}

// ────────────────────── DepartmentService Mock ──────────────────────

type mockDepartmentService struct {
	createFn func(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	getFn    func(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	listFn   func(ctx context.Context) ([]dto.DepartmentResponse, error)
	updateFn func(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	deleteFn func(ctx context.Context, id int64, rowVersion int) error
}

func (m *mockDepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &dto.DepartmentResponse{}, nil
}

func (m *mockDepartmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &dto.DepartmentResponse{}, nil
}

func (m *mockDepartmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockDepartmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &dto.DepartmentResponse{}, nil
}

func (m *mockDepartmentService) Delete(ctx context.Context, id int64, rowVersion int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, rowVersion)
	}
	return nil
}

// ────────────────────── CourseService Mock ──────────────────────

type mockCourseService struct {
	createFn func(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	getFn    func(ctx context.Context, id int64) (*dto.CourseResponse, error)
	listFn   func(ctx context.Context, req *dto.CourseListRequest, page, pageSize int) ([]dto.CourseResponse, int64, error)
	updateFn func(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &dto.CourseResponse{}, nil
}

func (m *mockCourseService) GetByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &dto.CourseResponse{}, nil
}

func (m *mockCourseService) List(ctx context.Context, req *dto.CourseListRequest, page, pageSize int) ([]dto.CourseResponse, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockCourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &dto.CourseResponse{}, nil
}

func (m *mockCourseService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
