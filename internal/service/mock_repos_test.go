package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/repository"
	pkgerrors "github.com/Taher-PIO/contoso-migrate-sub001/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// 基于内存 map 的 Repository Mock（仅测试用）
// ═══════════════════════════════════════════════════════════

// ────────────────────── StudentRepository Mock ──────────────────────

type mockStudentRepo struct {
	students map[int64]*model.Student
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	student.ID = m.nextID
	m.nextID++
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (m *mockStudentRepo) List(_ context.Context, filters *repository.StudentListFilters, offset, limit int) ([]model.Student, int64, error) {
	var all []model.Student
	for _, s := range m.students {
		if filters != nil && filters.Search != "" {
			needle := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(s.LastName), needle) &&
				!strings.Contains(strings.ToLower(s.FirstName), needle) {
				continue
			}
		}
		all = append(all, *s)
	}

	sortKey := ""
	if filters != nil {
		sortKey = filters.Sort
	}
	sort.Slice(all, func(i, j int) bool {
		switch sortKey {
		case "name_desc":
			return all[i].LastName > all[j].LastName
		case "date":
			return all[i].EnrollmentDate.Before(all[j].EnrollmentDate)
		case "date_desc":
			return all[j].EnrollmentDate.Before(all[i].EnrollmentDate)
		default:
			return all[i].LastName < all[j].LastName
		}
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) CountByEnrollmentDate(_ context.Context) ([]repository.EnrollmentDateCount, error) {
	counts := make(map[int64]*repository.EnrollmentDateCount)
	for _, s := range m.students {
		key := s.EnrollmentDate.Unix()
		if g, ok := counts[key]; ok {
			g.StudentCount++
		} else {
			counts[key] = &repository.EnrollmentDateCount{EnrollmentDate: s.EnrollmentDate, StudentCount: 1}
		}
	}
	var groups []repository.EnrollmentDateCount
	for _, g := range counts {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].EnrollmentDate.Before(groups[j].EnrollmentDate)
	})
	return groups, nil
}

// ────────────────────── InstructorRepository Mock ──────────────────────

type mockInstructorRepo struct {
	instructors map[int64]*model.Instructor
	offices     map[int64]string
	courses     map[int64][]model.Course
	nextID      int64
}

func newMockInstructorRepo() *mockInstructorRepo {
	return &mockInstructorRepo{
		instructors: make(map[int64]*model.Instructor),
		offices:     make(map[int64]string),
		courses:     make(map[int64][]model.Course),
		nextID:      1,
	}
}

func (m *mockInstructorRepo) Create(_ context.Context, instructor *model.Instructor) error {
	instructor.ID = m.nextID
	m.nextID++
	m.instructors[instructor.ID] = instructor
	return nil
}

func (m *mockInstructorRepo) GetByID(_ context.Context, id int64) (*model.Instructor, error) {
	instructor, ok := m.instructors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// 模拟 Preload：拷贝并挂上关联
	result := *instructor
	if loc, ok := m.offices[id]; ok {
		result.OfficeAssignment = &model.OfficeAssignment{InstructorID: id, Location: loc}
	} else {
		result.OfficeAssignment = nil
	}
	result.Courses = m.courses[id]
	return &result, nil
}

func (m *mockInstructorRepo) List(_ context.Context, offset, limit int) ([]model.Instructor, int64, error) {
	var all []model.Instructor
	for id := range m.instructors {
		ins, _ := m.GetByID(context.Background(), id)
		all = append(all, *ins)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastName < all[j].LastName })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockInstructorRepo) ListByIDs(_ context.Context, ids []int64) ([]model.Instructor, error) {
	var result []model.Instructor
	for _, id := range ids {
		if ins, ok := m.instructors[id]; ok {
			result = append(result, *ins)
		}
	}
	return result, nil
}

func (m *mockInstructorRepo) Update(_ context.Context, instructor *model.Instructor) error {
	if _, ok := m.instructors[instructor.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.instructors[instructor.ID] = instructor
	return nil
}

func (m *mockInstructorRepo) Delete(_ context.Context, id int64) error {
	delete(m.instructors, id)
	delete(m.offices, id)
	delete(m.courses, id)
	return nil
}

func (m *mockInstructorRepo) SetOffice(_ context.Context, instructorID int64, location string) error {
	m.offices[instructorID] = location
	return nil
}

func (m *mockInstructorRepo) RemoveOffice(_ context.Context, instructorID int64) error {
	delete(m.offices, instructorID)
	return nil
}

func (m *mockInstructorRepo) ReplaceCourses(_ context.Context, instructor *model.Instructor, courses []model.Course) error {
	m.courses[instructor.ID] = courses
	return nil
}

// ────────────────────── CourseRepository Mock ──────────────────────

type mockCourseRepo struct {
	courses     map[int64]*model.Course
	instructors map[int64][]model.Instructor
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses:     make(map[int64]*model.Course),
		instructors: make(map[int64][]model.Instructor),
	}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	result := *course
	result.Instructors = m.instructors[id]
	return &result, nil
}

func (m *mockCourseRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := m.courses[id]
	return ok, nil
}

func (m *mockCourseRepo) List(_ context.Context, departmentID int64, offset, limit int) ([]model.Course, int64, error) {
	var all []model.Course
	for _, c := range m.courses {
		if departmentID > 0 && c.DepartmentID != departmentID {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	if _, ok := m.courses[course.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int64) error {
	delete(m.courses, id)
	delete(m.instructors, id)
	return nil
}

func (m *mockCourseRepo) ReplaceInstructors(_ context.Context, course *model.Course, instructors []model.Instructor) error {
	m.instructors[course.ID] = instructors
	return nil
}

func (m *mockCourseRepo) CountByDepartment(_ context.Context, departmentID int64) (int64, error) {
	var count int64
	for _, c := range m.courses {
		if c.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

// ────────────────────── EnrollmentRepository Mock ──────────────────────

type mockEnrollmentRepo struct {
	enrollments map[int64]*model.Enrollment
	nextID      int64
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[int64]*model.Enrollment), nextID: 1}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	enrollment.ID = m.nextID
	m.nextID++
	m.enrollments[enrollment.ID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id int64) (*model.Enrollment, error) {
	enrollment, ok := m.enrollments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return enrollment, nil
}

func (m *mockEnrollmentRepo) List(_ context.Context, filters *repository.EnrollmentListFilters, offset, limit int) ([]model.Enrollment, int64, error) {
	var all []model.Enrollment
	for _, e := range m.enrollments {
		if filters != nil {
			if filters.StudentID > 0 && e.StudentID != filters.StudentID {
				continue
			}
			if filters.CourseID > 0 && e.CourseID != filters.CourseID {
				continue
			}
		}
		all = append(all, *e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockEnrollmentRepo) Update(_ context.Context, enrollment *model.Enrollment) error {
	if _, ok := m.enrollments[enrollment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.enrollments[enrollment.ID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, id int64) error {
	delete(m.enrollments, id)
	return nil
}

func (m *mockEnrollmentRepo) CountByStudent(_ context.Context, studentID int64) (int64, error) {
	var count int64
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

// ────────────────────── DepartmentRepository Mock ──────────────────────

// mockDepartmentRepo 模拟版本比对语义：
// 版本不匹配返回 ErrOptimisticLock，记录不存在返回 ErrConcurrentDelete
type mockDepartmentRepo struct {
	departments map[int64]*model.Department
	nextID      int64
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[int64]*model.Department), nextID: 1}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	dept.ID = m.nextID
	m.nextID++
	dept.RowVersion = 1
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	dept, ok := m.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	result := *dept
	return &result, nil
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	var all []model.Department
	for _, d := range m.departments {
		all = append(all, *d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, dept *model.Department) error {
	current, ok := m.departments[dept.ID]
	if !ok {
		return pkgerrors.ErrConcurrentDelete
	}
	if current.RowVersion != dept.RowVersion {
		return pkgerrors.ErrOptimisticLock
	}
	updated := *dept
	updated.RowVersion = dept.RowVersion + 1
	m.departments[dept.ID] = &updated
	dept.RowVersion = updated.RowVersion
	return nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id int64, rowVersion int) error {
	current, ok := m.departments[id]
	if !ok {
		// 已不存在视为删除成功
		return nil
	}
	if current.RowVersion != rowVersion {
		return pkgerrors.ErrOptimisticLock
	}
	delete(m.departments, id)
	return nil
}

// ────────────────────── 测试装配辅助 ──────────────────────

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Student:    newMockStudentRepo(),
		Instructor: newMockInstructorRepo(),
		Course:     newMockCourseRepo(),
		Enrollment: newMockEnrollmentRepo(),
		Department: newMockDepartmentRepo(),
	}
}
