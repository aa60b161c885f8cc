//go:build integration

package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/database"
	pkgerrors "github.com/Taher-PIO/contoso-migrate-sub001/pkg/errors"
)

// 集成测试需要真实 PostgreSQL：
//
//	CONTOSO_TEST_DSN="host=localhost port=5432 user=postgres dbname=contoso_test sslmode=disable" \
//	go test -tags integration ./internal/repository/...

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CONTOSO_TEST_DSN")
	if dsn == "" {
		t.Skip("未设置 CONTOSO_TEST_DSN，跳过集成测试")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		t.Fatalf("执行迁移失败: %v", err)
	}

	// 每个用例从干净状态开始
	if err := db.Exec(`TRUNCATE enrollments, course_instructors, office_assignments,
		courses, departments, instructors, students RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("清空测试表失败: %v", err)
	}

	return db
}

func seedTestDepartment(t *testing.T, db *gorm.DB, name string) *model.Department {
	t.Helper()
	dept := &model.Department{
		Name:      name,
		Budget:    100000,
		StartDate: time.Date(2007, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := NewDepartmentRepo(db).Create(context.Background(), dept); err != nil {
		t.Fatalf("创建院系失败: %v", err)
	}
	return dept
}

// ════════════════ 院系乐观锁 ════════════════

func TestDepartmentRepo_Update_VersionIncrements(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepo(db)
	ctx := context.Background()

	dept := seedTestDepartment(t, db, "Engineering")
	if dept.RowVersion != 1 {
		t.Fatalf("新建院系 RowVersion = %d, 期望 1", dept.RowVersion)
	}

	dept.Budget = 120000
	if err := repo.Update(ctx, dept); err != nil {
		t.Fatalf("更新院系失败: %v", err)
	}
	if dept.RowVersion != 2 {
		t.Errorf("更新后 RowVersion = %d, 期望 2", dept.RowVersion)
	}

	stored, err := repo.GetByID(ctx, dept.ID)
	if err != nil {
		t.Fatalf("读取院系失败: %v", err)
	}
	if stored.RowVersion != 2 || stored.Budget != 120000 {
		t.Errorf("数据库中 version=%d budget=%v, 期望 2/120000", stored.RowVersion, stored.Budget)
	}
}

// 两个会话读取同一版本，后提交者必须失败且不改动任何行
func TestDepartmentRepo_Update_TwoSessionConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepo(db)
	ctx := context.Background()

	dept := seedTestDepartment(t, db, "Mathematics")

	sessionA, _ := repo.GetByID(ctx, dept.ID)
	sessionB, _ := repo.GetByID(ctx, dept.ID)

	sessionA.Budget = 150000
	if err := repo.Update(ctx, sessionA); err != nil {
		t.Fatalf("会话 A 更新失败: %v", err)
	}

	sessionB.Budget = 200000
	err := repo.Update(ctx, sessionB)
	if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Fatalf("会话 B err = %v, 期望 ErrOptimisticLock", err)
	}

	stored, _ := repo.GetByID(ctx, dept.ID)
	if stored.Budget != 150000 {
		t.Errorf("budget = %v, 期望会话 A 写入的 150000（冲突提交不得改动数据）", stored.Budget)
	}
	if stored.RowVersion != 2 {
		t.Errorf("version = %d, 期望 2（冲突提交不得递增版本）", stored.RowVersion)
	}
}

func TestDepartmentRepo_Update_ConcurrentDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepo(db)
	ctx := context.Background()

	dept := seedTestDepartment(t, db, "Economics")

	held, _ := repo.GetByID(ctx, dept.ID)
	if err := repo.Delete(ctx, dept.ID, dept.RowVersion); err != nil {
		t.Fatalf("删除院系失败: %v", err)
	}

	held.Budget = 999999
	err := repo.Update(ctx, held)
	if !errors.Is(err, pkgerrors.ErrConcurrentDelete) {
		t.Errorf("err = %v, 期望 ErrConcurrentDelete（版本过期与并发删除须可区分）", err)
	}
}

func TestDepartmentRepo_Delete_StaleVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepo(db)
	ctx := context.Background()

	dept := seedTestDepartment(t, db, "Physics")

	// 他人先行修改
	dept2, _ := repo.GetByID(ctx, dept.ID)
	dept2.Budget = 90000
	if err := repo.Update(ctx, dept2); err != nil {
		t.Fatalf("更新院系失败: %v", err)
	}

	err := repo.Delete(ctx, dept.ID, 1)
	if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Fatalf("err = %v, 期望 ErrOptimisticLock", err)
	}

	// 记录仍在
	if _, err := repo.GetByID(ctx, dept.ID); err != nil {
		t.Errorf("冲突删除后记录丢失: %v", err)
	}

	// 已不存在时幂等成功
	if err := repo.Delete(ctx, dept.ID, 2); err != nil {
		t.Fatalf("删除院系失败: %v", err)
	}
	if err := repo.Delete(ctx, dept.ID, 2); err != nil {
		t.Errorf("重复删除 err = %v, 期望 nil", err)
	}
}

// ════════════════ 级联删除 ════════════════

func TestStudentRepo_Delete_CascadesEnrollments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	studentRepo := NewStudentRepo(db)
	courseRepo := NewCourseRepo(db)
	enrollmentRepo := NewEnrollmentRepo(db)

	dept := seedTestDepartment(t, db, "Engineering")

	student := &model.Student{
		LastName:       "Alexander",
		FirstName:      "Carson",
		EnrollmentDate: time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := studentRepo.Create(ctx, student); err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}

	course := &model.Course{ID: 1050, Title: "Chemistry", Credits: 3, DepartmentID: dept.ID}
	if err := courseRepo.Create(ctx, course); err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}

	enrollment := &model.Enrollment{StudentID: student.ID, CourseID: course.ID}
	if err := enrollmentRepo.Create(ctx, enrollment); err != nil {
		t.Fatalf("创建选课记录失败: %v", err)
	}

	if err := studentRepo.Delete(ctx, student.ID); err != nil {
		t.Fatalf("删除学生失败: %v", err)
	}

	count, err := enrollmentRepo.CountByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("统计选课记录失败: %v", err)
	}
	if count != 0 {
		t.Errorf("学生删除后残留 %d 条选课记录, 期望级联清除", count)
	}

	// 课程不受影响
	if _, err := courseRepo.GetByID(ctx, course.ID); err != nil {
		t.Errorf("课程被误删: %v", err)
	}
}

func TestCourseRepo_Delete_CascadesEnrollments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	studentRepo := NewStudentRepo(db)
	courseRepo := NewCourseRepo(db)
	enrollmentRepo := NewEnrollmentRepo(db)

	dept := seedTestDepartment(t, db, "English")

	student := &model.Student{
		LastName:       "Li",
		FirstName:      "Yan",
		EnrollmentDate: time.Date(2017, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := studentRepo.Create(ctx, student); err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}

	course := &model.Course{ID: 2021, Title: "Composition", Credits: 3, DepartmentID: dept.ID}
	if err := courseRepo.Create(ctx, course); err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}

	if err := enrollmentRepo.Create(ctx, &model.Enrollment{StudentID: student.ID, CourseID: course.ID}); err != nil {
		t.Fatalf("创建选课记录失败: %v", err)
	}

	if err := courseRepo.Delete(ctx, course.ID); err != nil {
		t.Fatalf("删除课程失败: %v", err)
	}

	_, total, err := enrollmentRepo.List(ctx, &EnrollmentListFilters{CourseID: course.ID}, 0, 10)
	if err != nil {
		t.Fatalf("列出选课记录失败: %v", err)
	}
	if total != 0 {
		t.Errorf("课程删除后残留 %d 条选课记录, 期望级联清除", total)
	}

	// 学生不受影响
	if _, err := studentRepo.GetByID(ctx, student.ID); err != nil {
		t.Errorf("学生被误删: %v", err)
	}
}

// ════════════════ 课程编号 ════════════════

func TestCourseRepo_ExistsByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepo(db)
	ctx := context.Background()

	dept := seedTestDepartment(t, db, "Mathematics")

	exists, err := repo.ExistsByID(ctx, 1045)
	if err != nil {
		t.Fatalf("探测课程编号失败: %v", err)
	}
	if exists {
		t.Error("空表探测 = true, 期望 false")
	}

	if err := repo.Create(ctx, &model.Course{ID: 1045, Title: "Calculus", Credits: 4, DepartmentID: dept.ID}); err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}

	exists, err = repo.ExistsByID(ctx, 1045)
	if err != nil {
		t.Fatalf("探测课程编号失败: %v", err)
	}
	if !exists {
		t.Error("已占用编号探测 = false, 期望 true")
	}
}

// ════════════════ 办公室分配 ════════════════

func TestInstructorRepo_SetOffice_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInstructorRepo(db)
	ctx := context.Background()

	instructor := &model.Instructor{
		LastName:  "Harui",
		FirstName: "Roger",
		HireDate:  time.Date(1998, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, instructor); err != nil {
		t.Fatalf("创建教师失败: %v", err)
	}

	if err := repo.SetOffice(ctx, instructor.ID, "Gowan 27"); err != nil {
		t.Fatalf("写入办公室失败: %v", err)
	}
	// 重复写入走更新路径
	if err := repo.SetOffice(ctx, instructor.ID, "Gowan 28"); err != nil {
		t.Fatalf("更新办公室失败: %v", err)
	}

	got, err := repo.GetByID(ctx, instructor.ID)
	if err != nil {
		t.Fatalf("读取教师失败: %v", err)
	}
	if got.OfficeAssignment == nil || got.OfficeAssignment.Location != "Gowan 28" {
		t.Errorf("办公室 = %+v, 期望 Gowan 28", got.OfficeAssignment)
	}

	if err := repo.RemoveOffice(ctx, instructor.ID); err != nil {
		t.Fatalf("删除办公室失败: %v", err)
	}
	got, _ = repo.GetByID(ctx, instructor.ID)
	if got.OfficeAssignment != nil {
		t.Errorf("办公室 = %+v, 期望已删除", got.OfficeAssignment)
	}
}

// ════════════════ 教师删除的关联行为 ════════════════

func TestInstructorRepo_Delete_NullsDepartmentAdministrator(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	instructorRepo := NewInstructorRepo(db)
	departmentRepo := NewDepartmentRepo(db)

	instructor := &model.Instructor{
		LastName:  "Kapoor",
		FirstName: "Candace",
		HireDate:  time.Date(2001, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := instructorRepo.Create(ctx, instructor); err != nil {
		t.Fatalf("创建教师失败: %v", err)
	}

	dept := &model.Department{
		Name:         "Economics",
		Budget:       100000,
		StartDate:    time.Date(2007, 9, 1, 0, 0, 0, 0, time.UTC),
		InstructorID: &instructor.ID,
	}
	if err := departmentRepo.Create(ctx, dept); err != nil {
		t.Fatalf("创建院系失败: %v", err)
	}

	if err := instructorRepo.Delete(ctx, instructor.ID); err != nil {
		t.Fatalf("删除教师失败: %v", err)
	}

	stored, err := departmentRepo.GetByID(ctx, dept.ID)
	if err != nil {
		t.Fatalf("读取院系失败: %v", err)
	}
	if stored.InstructorID != nil {
		t.Errorf("instructor_id = %v, 期望已置空", *stored.InstructorID)
	}
}
