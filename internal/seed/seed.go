package seed

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Taher-PIO/contoso-migrate-sub001/internal/model"
)

// Run 幂等写入首次运行的示例数据
// 已存在学生记录时视为已初始化，直接跳过
func Run(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.Student{}).Count(&count).Error; err != nil {
		return fmt.Errorf("检查初始数据失败: %w", err)
	}
	if count > 0 {
		logger.Info("示例数据已存在，跳过初始化")
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// ── 教师 ──
		instructors := []*model.Instructor{
			{LastName: "Abercrombie", FirstName: "Kim", HireDate: date(1995, 3, 11)},
			{LastName: "Fakhouri", FirstName: "Fadi", HireDate: date(2002, 7, 6)},
			{LastName: "Harui", FirstName: "Roger", HireDate: date(1998, 7, 1)},
			{LastName: "Kapoor", FirstName: "Candace", HireDate: date(2001, 1, 15)},
			{LastName: "Zheng", FirstName: "Roger", HireDate: date(2004, 2, 12)},
		}
		for _, ins := range instructors {
			if err := tx.Create(ins).Error; err != nil {
				return err
			}
		}
		byLast := make(map[string]*model.Instructor, len(instructors))
		for _, ins := range instructors {
			byLast[ins.LastName] = ins
		}

		// ── 办公室分配 ──
		offices := []*model.OfficeAssignment{
			{InstructorID: byLast["Fakhouri"].ID, Location: "Smith 17"},
			{InstructorID: byLast["Harui"].ID, Location: "Gowan 27"},
			{InstructorID: byLast["Kapoor"].ID, Location: "Thompson 304"},
		}
		for _, o := range offices {
			if err := tx.Create(o).Error; err != nil {
				return err
			}
		}

		// ── 院系 ──
		departments := []*model.Department{
			{Name: "English", Budget: 350000, StartDate: date(2007, 9, 1), InstructorID: &byLast["Abercrombie"].ID},
			{Name: "Mathematics", Budget: 100000, StartDate: date(2007, 9, 1), InstructorID: &byLast["Fakhouri"].ID},
			{Name: "Engineering", Budget: 350000, StartDate: date(2007, 9, 1), InstructorID: &byLast["Harui"].ID},
			{Name: "Economics", Budget: 100000, StartDate: date(2007, 9, 1), InstructorID: &byLast["Kapoor"].ID},
		}
		for _, d := range departments {
			if err := tx.Create(d).Error; err != nil {
				return err
			}
		}
		deptByName := make(map[string]*model.Department, len(departments))
		for _, d := range departments {
			deptByName[d.Name] = d
		}

		// ── 课程（主键为课程编号，调用方指定） ──
		courses := []*model.Course{
			{ID: 1050, Title: "Chemistry", Credits: 3, DepartmentID: deptByName["Engineering"].ID},
			{ID: 4022, Title: "Microeconomics", Credits: 3, DepartmentID: deptByName["Economics"].ID},
			{ID: 4041, Title: "Macroeconomics", Credits: 3, DepartmentID: deptByName["Economics"].ID},
			{ID: 1045, Title: "Calculus", Credits: 4, DepartmentID: deptByName["Mathematics"].ID},
			{ID: 3141, Title: "Trigonometry", Credits: 4, DepartmentID: deptByName["Mathematics"].ID},
			{ID: 2021, Title: "Composition", Credits: 3, DepartmentID: deptByName["English"].ID},
			{ID: 2042, Title: "Literature", Credits: 4, DepartmentID: deptByName["English"].ID},
		}
		for _, c := range courses {
			if err := tx.Omit("Instructors", "Enrollments", "Department").Create(c).Error; err != nil {
				return err
			}
		}

		// ── 授课关系 ──
		teaching := map[int64][]*model.Instructor{
			1050: {byLast["Kapoor"], byLast["Harui"]},
			4022: {byLast["Zheng"]},
			4041: {byLast["Zheng"]},
			1045: {byLast["Fakhouri"]},
			3141: {byLast["Harui"]},
			2021: {byLast["Abercrombie"]},
			2042: {byLast["Abercrombie"]},
		}
		for _, c := range courses {
			list := teaching[c.ID]
			if len(list) == 0 {
				continue
			}
			assoc := make([]model.Instructor, 0, len(list))
			for _, ins := range list {
				assoc = append(assoc, model.Instructor{ID: ins.ID})
			}
			if err := tx.Model(c).Association("Instructors").Replace(assoc); err != nil {
				return err
			}
		}

		// ── 学生 ──
		students := []*model.Student{
			{LastName: "Alexander", FirstName: "Carson", EnrollmentDate: date(2019, 9, 1)},
			{LastName: "Alonso", FirstName: "Meredith", EnrollmentDate: date(2017, 9, 1)},
			{LastName: "Anand", FirstName: "Arturo", EnrollmentDate: date(2018, 9, 1)},
			{LastName: "Barzdukas", FirstName: "Gytis", EnrollmentDate: date(2017, 9, 1)},
			{LastName: "Li", FirstName: "Yan", EnrollmentDate: date(2017, 9, 1)},
			{LastName: "Justice", FirstName: "Peggy", EnrollmentDate: date(2016, 9, 1)},
			{LastName: "Norman", FirstName: "Laura", EnrollmentDate: date(2018, 9, 1)},
			{LastName: "Olivetto", FirstName: "Nino", EnrollmentDate: date(2019, 9, 1)},
		}
		for _, s := range students {
			if err := tx.Create(s).Error; err != nil {
				return err
			}
		}
		stuByLast := make(map[string]*model.Student, len(students))
		for _, s := range students {
			stuByLast[s.LastName] = s
		}

		// ── 选课记录 ──
		type enrollmentSeed struct {
			student string
			course  int64
			grade   *model.Grade
		}
		enrollments := []enrollmentSeed{
			{"Alexander", 1050, gradePtr(model.GradeA)},
			{"Alexander", 4022, gradePtr(model.GradeC)},
			{"Alexander", 4041, gradePtr(model.GradeB)},
			{"Alonso", 1045, gradePtr(model.GradeB)},
			{"Alonso", 3141, gradePtr(model.GradeB)},
			{"Alonso", 2021, gradePtr(model.GradeB)},
			{"Anand", 1050, nil}, // 尚未评分
			{"Anand", 4022, gradePtr(model.GradeB)},
			{"Barzdukas", 1050, gradePtr(model.GradeB)},
			{"Li", 2021, gradePtr(model.GradeB)},
			{"Justice", 2042, gradePtr(model.GradeB)},
		}
		for _, e := range enrollments {
			record := &model.Enrollment{
				StudentID: stuByLast[e.student].ID,
				CourseID:  e.course,
				Grade:     e.grade,
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("初始化示例数据失败: %w", err)
	}

	logger.Info("示例数据初始化完成",
		zap.Int("students", 8),
		zap.Int("instructors", 5),
		zap.Int("departments", 4),
		zap.Int("courses", 7),
	)
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func gradePtr(g model.Grade) *model.Grade { return &g }
