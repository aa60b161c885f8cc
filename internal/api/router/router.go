package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Taher-PIO/contoso-migrate-sub001/config"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/api/handler"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/api/middleware"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/response"
)

// maxBodyBytes 全局请求体大小上限（1MB）
const maxBodyBytes = 1 << 20

// Setup 创建 Gin 引擎并注册所有路由
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, 10004, "请求的资源不存在")
	})

	// ── 健康检查 ──
	r.GET("/health", h.Health.Check)

	// ── 业务路由 ──
	v1 := r.Group("/api/v1")
	{
		students := v1.Group("/students")
		{
			students.POST("", h.Student.CreateStudent)
			students.GET("", h.Student.ListStudents)
			students.GET("/:id", h.Student.GetStudent)
			students.PUT("/:id", h.Student.UpdateStudent)
			students.DELETE("/:id", h.Student.DeleteStudent)
		}

		instructors := v1.Group("/instructors")
		{
			instructors.POST("", h.Instructor.CreateInstructor)
			instructors.GET("", h.Instructor.ListInstructors)
			instructors.GET("/:id", h.Instructor.GetInstructor)
			instructors.PUT("/:id", h.Instructor.UpdateInstructor)
			instructors.DELETE("/:id", h.Instructor.DeleteInstructor)
		}

		courses := v1.Group("/courses")
		{
			courses.POST("", h.Course.CreateCourse)
			courses.GET("", h.Course.ListCourses)
			courses.GET("/:id", h.Course.GetCourse)
			courses.PUT("/:id", h.Course.UpdateCourse)
			courses.DELETE("/:id", h.Course.DeleteCourse)
		}

		enrollments := v1.Group("/enrollments")
		{
			enrollments.POST("", h.Enrollment.CreateEnrollment)
			enrollments.GET("", h.Enrollment.ListEnrollments)
			enrollments.GET("/:id", h.Enrollment.GetEnrollment)
			enrollments.PUT("/:id", h.Enrollment.UpdateEnrollment)
			enrollments.DELETE("/:id", h.Enrollment.DeleteEnrollment)
		}

		departments := v1.Group("/departments")
		{
			departments.POST("", h.Department.CreateDepartment)
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/:id", h.Department.GetDepartment)
			departments.PUT("/:id", h.Department.UpdateDepartment)
			departments.DELETE("/:id", h.Department.DeleteDepartment)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/enrollment-dates", h.Stats.EnrollmentDates)
		}
	}

	return r
}
