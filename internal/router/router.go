// Package router binds every controller to its path and access rule.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/auth"
	adminctrl "github.com/lshigami/lms/internal/controller/admin"
	userctrl "github.com/lshigami/lms/internal/controller/user"
	"github.com/lshigami/lms/internal/middleware"
	"github.com/lshigami/lms/internal/model"
	"go.uber.org/fx"
)

// Handlers collects the controllers the router serves.
type Handlers struct {
	fx.In

	Auth             *userctrl.AuthController
	Companies        *adminctrl.CompanyController
	Courses          *adminctrl.CourseController
	Trainings        *adminctrl.TrainingController
	Users            *adminctrl.UserController
	Roles            *adminctrl.RoleController
	AdminTests       *adminctrl.AdminTestController
	Tests            *userctrl.UserTestController
	Mappings         *adminctrl.MappingController
	Attendance       *adminctrl.AttendanceController
	Materials        *adminctrl.MaterialController
	Reports          *adminctrl.ReportController
	Lookups          *userctrl.LookupController
	StudentDocuments *userctrl.StudentDocumentController
}

// Register mounts the API on r. Login is public; everything else needs a
// bearer token, and writes are limited to admins or to staff (admin and
// faculty) depending on the resource.
func Register(r *gin.Engine, tokens *auth.TokenManager, h Handlers) {
	r.POST("/login", h.Auth.Login)

	api := r.Group("/", middleware.RequireAuth(tokens))
	adminOnly := middleware.RequireRoles(model.RoleAdmin)
	staff := middleware.RequireRoles(model.RoleAdmin, model.RoleFaculty)

	companies := api.Group("/companies")
	companies.GET("", h.Companies.FindAll)
	companies.GET("/:id", h.Companies.FindByID)
	companies.POST("", adminOnly, h.Companies.Create)
	companies.PUT("/:id", adminOnly, h.Companies.Update)
	companies.DELETE("/:id", adminOnly, h.Companies.Delete)

	courses := api.Group("/courses")
	courses.GET("", h.Courses.FindAll)
	courses.GET("/:id", h.Courses.FindByID)
	courses.POST("", adminOnly, h.Courses.Create)
	courses.PUT("/:id", adminOnly, h.Courses.Update)
	courses.DELETE("/:id", adminOnly, h.Courses.Delete)

	trainings := api.Group("/training_details")
	trainings.GET("", h.Trainings.FindAll)
	trainings.GET("/:id", h.Trainings.FindByID)
	trainings.GET("/training_tests/:training_id", h.Trainings.Tests)
	trainings.POST("", adminOnly, h.Trainings.Create)
	trainings.PUT("/:id", adminOnly, h.Trainings.Update)
	trainings.DELETE("/:id", adminOnly, h.Trainings.Delete)

	users := api.Group("/users")
	users.GET("", staff, h.Users.FindAll)
	users.GET("/:id", h.Users.FindByID)
	users.POST("", adminOnly, h.Users.Create)
	users.PUT("/:id", adminOnly, h.Users.Update)
	users.DELETE("/:id", adminOnly, h.Users.Delete)

	roles := api.Group("/roles")
	roles.GET("", h.Roles.FindAll)
	roles.GET("/:id", h.Roles.FindByID)
	roles.POST("", adminOnly, h.Roles.Create)
	roles.PUT("/:id", adminOnly, h.Roles.Update)
	roles.DELETE("/:id", adminOnly, h.Roles.Delete)

	tests := api.Group("/test-master")
	tests.GET("", h.Tests.GetAllTests)
	tests.GET("/:test_id", h.Tests.GetTestDetails)
	tests.POST("", staff, h.AdminTests.CreateTest)
	tests.PUT("/:test_id", staff, h.AdminTests.UpdateTest)

	scores := api.Group("/test-answers-score")
	scores.POST("", h.Tests.SubmitTest)
	scores.GET("/:test_id", h.Tests.GetScores)
	scores.GET("/:test_id/:userid", h.Tests.GetStudentScores)

	mappings := api.Group("/student_trainings")
	mappings.GET("/:cid/:tid", staff, h.Mappings.Status)
	mappings.POST("", staff, h.Mappings.Map)
	mappings.PUT("", staff, h.Mappings.Replace)

	attendance := api.Group("/attendance")
	attendance.GET("", h.Attendance.FindAll)
	attendance.GET("/:id", h.Attendance.FindByID)
	attendance.POST("", staff, h.Attendance.Submit)
	attendance.PUT("", staff, h.Attendance.Update)
	attendance.DELETE("/:id", staff, h.Attendance.Delete)

	materials := api.Group("/materials")
	materials.GET("", h.Materials.FindAll)
	materials.GET("/:training_id", h.Materials.FindByTraining)
	materials.GET("/file/:id", h.Materials.Download)
	materials.GET("/student_materials/:student_id", h.Materials.FindForStudent)
	materials.POST("", staff, h.Materials.Upload)
	materials.DELETE("/:id", staff, h.Materials.Delete)

	docs := api.Group("/student_documents")
	docs.GET("", h.StudentDocuments.FindAll)
	docs.GET("/:id", h.StudentDocuments.FindByID)
	docs.GET("/file/:id", h.StudentDocuments.Download)
	docs.POST("", h.StudentDocuments.Upload)
	docs.PUT("/:id", h.StudentDocuments.Update)
	docs.DELETE("/:id", h.StudentDocuments.Delete)

	api.POST("/reports", staff, h.Reports.Generate)

	others := api.Group("/others")
	others.POST("/:id", h.Lookups.CourseStudents)
	others.GET("/course_students/:id", h.Lookups.CourseStudents)
	others.GET("/courses_training_student/:courseId/:trainingId", h.Lookups.TrainingStudents)
	others.GET("/courses_training_student/:courseId/:trainingId/:att_date", h.Lookups.TrainingStudentsOn)
	others.GET("/courses_student/:id", h.Lookups.StudentCourses)
	others.GET("/courses_trainings/:id", h.Lookups.CourseTrainings)
	others.GET("/company_courses/:id", h.Lookups.CompanyCourses)
	others.GET("/company_students/:id", h.Lookups.CompanyStudents)
	others.GET("/student_trainings/:id", h.Lookups.StudentTrainings)
	others.GET("/student_trainings_tests/:user_id/:training_id", h.Lookups.StudentTrainingTests)
	others.GET("/attendance/:trainingId/:courseId/:companyId", h.Attendance.Grid)
}
