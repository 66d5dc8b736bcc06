package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/service"
)

// LookupController serves the relational lookups under /others. Every
// lookup answers 404 when nothing matches.
type LookupController struct {
	lookupService service.LookupService
}

func NewLookupController(lookupService service.LookupService) *LookupController {
	return &LookupController{lookupService: lookupService}
}

func writeRows(ctx *gin.Context, rows any, err error) {
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// CourseStudents godoc
// @Summary Students of the company that owns a course
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {array} model.StudentBrief
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/course_students/{id} [get]
func (c *LookupController) CourseStudents(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.lookupService.CourseStudents(ctx.Request.Context(), id)
	writeRows(ctx, rows, err)
}

// TrainingStudents godoc
// @Summary Students of the company running a training
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Param trainingId path int true "Training ID"
// @Success 200 {array} model.StudentBrief
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/courses_training_student/{courseId}/{trainingId} [get]
func (c *LookupController) TrainingStudents(ctx *gin.Context) {
	courseID, ok := controller.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	trainingID, ok := controller.ParseIDParam(ctx, "trainingId")
	if !ok {
		return
	}
	rows, err := c.lookupService.TrainingStudents(ctx.Request.Context(), courseID, trainingID)
	writeRows(ctx, rows, err)
}

// TrainingStudentsOn godoc
// @Summary Students of a training with their attendance on a date
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Param trainingId path int true "Training ID"
// @Param att_date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} model.StudentAttendanceRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/courses_training_student/{courseId}/{trainingId}/{att_date} [get]
func (c *LookupController) TrainingStudentsOn(ctx *gin.Context) {
	courseID, ok := controller.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	trainingID, ok := controller.ParseIDParam(ctx, "trainingId")
	if !ok {
		return
	}
	rows, err := c.lookupService.TrainingStudentsOn(ctx.Request.Context(), courseID, trainingID, ctx.Param("att_date"))
	writeRows(ctx, rows, err)
}

// StudentCourses godoc
// @Summary Courses a student attends
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {array} model.Course
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/courses_student/{id} [get]
func (c *LookupController) StudentCourses(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.lookupService.StudentCourses(ctx.Request.Context(), id)
	writeRows(ctx, rows, err)
}

// CourseTrainings godoc
// @Summary Active trainings of a course
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {array} model.TrainingDetail
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/courses_trainings/{id} [get]
func (c *LookupController) CourseTrainings(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.lookupService.CourseTrainings(ctx.Request.Context(), id)
	writeRows(ctx, rows, err)
}

// CompanyCourses godoc
// @Summary Active courses of a company
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {array} model.Course
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/company_courses/{id} [get]
func (c *LookupController) CompanyCourses(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.lookupService.CompanyCourses(ctx.Request.Context(), id)
	writeRows(ctx, rows, err)
}

// CompanyStudents godoc
// @Summary Active students of a company
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {array} model.User
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/company_students/{id} [get]
func (c *LookupController) CompanyStudents(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.lookupService.CompanyStudents(ctx.Request.Context(), id)
	writeRows(ctx, rows, err)
}

// StudentTrainings godoc
// @Summary Trainings a student is mapped to
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {array} model.TrainingDetail
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/student_trainings/{id} [get]
func (c *LookupController) StudentTrainings(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.lookupService.StudentTrainings(ctx.Request.Context(), id)
	writeRows(ctx, rows, err)
}

// StudentTrainingTests godoc
// @Summary Tests of a training a student is mapped to
// @Tags User - Lookups
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "Student ID"
// @Param training_id path int true "Training ID"
// @Success 200 {array} model.TestMaster
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/student_trainings_tests/{user_id}/{training_id} [get]
func (c *LookupController) StudentTrainingTests(ctx *gin.Context) {
	studentID, ok := controller.ParseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	trainingID, ok := controller.ParseIDParam(ctx, "training_id")
	if !ok {
		return
	}
	rows, err := c.lookupService.StudentTrainingTests(ctx.Request.Context(), studentID, trainingID)
	writeRows(ctx, rows, err)
}
