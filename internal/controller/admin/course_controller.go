package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(courseService service.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// Create godoc
// @Summary (Admin) Create a course
// @Description Course names are unique; a taken name answers 409.
// @Tags Admin - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseRequest true "Course"
// @Success 201 {object} model.Course
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	course, err := c.courseService.Create(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// FindAll godoc
// @Summary List active courses
// @Tags Admin - Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Course
// @Router /courses [get]
func (c *CourseController) FindAll(ctx *gin.Context) {
	courses, err := c.courseService.FindActive(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// FindByID godoc
// @Summary Get a course, deactivated ones included
// @Tags Admin - Courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} model.Course
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) FindByID(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	course, err := c.courseService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// Update godoc
// @Summary (Admin) Update a course
// @Tags Admin - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body dto.CourseRequest true "Course"
// @Success 200 {object} model.Course
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	course, err := c.courseService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// Delete godoc
// @Summary (Admin) Deactivate a course
// @Tags Admin - Courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.courseService.Deactivate(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deactivated"})
}
