package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type AttendanceController struct {
	attendanceService service.AttendanceService
}

func NewAttendanceController(attendanceService service.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Submit godoc
// @Summary (Faculty) Record attendance
// @Description Upserts every record by student, course, training and date in one transaction. Dates may not be in the future nor older than the configured window.
// @Tags Admin - Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param records body []dto.AttendanceRecordRequest true "Attendance records"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /attendance [post]
func (c *AttendanceController) Submit(ctx *gin.Context) {
	var records []dto.AttendanceRecordRequest
	if err := ctx.ShouldBindJSON(&records); err != nil {
		controller.BindError(ctx, err)
		return
	}
	n, err := c.attendanceService.Submit(ctx.Request.Context(), records)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Attendance recorded", Data: gin.H{"count": n}})
}

// FindAll godoc
// @Summary List attendance records
// @Tags Admin - Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Attendance
// @Router /attendance [get]
func (c *AttendanceController) FindAll(ctx *gin.Context) {
	rows, err := c.attendanceService.FindAll(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// FindByID godoc
// @Summary Get an attendance record
// @Tags Admin - Attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} model.Attendance
// @Failure 404 {object} dto.ErrorResponse
// @Router /attendance/{id} [get]
func (c *AttendanceController) FindByID(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	row, err := c.attendanceService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, row)
}

// Update godoc
// @Summary (Faculty) Correct attendance records
// @Description Updates each record by id in one transaction.
// @Tags Admin - Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param records body []dto.AttendanceUpdateRequest true "Records with their ids"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attendance [put]
func (c *AttendanceController) Update(ctx *gin.Context) {
	var records []dto.AttendanceUpdateRequest
	if err := ctx.ShouldBindJSON(&records); err != nil {
		controller.BindError(ctx, err)
		return
	}
	if err := c.attendanceService.UpdateBatch(ctx.Request.Context(), records); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attendance updated"})
}

// Delete godoc
// @Summary (Faculty) Delete an attendance record
// @Tags Admin - Attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attendance/{id} [delete]
func (c *AttendanceController) Delete(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.attendanceService.Delete(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attendance deleted"})
}

// Grid godoc
// @Summary Attendance rows of a training
// @Description One row per recorded student and date. Students without a record do not appear.
// @Tags Admin - Attendance
// @Produce json
// @Security BearerAuth
// @Param trainingId path int true "Training ID"
// @Param courseId path int true "Course ID"
// @Param companyId path int true "Company ID"
// @Success 200 {array} model.AttendanceRow
// @Failure 404 {object} dto.ErrorResponse
// @Router /others/attendance/{trainingId}/{courseId}/{companyId} [get]
func (c *AttendanceController) Grid(ctx *gin.Context) {
	trainingID, ok := controller.ParseIDParam(ctx, "trainingId")
	if !ok {
		return
	}
	courseID, ok := controller.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	companyID, ok := controller.ParseIDParam(ctx, "companyId")
	if !ok {
		return
	}
	rows, err := c.attendanceService.Grid(ctx.Request.Context(), trainingID, courseID, companyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
