package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// Generate godoc
// @Summary Score report
// @Description One row per test score of the student, training, course or company named by id and type.
// @Tags Admin - Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body dto.ReportRequest true "Report subject"
// @Success 200 {array} model.ReportRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports [post]
func (c *ReportController) Generate(ctx *gin.Context) {
	var req dto.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	rows, err := c.reportService.Generate(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
