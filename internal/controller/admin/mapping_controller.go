package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type MappingController struct {
	mappingService service.MappingService
}

func NewMappingController(mappingService service.MappingService) *MappingController {
	return &MappingController{mappingService: mappingService}
}

// Map godoc
// @Summary (Faculty) Map students to a training
// @Description Already mapped students are left as they are.
// @Tags Admin - Student Trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mapping body dto.StudentTrainingRequest true "Training and students"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student_trainings [post]
func (c *MappingController) Map(ctx *gin.Context) {
	var req dto.StudentTrainingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	if err := c.mappingService.Map(ctx.Request.Context(), req.TrainingID, req.StudentIDs); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Students mapped to training"})
}

// Replace godoc
// @Summary (Faculty) Replace the students mapped to a training
// @Tags Admin - Student Trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mapping body dto.StudentTrainingSyncRequest true "Training and the complete student list"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student_trainings [put]
func (c *MappingController) Replace(ctx *gin.Context) {
	var req dto.StudentTrainingSyncRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	if err := c.mappingService.Replace(ctx.Request.Context(), req.TrainingID, req.StudentIDs); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Training students updated"})
}

// Status godoc
// @Summary Mapping state of a company's students for a training
// @Description Every active student of the company, with has_training_record Check when mapped and Uncheck otherwise.
// @Tags Admin - Student Trainings
// @Produce json
// @Security BearerAuth
// @Param cid path int true "Company ID"
// @Param tid path int true "Training ID"
// @Success 200 {array} model.MappingStatusRow
// @Failure 404 {object} dto.ErrorResponse
// @Router /student_trainings/{cid}/{tid} [get]
func (c *MappingController) Status(ctx *gin.Context) {
	companyID, ok := controller.ParseIDParam(ctx, "cid")
	if !ok {
		return
	}
	trainingID, ok := controller.ParseIDParam(ctx, "tid")
	if !ok {
		return
	}
	rows, err := c.mappingService.Status(ctx.Request.Context(), companyID, trainingID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
