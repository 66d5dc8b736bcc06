package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type TrainingController struct {
	trainingService service.TrainingService
}

func NewTrainingController(trainingService service.TrainingService) *TrainingController {
	return &TrainingController{trainingService: trainingService}
}

// Create godoc
// @Summary (Admin) Schedule a training
// @Tags Admin - Trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param training body dto.TrainingRequest true "Training"
// @Success 201 {object} model.TrainingDetailRow
// @Failure 400 {object} dto.ErrorResponse
// @Router /training_details [post]
func (c *TrainingController) Create(ctx *gin.Context) {
	var req dto.TrainingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	training, err := c.trainingService.Create(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, training)
}

// FindAll godoc
// @Summary List active trainings
// @Tags Admin - Trainings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TrainingDetailRow
// @Router /training_details [get]
func (c *TrainingController) FindAll(ctx *gin.Context) {
	trainings, err := c.trainingService.FindActive(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, trainings)
}

// FindByID godoc
// @Summary Get an active training
// @Tags Admin - Trainings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Training ID"
// @Success 200 {object} model.TrainingDetailRow
// @Failure 404 {object} dto.ErrorResponse
// @Router /training_details/{id} [get]
func (c *TrainingController) FindByID(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	training, err := c.trainingService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, training)
}

// Update godoc
// @Summary (Admin) Update a training
// @Tags Admin - Trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Training ID"
// @Param training body dto.TrainingRequest true "Training"
// @Success 200 {object} model.TrainingDetailRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /training_details/{id} [put]
func (c *TrainingController) Update(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TrainingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	training, err := c.trainingService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, training)
}

// Delete godoc
// @Summary (Admin) Deactivate a training
// @Tags Admin - Trainings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Training ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /training_details/{id} [delete]
func (c *TrainingController) Delete(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.trainingService.Deactivate(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Training deactivated"})
}

// Tests godoc
// @Summary Tests scheduled for a training
// @Tags Admin - Trainings
// @Produce json
// @Security BearerAuth
// @Param training_id path int true "Training ID"
// @Success 200 {array} model.TestMaster
// @Failure 404 {object} dto.ErrorResponse
// @Router /training_details/training_tests/{training_id} [get]
func (c *TrainingController) Tests(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "training_id")
	if !ok {
		return
	}
	tests, err := c.trainingService.Tests(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}
