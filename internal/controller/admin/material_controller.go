package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type MaterialController struct {
	materialService service.MaterialService
}

func NewMaterialController(materialService service.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

// Upload godoc
// @Summary (Faculty) Upload training materials
// @Description Up to 10 files under the files field; one material row per file.
// @Tags Admin - Materials
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param training_id formData int true "Training ID"
// @Param faculty_id formData int true "Faculty ID"
// @Param material_name formData string true "Material name"
// @Param training_date formData string true "Training date (YYYY-MM-DD)"
// @Param files formData file true "Files"
// @Success 201 {array} model.Material
// @Failure 400 {object} dto.ErrorResponse
// @Router /materials [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	var req dto.MaterialUploadRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	files, closeAll, err := controller.Uploads(ctx, "files")
	if err != nil {
		controller.BindError(ctx, err)
		return
	}
	defer closeAll()

	materials, err := c.materialService.Upload(ctx.Request.Context(), req, files)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, materials)
}

// FindAll godoc
// @Summary List materials
// @Tags Admin - Materials
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MaterialRow
// @Router /materials [get]
func (c *MaterialController) FindAll(ctx *gin.Context) {
	rows, err := c.materialService.FindAll(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// FindByTraining godoc
// @Summary Materials of a training
// @Tags Admin - Materials
// @Produce json
// @Security BearerAuth
// @Param training_id path int true "Training ID"
// @Success 200 {array} model.MaterialRow
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/{training_id} [get]
func (c *MaterialController) FindByTraining(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "training_id")
	if !ok {
		return
	}
	rows, err := c.materialService.FindByTraining(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// FindForStudent godoc
// @Summary Materials of the trainings a student is mapped to
// @Tags Admin - Materials
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {array} model.StudentMaterialRow
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/student_materials/{student_id} [get]
func (c *MaterialController) FindForStudent(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	rows, err := c.materialService.FindForStudent(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// Download godoc
// @Summary Download a material file
// @Tags Admin - Materials
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/file/{id} [get]
func (c *MaterialController) Download(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	f, name, err := c.materialService.Open(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	defer f.Close()
	controller.SendFile(ctx, name, f)
}

// Delete godoc
// @Summary (Faculty) Delete a material and its file
// @Tags Admin - Materials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.materialService.Delete(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Material deleted"})
}
