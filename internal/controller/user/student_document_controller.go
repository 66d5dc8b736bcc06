package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type StudentDocumentController struct {
	documentService service.StudentDocumentService
}

func NewStudentDocumentController(documentService service.StudentDocumentService) *StudentDocumentController {
	return &StudentDocumentController{documentService: documentService}
}

// Upload godoc
// @Summary Upload student documents
// @Description One document row per file under the documents field, all written or none. Students may only upload for themselves.
// @Tags User - Student Documents
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param student_id formData int true "Student ID"
// @Param course_id formData int true "Course ID"
// @Param project_type formData string false "Project type"
// @Param documents formData file true "Documents"
// @Success 201 {array} model.StudentDocument
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /student_documents [post]
func (c *StudentDocumentController) Upload(ctx *gin.Context) {
	var req dto.StudentDocumentUploadRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	files, closeAll, err := controller.Uploads(ctx, "documents")
	if err != nil {
		controller.BindError(ctx, err)
		return
	}
	defer closeAll()

	docs, err := c.documentService.Upload(ctx.Request.Context(), controller.Actor(ctx), req, files)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, docs)
}

// FindAll godoc
// @Summary List student documents
// @Description Students only get their own documents.
// @Tags User - Student Documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.StudentDocument
// @Router /student_documents [get]
func (c *StudentDocumentController) FindAll(ctx *gin.Context) {
	docs, err := c.documentService.FindAll(ctx.Request.Context(), controller.Actor(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, docs)
}

// FindByID godoc
// @Summary Get a student document
// @Tags User - Student Documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} model.StudentDocument
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student_documents/{id} [get]
func (c *StudentDocumentController) FindByID(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	doc, err := c.documentService.FindByID(ctx.Request.Context(), controller.Actor(ctx), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

// Download godoc
// @Summary Download a student document
// @Tags User - Student Documents
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {file} file
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student_documents/file/{id} [get]
func (c *StudentDocumentController) Download(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	f, name, err := c.documentService.Open(ctx.Request.Context(), controller.Actor(ctx), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	defer f.Close()
	controller.SendFile(ctx, name, f)
}

// Update godoc
// @Summary Update a student document
// @Tags User - Student Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param document body dto.StudentDocumentUpdateRequest true "Document"
// @Success 200 {object} model.StudentDocument
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student_documents/{id} [put]
func (c *StudentDocumentController) Update(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.StudentDocumentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	doc, err := c.documentService.Update(ctx.Request.Context(), controller.Actor(ctx), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

// Delete godoc
// @Summary Delete a student document and its file
// @Tags User - Student Documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student_documents/{id} [delete]
func (c *StudentDocumentController) Delete(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.documentService.Delete(ctx.Request.Context(), controller.Actor(ctx), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Document deleted"})
}
