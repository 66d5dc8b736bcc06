package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Faculty) Create a test with its questions
// @Description Accepts JSON with a questions array, or multipart form fields plus a question file (csv, xlsx, pdf, docx). A file replaces any questions sent alongside it. Correct answers may be A-D, 1-4 or the option text and are stored as letters.
// @Tags Admin - Tests
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestCreateDTO false "Test with questions (JSON)"
// @Param file formData file false "Question file"
// @Success 201 {object} dto.TestCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "Missing fields, no questions, bad answers or unsupported file"
// @Failure 500 {object} dto.ErrorResponse
// @Router /test-master [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	var upload *service.FileUpload

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		if err := ctx.ShouldBind(&req); err != nil {
			controller.BindError(ctx, err)
			return
		}
		header, err := ctx.FormFile("file")
		switch {
		case err == nil:
			f, err := header.Open()
			if err != nil {
				controller.RespondError(ctx, err)
				return
			}
			defer f.Close()
			upload = &service.FileUpload{Filename: header.Filename, Size: header.Size, Content: f}
		case errors.Is(err, http.ErrMissingFile):
			if raw := ctx.PostForm("questions"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &req.Questions); err != nil {
					controller.BindError(ctx, err)
					return
				}
				// The form field skips binding, so run the same rules by hand.
				for i := range req.Questions {
					if err := binding.Validator.ValidateStruct(&req.Questions[i]); err != nil {
						controller.BindError(ctx, err)
						return
					}
				}
			}
		default:
			controller.BindError(ctx, err)
			return
		}
	} else if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	created, err := c.adminTestService.CreateTest(ctx.Request.Context(), req, upload)
	if err != nil {
		log.Warn().Err(err).Uint("trainingID", req.TrainingID).Str("testName", req.TestName).Msg("Admin CreateTest: rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateTest godoc
// @Summary (Faculty) Update a test schedule
// @Description Partial update of training_id, test_name, from_date, to_date and duration. An empty body is rejected.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Fields to change"
// @Success 200 {object} model.TestMaster
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /test-master/{test_id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	test, err := c.adminTestService.UpdateTest(ctx.Request.Context(), testID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}
