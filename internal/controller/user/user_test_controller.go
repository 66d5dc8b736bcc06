package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
	}
}

// GetAllTests godoc
// @Summary List tests
// @Description Tests with their question counts. from and to keep only tests whose schedule window overlaps the range.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param training_id query int false "Training ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} model.TestSummaryRow
// @Failure 400 {object} dto.ErrorResponse
// @Router /test-master [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	var filter dto.TestListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		controller.BindError(ctx, err)
		return
	}
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context(), filter)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Get a test with its questions
// @Description Correct answers are only included for admin and faculty callers.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /test-master/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	actor := controller.Actor(ctx)
	withAnswers := actor.RoleID == model.RoleAdmin || actor.RoleID == model.RoleFaculty
	details, err := c.userTestService.GetTestDetails(ctx.Request.Context(), testID, withAnswers)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// SubmitTest godoc
// @Summary Submit answers for a test
// @Description Stores every answer and one score row. Students may only submit for themselves; each submission adds a new score.
// @Tags User - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.TestSubmitDTO true "Answers"
// @Success 201 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /test-answers-score [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	var req dto.TestSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	result, err := c.testSubmissionService.SubmitTest(ctx.Request.Context(), controller.Actor(ctx), req)
	if err != nil {
		log.Warn().Err(err).Uint("testID", req.TestID).Uint("studentID", req.StudentID).Msg("User SubmitTest: rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetScores godoc
// @Summary Scores of a test
// @Description Every score of the test joined with the student name, in submission order.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {array} model.TestScoreRow
// @Failure 404 {object} dto.ErrorResponse
// @Router /test-answers-score/{test_id} [get]
func (c *UserTestController) GetScores(ctx *gin.Context) {
	c.scores(ctx, false)
}

// GetStudentScores godoc
// @Summary Scores of one student for a test
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param userid path int true "Student ID"
// @Success 200 {array} model.TestScoreRow
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /test-answers-score/{test_id}/{userid} [get]
func (c *UserTestController) GetStudentScores(ctx *gin.Context) {
	c.scores(ctx, true)
}

func (c *UserTestController) scores(ctx *gin.Context, perStudent bool) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var studentID *uint
	if perStudent {
		id, ok := controller.ParseIDParam(ctx, "userid")
		if !ok {
			return
		}
		studentID = &id
	}
	// Students only ever see their own scores.
	if actor := controller.Actor(ctx); actor.RoleID == model.RoleStudent {
		if studentID != nil && *studentID != actor.ID {
			controller.RespondError(ctx, service.ErrForbidden)
			return
		}
		studentID = &actor.ID
	}
	rows, err := c.testSubmissionService.GetScores(ctx.Request.Context(), testID, studentID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
