package service

import (
	"context"
	"fmt"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestSubmissionService records student answers and their scores.
type TestSubmissionService interface {
	SubmitTest(ctx context.Context, actor Actor, req dto.TestSubmitDTO) (*dto.SubmissionResultDTO, error)
	// GetScores lists every score of the test; studentID narrows it to one student.
	GetScores(ctx context.Context, testID uint, studentID *uint) ([]model.TestScoreRow, error)
}

type testSubmissionService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	scoreRepo    repository.ScoreRepository
	db           *gorm.DB
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	scoreRepo repository.ScoreRepository,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		scoreRepo:    scoreRepo,
		db:           db,
	}
}

// SubmitTest writes every answer and exactly one new score row in a single
// transaction. Earlier submissions are left untouched.
func (s *testSubmissionService) SubmitTest(ctx context.Context, actor Actor, req dto.TestSubmitDTO) (*dto.SubmissionResultDTO, error) {
	if !actor.ActsFor(req.StudentID) {
		log.Warn().Uint("actorID", actor.ID).Uint("studentID", req.StudentID).Msg("SubmitTest: student submitting for someone else")
		return nil, ErrForbidden
	}

	if _, err := s.testRepo.FindByID(ctx, req.TestID); err != nil {
		return nil, translateDBError(fmt.Sprintf("find test %d", req.TestID), err)
	}
	questions, err := s.questionRepo.FindByTestID(ctx, req.TestID)
	if err != nil {
		return nil, translateDBError("load answer key", err)
	}
	key := NewAnswerKey(questions)

	answers := make([]model.TestAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if _, known := key[a.QuestionID]; !known {
			log.Debug().Uint("questionID", a.QuestionID).Uint("testID", req.TestID).Msg("SubmitTest: answer for a question outside this test")
		}
		answers = append(answers, model.TestAnswer{
			StudentID:      req.StudentID,
			TestID:         req.TestID,
			QuestionID:     a.QuestionID,
			SelectedOption: NormalizeOption(a.SelectedOption),
		})
	}
	score := model.TestScore{TestID: req.TestID, StudentID: req.StudentID, Score: key.Tally(answers)}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.WithTx(tx).CreateBatch(ctx, answers); err != nil {
			return fmt.Errorf("insert answers: %w", err)
		}
		if err := s.scoreRepo.WithTx(tx).Create(ctx, &score); err != nil {
			return fmt.Errorf("insert score: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", req.TestID).Uint("studentID", req.StudentID).Msg("SubmitTest: transaction rolled back")
		return nil, fmt.Errorf("submit test: %w", err)
	}

	log.Info().
		Uint("testID", req.TestID).
		Uint("studentID", req.StudentID).
		Int("score", score.Score).
		Int("questions", len(questions)).
		Msg("Test submitted")
	return &dto.SubmissionResultDTO{
		Message:        "Answers submitted successfully",
		ScoreID:        score.ID,
		TestID:         req.TestID,
		StudentID:      req.StudentID,
		Score:          score.Score,
		TotalQuestions: len(questions),
	}, nil
}

func (s *testSubmissionService) GetScores(ctx context.Context, testID uint, studentID *uint) ([]model.TestScoreRow, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, translateDBError("find test", err)
	}
	rows, err := s.scoreRepo.FindByTest(ctx, testID, studentID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to load scores")
		return nil, translateDBError("list scores", err)
	}
	return rows, nil
}
