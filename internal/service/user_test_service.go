package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserTestService interface {
	GetAllTests(ctx context.Context, filter dto.TestListFilter) ([]model.TestSummaryRow, error)
	// GetTestDetails returns the test with its questions. Correct answers are
	// left out unless withAnswers is set.
	GetTestDetails(ctx context.Context, testID uint, withAnswers bool) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests(ctx context.Context, filter dto.TestListFilter) ([]model.TestSummaryRow, error) {
	f := repository.TestFilter{TrainingID: filter.TrainingID}
	if filter.From != "" {
		d, err := parseDate("from", filter.From)
		if err != nil {
			return nil, err
		}
		t := time.Time(d)
		f.From = &t
	}
	if filter.To != "" {
		d, err := parseDate("to", filter.To)
		if err != nil {
			return nil, err
		}
		t := time.Time(d)
		f.To = &t
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, invalid("to", "must not be before from")
	}

	tests, err := s.testRepo.FindAllWithQuestionCount(ctx, f)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tests")
		return nil, translateDBError("list tests", err)
	}
	return tests, nil
}

func (s *userTestService) GetTestDetails(ctx context.Context, testID uint, withAnswers bool) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		return nil, translateDBError("find test", err)
	}
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to copy test to response")
		return nil, err
	}
	if !withAnswers {
		for i := range resp.Questions {
			resp.Questions[i].CorrectAnswer = ""
		}
	}
	return &resp, nil
}
