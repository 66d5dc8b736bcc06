package service

import (
	"context"
	"time"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
)

type TrainingService interface {
	Create(ctx context.Context, req dto.TrainingRequest) (*model.TrainingDetailRow, error)
	FindActive(ctx context.Context) ([]model.TrainingDetailRow, error)
	FindByID(ctx context.Context, id uint) (*model.TrainingDetailRow, error)
	Update(ctx context.Context, id uint, req dto.TrainingRequest) (*model.TrainingDetailRow, error)
	Deactivate(ctx context.Context, id uint) error
	Tests(ctx context.Context, trainingID uint) ([]model.TestMaster, error)
}

type trainingService struct {
	repo     repository.TrainingRepository
	testRepo repository.TestRepository
}

func NewTrainingService(repo repository.TrainingRepository, testRepo repository.TestRepository) TrainingService {
	return &trainingService{repo: repo, testRepo: testRepo}
}

func trainingFromRequest(id uint, req dto.TrainingRequest) (model.TrainingDetail, error) {
	from, err := parseDate("from_date", req.FromDate)
	if err != nil {
		return model.TrainingDetail{}, err
	}
	to, err := parseDate("to_date", req.ToDate)
	if err != nil {
		return model.TrainingDetail{}, err
	}
	if time.Time(to).Before(time.Time(from)) {
		return model.TrainingDetail{}, invalid("to_date", "must not be before from_date")
	}
	return model.TrainingDetail{
		ID:           id,
		TrainingName: req.TrainingName,
		CourseID:     req.CourseID,
		FromDate:     from,
		ToDate:       to,
		TrainingType: req.TrainingType,
		FacultyID:    req.FacultyID,
		CompanyID:    req.CompanyID,
		Status:       model.StatusActive,
	}, nil
}

func (s *trainingService) Create(ctx context.Context, req dto.TrainingRequest) (*model.TrainingDetailRow, error) {
	training, err := trainingFromRequest(0, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &training); err != nil {
		log.Error().Err(err).Str("name", req.TrainingName).Msg("Failed to create training")
		return nil, translateDBError("create training", err)
	}
	return s.FindByID(ctx, training.ID)
}

func (s *trainingService) FindActive(ctx context.Context) ([]model.TrainingDetailRow, error) {
	rows, err := s.repo.FindActive(ctx)
	return rows, translateDBError("list trainings", err)
}

func (s *trainingService) FindByID(ctx context.Context, id uint) (*model.TrainingDetailRow, error) {
	row, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translateDBError("find training", err)
	}
	return row, nil
}

func (s *trainingService) Update(ctx context.Context, id uint, req dto.TrainingRequest) (*model.TrainingDetailRow, error) {
	training, err := trainingFromRequest(id, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &training); err != nil {
		return nil, translateDBError("update training", err)
	}
	return s.FindByID(ctx, id)
}

func (s *trainingService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return translateDBError("deactivate training", err)
	}
	log.Info().Uint("trainingID", id).Msg("Training deactivated")
	return nil
}

func (s *trainingService) Tests(ctx context.Context, trainingID uint) ([]model.TestMaster, error) {
	tests, err := s.testRepo.FindByTraining(ctx, trainingID)
	if err != nil {
		return nil, translateDBError("list training tests", err)
	}
	if len(tests) == 0 {
		return nil, ErrNotFound
	}
	return tests, nil
}
