package service

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MappingService maintains which students are enrolled on which training.
type MappingService interface {
	Map(ctx context.Context, trainingID uint, studentIDs []uint) error
	// Replace makes studentIDs the complete mapped set of the training.
	Replace(ctx context.Context, trainingID uint, studentIDs []uint) error
	Status(ctx context.Context, companyID, trainingID uint) ([]model.MappingStatusRow, error)
}

type mappingService struct {
	repo         repository.StudentTrainingRepository
	trainingRepo repository.TrainingRepository
	db           *gorm.DB
}

func NewMappingService(repo repository.StudentTrainingRepository, trainingRepo repository.TrainingRepository, db *gorm.DB) MappingService {
	return &mappingService{repo: repo, trainingRepo: trainingRepo, db: db}
}

func (s *mappingService) ensureTraining(ctx context.Context, trainingID uint) error {
	if _, err := s.trainingRepo.FindActiveByID(ctx, trainingID); err != nil {
		return translateDBError("find training", err)
	}
	return nil
}

func (s *mappingService) Map(ctx context.Context, trainingID uint, studentIDs []uint) error {
	ids := dedupeIDs(studentIDs)
	if len(ids) == 0 {
		return invalid("student_ids", "at least one student is required")
	}
	if err := s.ensureTraining(ctx, trainingID); err != nil {
		return err
	}
	if err := s.repo.Map(ctx, trainingID, ids); err != nil {
		log.Error().Err(err).Uint("trainingID", trainingID).Msg("Failed to map students")
		return translateDBError("map students", err)
	}
	log.Info().Uint("trainingID", trainingID).Int("students", len(ids)).Msg("Students mapped")
	return nil
}

func (s *mappingService) Replace(ctx context.Context, trainingID uint, studentIDs []uint) error {
	if err := s.ensureTraining(ctx, trainingID); err != nil {
		return err
	}
	ids := dedupeIDs(studentIDs)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.UnmapExcept(ctx, trainingID, ids); err != nil {
			return err
		}
		return repo.Map(ctx, trainingID, ids)
	})
	if err != nil {
		log.Error().Err(err).Uint("trainingID", trainingID).Msg("Failed to replace student mapping")
		return translateDBError("replace mapping", err)
	}
	return nil
}

func (s *mappingService) Status(ctx context.Context, companyID, trainingID uint) ([]model.MappingStatusRow, error) {
	rows, err := s.repo.MappingStatus(ctx, companyID, trainingID)
	if err != nil {
		return nil, translateDBError("mapping status", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}
