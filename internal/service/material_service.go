package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// MaxMaterialFiles is how many files one material upload may carry.
const MaxMaterialFiles = 10

type MaterialService interface {
	Upload(ctx context.Context, req dto.MaterialUploadRequest, files []FileUpload) ([]model.Material, error)
	FindAll(ctx context.Context) ([]model.MaterialRow, error)
	FindByTraining(ctx context.Context, trainingID uint) ([]model.MaterialRow, error)
	FindForStudent(ctx context.Context, studentID uint) ([]model.StudentMaterialRow, error)
	// Open returns the stored file and the name to offer for download.
	Open(ctx context.Context, id uint) (afero.File, string, error)
	Delete(ctx context.Context, id uint) error
}

type materialService struct {
	repo  repository.MaterialRepository
	files storage.Storage
}

func NewMaterialService(repo repository.MaterialRepository, files storage.Storage) MaterialService {
	return &materialService{repo: repo, files: files}
}

func (s *materialService) Upload(ctx context.Context, req dto.MaterialUploadRequest, files []FileUpload) ([]model.Material, error) {
	if len(files) == 0 {
		return nil, invalid("files", "at least one file is required")
	}
	if len(files) > MaxMaterialFiles {
		return nil, invalid("files", fmt.Sprintf("at most %d files per upload", MaxMaterialFiles))
	}
	day, err := parseDate("training_date", req.TrainingDate)
	if err != nil {
		return nil, err
	}

	materials := make([]model.Material, 0, len(files))
	for _, f := range files {
		path, err := s.files.Save(ctx, storage.DirMaterials, f.Filename, f.Content)
		if err != nil {
			s.discard(materials)
			return nil, fmt.Errorf("store material %s: %w", f.Filename, err)
		}
		name := req.MaterialName
		if len(files) > 1 {
			name = fmt.Sprintf("%s (%s)", req.MaterialName, filepath.Base(f.Filename))
		}
		materials = append(materials, model.Material{
			TrainingID:   req.TrainingID,
			FacultyID:    req.FacultyID,
			MaterialName: name,
			FilePath:     path,
			TrainingDate: day,
		})
	}

	if err := s.repo.CreateBatch(ctx, materials); err != nil {
		s.discard(materials)
		log.Error().Err(err).Uint("trainingID", req.TrainingID).Msg("Failed to record materials")
		return nil, translateDBError("create materials", err)
	}
	log.Info().Uint("trainingID", req.TrainingID).Int("files", len(materials)).Msg("Materials uploaded")
	return materials, nil
}

// discard removes files whose rows were never written.
func (s *materialService) discard(materials []model.Material) {
	for _, m := range materials {
		if err := s.files.Remove(m.FilePath); err != nil {
			log.Warn().Err(err).Str("path", m.FilePath).Msg("Could not remove orphaned material file")
		}
	}
}

func (s *materialService) FindAll(ctx context.Context) ([]model.MaterialRow, error) {
	rows, err := s.repo.FindAll(ctx)
	return rows, translateDBError("list materials", err)
}

func (s *materialService) FindByTraining(ctx context.Context, trainingID uint) ([]model.MaterialRow, error) {
	rows, err := s.repo.FindByTraining(ctx, trainingID)
	return nonEmpty("training materials", rows, err)
}

func (s *materialService) FindForStudent(ctx context.Context, studentID uint) ([]model.StudentMaterialRow, error) {
	rows, err := s.repo.FindForStudent(ctx, studentID)
	return nonEmpty("student materials", rows, err)
}

func (s *materialService) Open(ctx context.Context, id uint) (afero.File, string, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", translateDBError("find material", err)
	}
	f, err := s.files.Open(material.FilePath)
	if err != nil {
		log.Error().Err(err).Uint("materialID", id).Str("path", material.FilePath).Msg("Material file missing")
		return nil, "", fmt.Errorf("open material %d: %w", id, ErrNotFound)
	}
	return f, downloadName(material.FilePath), nil
}

func (s *materialService) Delete(ctx context.Context, id uint) error {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateDBError("find material", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateDBError("delete material", err)
	}
	if err := s.files.Remove(material.FilePath); err != nil {
		log.Warn().Err(err).Str("path", material.FilePath).Msg("Could not remove material file")
	}
	return nil
}

// downloadName strips the uuid prefix that storage adds to file names.
func downloadName(path string) string {
	base := filepath.Base(path)
	if len(base) > 37 && base[36] == '-' {
		return base[37:]
	}
	return base
}
