package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
)

type CourseService interface {
	Create(ctx context.Context, req dto.CourseRequest) (*model.Course, error)
	FindActive(ctx context.Context) ([]model.Course, error)
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	Update(ctx context.Context, id uint, req dto.CourseRequest) (*model.Course, error)
	Deactivate(ctx context.Context, id uint) error
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) ensureUniqueName(ctx context.Context, name string, excludeID uint) error {
	count, err := s.repo.CountByName(ctx, name, excludeID)
	if err != nil {
		return translateDBError("check course name", err)
	}
	if count > 0 {
		return fmt.Errorf("course %q: %w", name, ErrConflict)
	}
	return nil
}

func (s *courseService) Create(ctx context.Context, req dto.CourseRequest) (*model.Course, error) {
	if err := s.ensureUniqueName(ctx, req.Name, 0); err != nil {
		return nil, err
	}
	course := model.Course{Status: model.StatusActive}
	if err := copier.Copy(&course, &req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &course); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create course")
		return nil, translateDBError("create course", err)
	}
	return &course, nil
}

func (s *courseService) FindActive(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.FindActive(ctx)
	return courses, translateDBError("list courses", err)
}

func (s *courseService) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError("find course", err)
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req dto.CourseRequest) (*model.Course, error) {
	if err := s.ensureUniqueName(ctx, req.Name, id); err != nil {
		return nil, err
	}
	course := model.Course{ID: id}
	if err := copier.Copy(&course, &req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &course); err != nil {
		return nil, translateDBError("update course", err)
	}
	return s.FindByID(ctx, id)
}

func (s *courseService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return translateDBError("deactivate course", err)
	}
	log.Info().Uint("courseID", id).Msg("Course deactivated")
	return nil
}
