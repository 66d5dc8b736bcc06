package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindActive(ctx context.Context) ([]model.Course, error)
	// FindByID ignores status so deactivated courses stay reachable by id.
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	CountByName(ctx context.Context, name string, excludeID uint) (int64, error)
	Update(ctx context.Context, course *model.Course) error
	Deactivate(ctx context.Context, id uint) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindActive(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Where("status = ?", model.StatusActive).Order("id ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) CountByName(ctx context.Context, name string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Course{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	return affected(r.db.WithContext(ctx).Model(&model.Course{}).Where("id = ?", course.ID).
		Select("name", "description", "duration", "company_id").
		Updates(course))
}

func (r *courseRepository) Deactivate(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Model(&model.Course{}).Where("id = ?", id).
		Update("status", model.StatusInactive))
}
