package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type TrainingRepository interface {
	Create(ctx context.Context, training *model.TrainingDetail) error
	FindActive(ctx context.Context) ([]model.TrainingDetailRow, error)
	// FindActiveByID filters on status too, so a deactivated training is gone.
	FindActiveByID(ctx context.Context, id uint) (*model.TrainingDetailRow, error)
	Update(ctx context.Context, training *model.TrainingDetail) error
	Deactivate(ctx context.Context, id uint) error
}

type trainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db: db}
}

func (r *trainingRepository) Create(ctx context.Context, training *model.TrainingDetail) error {
	return r.db.WithContext(ctx).Create(training).Error
}

func (r *trainingRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("training_details td").
		Select("td.*, c.name AS course_name, u.username AS faculty_username, co.name AS company_name").
		Joins("LEFT JOIN courses c ON c.id = td.course_id").
		Joins("LEFT JOIN users u ON u.id = td.faculty_id").
		Joins("LEFT JOIN companies co ON co.id = td.company_id").
		Where("td.status = ?", model.StatusActive)
}

func (r *trainingRepository) FindActive(ctx context.Context) ([]model.TrainingDetailRow, error) {
	var rows []model.TrainingDetailRow
	err := r.joined(ctx).Order("td.id ASC").Scan(&rows).Error
	return rows, err
}

func (r *trainingRepository) FindActiveByID(ctx context.Context, id uint) (*model.TrainingDetailRow, error) {
	var rows []model.TrainingDetailRow
	if err := r.joined(ctx).Where("td.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *trainingRepository) Update(ctx context.Context, training *model.TrainingDetail) error {
	return affected(r.db.WithContext(ctx).Model(&model.TrainingDetail{}).Where("id = ?", training.ID).
		Select("training_name", "course_id", "from_date", "to_date", "training_type", "faculty_id", "company_id").
		Updates(training))
}

func (r *trainingRepository) Deactivate(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Model(&model.TrainingDetail{}).Where("id = ?", id).
		Update("status", model.StatusInactive))
}
