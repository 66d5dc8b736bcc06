package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentTrainingRepository interface {
	WithTx(tx *gorm.DB) StudentTrainingRepository
	// Map inserts the missing (student, training) pairs; existing pairs are kept.
	Map(ctx context.Context, trainingID uint, studentIDs []uint) error
	// UnmapExcept removes every mapping of the training whose student is not listed.
	UnmapExcept(ctx context.Context, trainingID uint, keep []uint) error
	MappingStatus(ctx context.Context, companyID, trainingID uint) ([]model.MappingStatusRow, error)
}

type studentTrainingRepository struct {
	db *gorm.DB
}

func NewStudentTrainingRepository(db *gorm.DB) StudentTrainingRepository {
	return &studentTrainingRepository{db: db}
}

func (r *studentTrainingRepository) WithTx(tx *gorm.DB) StudentTrainingRepository {
	return &studentTrainingRepository{db: tx}
}

func (r *studentTrainingRepository) Map(ctx context.Context, trainingID uint, studentIDs []uint) error {
	if len(studentIDs) == 0 {
		return nil
	}
	rows := make([]model.StudentTraining, 0, len(studentIDs))
	for _, id := range studentIDs {
		rows = append(rows, model.StudentTraining{StudentID: id, TrainingID: trainingID})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "training_id"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *studentTrainingRepository) UnmapExcept(ctx context.Context, trainingID uint, keep []uint) error {
	query := r.db.WithContext(ctx).Where("training_id = ?", trainingID)
	if len(keep) > 0 {
		query = query.Where("student_id NOT IN ?", keep)
	}
	return query.Delete(&model.StudentTraining{}).Error
}

func (r *studentTrainingRepository) MappingStatus(ctx context.Context, companyID, trainingID uint) ([]model.MappingStatusRow, error) {
	var rows []model.MappingStatusRow
	err := r.db.WithContext(ctx).Table("users u").
		Select(`u.id AS user_id, u.username, u.company_id, st.training_id,
			CASE WHEN st.training_id IS NOT NULL THEN ? ELSE ? END AS has_training_record`,
			model.MappingChecked, model.MappingUnchecked).
		Joins("LEFT JOIN student_trainings st ON st.student_id = u.id AND st.training_id = ?", trainingID).
		Where("u.company_id = ? AND u.role_id = ? AND u.isactive = ?", companyID, model.RoleStudent, true).
		Order("u.username ASC").
		Scan(&rows).Error
	return rows, err
}
