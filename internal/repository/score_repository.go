package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	WithTx(tx *gorm.DB) ScoreRepository
	Create(ctx context.Context, score *model.TestScore) error
	// FindByTest returns every score of the test; studentID narrows it to one student.
	FindByTest(ctx context.Context, testID uint, studentID *uint) ([]model.TestScoreRow, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) WithTx(tx *gorm.DB) ScoreRepository {
	return &scoreRepository{db: tx}
}

func (r *scoreRepository) Create(ctx context.Context, score *model.TestScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *scoreRepository) FindByTest(ctx context.Context, testID uint, studentID *uint) ([]model.TestScoreRow, error) {
	var rows []model.TestScoreRow
	query := r.db.WithContext(ctx).Table("test_scores ts").
		Select("ts.*, u.username AS student_name").
		Joins("JOIN users u ON u.id = ts.student_id").
		Where("ts.test_id = ?", testID)
	if studentID != nil {
		query = query.Where("ts.student_id = ?", *studentID)
	}
	err := query.Order("ts.id ASC").Scan(&rows).Error
	return rows, err
}
