package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	CreateBatch(ctx context.Context, answers []model.TestAnswer) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

// CreateBatch appends rows; earlier submissions are never touched.
func (r *answerRepository) CreateBatch(ctx context.Context, answers []model.TestAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&answers, 100).Error
}
