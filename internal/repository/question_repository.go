package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	CreateBatch(ctx context.Context, questions []model.McqQuestion) error
	FindByTestID(ctx context.Context, testID uint) ([]model.McqQuestion, error)
	// MoveToTraining keeps the questions of a test on the test's training.
	MoveToTraining(ctx context.Context, testID, trainingID uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.McqQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&questions, 100).Error
}

func (r *questionRepository) FindByTestID(ctx context.Context, testID uint) ([]model.McqQuestion, error) {
	var questions []model.McqQuestion
	if err := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) MoveToTraining(ctx context.Context, testID, trainingID uint) error {
	return r.db.WithContext(ctx).Model(&model.McqQuestion{}).
		Where("test_id = ?", testID).
		Update("training_id", trainingID).Error
}
