package repository

import (
	"context"
	"time"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

// TestFilter narrows the test listing. From/To select tests whose schedule
// window overlaps the range; an open window end overlaps everything.
type TestFilter struct {
	TrainingID uint
	From       *time.Time
	To         *time.Time
}

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.TestMaster) error
	FindByID(ctx context.Context, id uint) (*model.TestMaster, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.TestMaster, error)
	FindAllWithQuestionCount(ctx context.Context, filter TestFilter) ([]model.TestSummaryRow, error)
	FindByTraining(ctx context.Context, trainingID uint) ([]model.TestMaster, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

// Create inserts only the test row; questions go through QuestionRepository.
func (r *testRepository) Create(ctx context.Context, test *model.TestMaster) error {
	return r.db.WithContext(ctx).Omit("Questions").Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.TestMaster, error) {
	var test model.TestMaster
	if err := r.db.WithContext(ctx).First(&test, "test_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.TestMaster, error) {
	var test model.TestMaster
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("mcq_test_questions.id ASC")
	}).First(&test, "test_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllWithQuestionCount(ctx context.Context, filter TestFilter) ([]model.TestSummaryRow, error) {
	var results []model.TestSummaryRow
	query := r.db.WithContext(ctx).Model(&model.TestMaster{}).
		Select("test_master.*, (SELECT COUNT(*) FROM mcq_test_questions q WHERE q.test_id = test_master.test_id) AS question_count")
	if filter.TrainingID != 0 {
		query = query.Where("test_master.training_id = ?", filter.TrainingID)
	}
	if filter.From != nil {
		query = query.Where("(test_master.to_date IS NULL OR test_master.to_date >= ?)", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("(test_master.from_date IS NULL OR test_master.from_date <= ?)", *filter.To)
	}
	err := query.Order("test_master.test_id DESC").Scan(&results).Error
	return results, err
}

func (r *testRepository) FindByTraining(ctx context.Context, trainingID uint) ([]model.TestMaster, error) {
	var tests []model.TestMaster
	err := r.db.WithContext(ctx).Where("training_id = ?", trainingID).Order("test_id ASC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.TestMaster{}).Where("test_id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
