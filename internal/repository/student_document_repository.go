package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type StudentDocumentRepository interface {
	CreateBatch(ctx context.Context, docs []model.StudentDocument) error
	// FindAll lists every document, or only those of studentID when set.
	FindAll(ctx context.Context, studentID *uint) ([]model.StudentDocument, error)
	FindByID(ctx context.Context, id uint) (*model.StudentDocument, error)
	Update(ctx context.Context, doc *model.StudentDocument) error
	Delete(ctx context.Context, id uint) error
}

type studentDocumentRepository struct {
	db *gorm.DB
}

func NewStudentDocumentRepository(db *gorm.DB) StudentDocumentRepository {
	return &studentDocumentRepository{db: db}
}

func (r *studentDocumentRepository) CreateBatch(ctx context.Context, docs []model.StudentDocument) error {
	if len(docs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&docs).Error
}

func (r *studentDocumentRepository) FindAll(ctx context.Context, studentID *uint) ([]model.StudentDocument, error) {
	var docs []model.StudentDocument
	query := r.db.WithContext(ctx)
	if studentID != nil {
		query = query.Where("student_id = ?", *studentID)
	}
	err := query.Order("id ASC").Find(&docs).Error
	return docs, err
}

func (r *studentDocumentRepository) FindByID(ctx context.Context, id uint) (*model.StudentDocument, error) {
	var doc model.StudentDocument
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *studentDocumentRepository) Update(ctx context.Context, doc *model.StudentDocument) error {
	return affected(r.db.WithContext(ctx).Model(&model.StudentDocument{}).Where("id = ?", doc.ID).
		Select("student_id", "course_id", "document_name").
		Updates(doc))
}

func (r *studentDocumentRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.StudentDocument{}, id))
}
