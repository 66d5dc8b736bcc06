package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	CreateBatch(ctx context.Context, materials []model.Material) error
	FindAll(ctx context.Context) ([]model.MaterialRow, error)
	FindByTraining(ctx context.Context, trainingID uint) ([]model.MaterialRow, error)
	FindByID(ctx context.Context, id uint) (*model.Material, error)
	FindForStudent(ctx context.Context, studentID uint) ([]model.StudentMaterialRow, error)
	Delete(ctx context.Context, id uint) error
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) CreateBatch(ctx context.Context, materials []model.Material) error {
	if len(materials) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&materials).Error
}

func (r *materialRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("material m").
		Select("m.*, u.username AS faculty_name, c.name AS course_name").
		Joins("JOIN users u ON u.id = m.faculty_id").
		Joins("JOIN training_details td ON td.id = m.training_id").
		Joins("JOIN courses c ON c.id = td.course_id")
}

func (r *materialRepository) FindAll(ctx context.Context) ([]model.MaterialRow, error) {
	var rows []model.MaterialRow
	err := r.joined(ctx).Order("m.id ASC").Scan(&rows).Error
	return rows, err
}

func (r *materialRepository) FindByTraining(ctx context.Context, trainingID uint) ([]model.MaterialRow, error) {
	var rows []model.MaterialRow
	err := r.joined(ctx).Where("m.training_id = ?", trainingID).Order("m.training_date ASC, m.id ASC").Scan(&rows).Error
	return rows, err
}

func (r *materialRepository) FindByID(ctx context.Context, id uint) (*model.Material, error) {
	var material model.Material
	if err := r.db.WithContext(ctx).First(&material, id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) FindForStudent(ctx context.Context, studentID uint) ([]model.StudentMaterialRow, error) {
	var rows []model.StudentMaterialRow
	err := r.db.WithContext(ctx).Table("student_trainings st").
		Select(`m.id AS material_id, st.student_id, st.training_id, c.name AS course_name,
			u.username AS faculty_name, m.material_name, m.training_date`).
		Joins("JOIN material m ON m.training_id = st.training_id").
		Joins("JOIN training_details td ON td.id = m.training_id").
		Joins("JOIN courses c ON c.id = td.course_id").
		Joins("JOIN users u ON u.id = m.faculty_id").
		Where("st.student_id = ?", studentID).
		Order("m.training_date ASC, m.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *materialRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Material{}, id))
}
