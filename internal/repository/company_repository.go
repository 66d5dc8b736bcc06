package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	FindAll(ctx context.Context) ([]model.Company, error)
	FindByID(ctx context.Context, id uint) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uint) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) FindAll(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.WithContext(ctx).Order("id ASC").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) FindByID(ctx context.Context, id uint) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	return affected(r.db.WithContext(ctx).Model(&model.Company{}).Where("id = ?", company.ID).
		Select("name", "address", "contact_person", "contact_number").
		Updates(company))
}

// Delete removes the row for good; companies have no soft delete.
func (r *companyRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Company{}, id))
}

// affected turns a statement that touched nothing into gorm.ErrRecordNotFound.
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
