package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
)

type CompanyService interface {
	Create(ctx context.Context, req dto.CompanyRequest) (*model.Company, error)
	FindAll(ctx context.Context) ([]model.Company, error)
	FindByID(ctx context.Context, id uint) (*model.Company, error)
	Update(ctx context.Context, id uint, req dto.CompanyRequest) (*model.Company, error)
	Delete(ctx context.Context, id uint) error
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, req dto.CompanyRequest) (*model.Company, error) {
	var company model.Company
	if err := copier.Copy(&company, &req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &company); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create company")
		return nil, translateDBError("create company", err)
	}
	return &company, nil
}

func (s *companyService) FindAll(ctx context.Context) ([]model.Company, error) {
	companies, err := s.repo.FindAll(ctx)
	return companies, translateDBError("list companies", err)
}

func (s *companyService) FindByID(ctx context.Context, id uint) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError("find company", err)
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, id uint, req dto.CompanyRequest) (*model.Company, error) {
	company := model.Company{ID: id}
	if err := copier.Copy(&company, &req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &company); err != nil {
		return nil, translateDBError("update company", err)
	}
	return s.FindByID(ctx, id)
}

func (s *companyService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateDBError("delete company", err)
	}
	log.Info().Uint("companyID", id).Msg("Company deleted")
	return nil
}
