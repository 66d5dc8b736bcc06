package service

import (
	"context"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
)

type RoleService interface {
	Create(ctx context.Context, req dto.RoleRequest) (*model.Role, error)
	FindAll(ctx context.Context) ([]model.Role, error)
	FindByID(ctx context.Context, id uint) (*model.Role, error)
	Update(ctx context.Context, id uint, req dto.RoleRequest) (*model.Role, error)
	Delete(ctx context.Context, id uint) error
}

type roleService struct {
	repo repository.RoleRepository
}

func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) Create(ctx context.Context, req dto.RoleRequest) (*model.Role, error) {
	role := model.Role{Name: req.Name}
	if err := s.repo.Create(ctx, &role); err != nil {
		return nil, translateDBError("create role", err)
	}
	return &role, nil
}

func (s *roleService) FindAll(ctx context.Context) ([]model.Role, error) {
	roles, err := s.repo.FindAll(ctx)
	return roles, translateDBError("list roles", err)
}

func (s *roleService) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError("find role", err)
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, id uint, req dto.RoleRequest) (*model.Role, error) {
	if err := s.repo.Update(ctx, &model.Role{ID: id, Name: req.Name}); err != nil {
		return nil, translateDBError("update role", err)
	}
	return s.FindByID(ctx, id)
}

func (s *roleService) Delete(ctx context.Context, id uint) error {
	if id <= model.RoleStudent {
		return ErrForbidden
	}
	return translateDBError("delete role", s.repo.Delete(ctx, id))
}
