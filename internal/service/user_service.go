package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/lms/internal/auth"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/mailer"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserService interface {
	Create(ctx context.Context, req dto.UserCreateRequest) (*dto.UserResponse, error)
	FindVisible(ctx context.Context) ([]model.UserRow, error)
	FindByID(ctx context.Context, id uint) (*model.UserRow, error)
	Update(ctx context.Context, id uint, req dto.UserUpdateRequest) (*model.UserRow, error)
	Deactivate(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	mailer mailer.Mailer
}

func NewUserService(repo repository.UserRepository, m mailer.Mailer) UserService {
	return &userService{repo: repo, mailer: m}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) ensureUniqueEmail(ctx context.Context, email string, excludeID uint) error {
	count, err := s.repo.CountByEmail(ctx, email, excludeID)
	if err != nil {
		return translateDBError("check user email", err)
	}
	if count > 0 {
		return fmt.Errorf("email %s: %w", email, ErrConflict)
	}
	return nil
}

func (s *userService) Create(ctx context.Context, req dto.UserCreateRequest) (*dto.UserResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.ensureUniqueEmail(ctx, req.Email, 0); err != nil {
		return nil, err
	}
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		Email:     req.Email,
		Username:  req.Username,
		Password:  hashed,
		RoleID:    req.RoleID,
		CompanyID: req.CompanyID,
		IsActive:  true,
	}
	// the unique index still guards against a concurrent insert
	if err := s.repo.Create(ctx, &user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, translateDBError("create user", err)
	}
	log.Info().Uint("userID", user.ID).Uint("roleID", user.RoleID).Msg("User created")

	go func(u model.User) {
		mailCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.mailer.SendWelcome(mailCtx, &u); err != nil {
			log.Error().Err(err).Uint("userID", u.ID).Msg("Failed to send welcome email")
		}
	}(user)

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *userService) FindVisible(ctx context.Context) ([]model.UserRow, error) {
	rows, err := s.repo.FindVisible(ctx)
	return rows, translateDBError("list users", err)
}

func (s *userService) FindByID(ctx context.Context, id uint) (*model.UserRow, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError("find user", err)
	}
	return row, nil
}

func (s *userService) Update(ctx context.Context, id uint, req dto.UserUpdateRequest) (*model.UserRow, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.ensureUniqueEmail(ctx, req.Email, id); err != nil {
		return nil, err
	}
	user := model.User{ID: id, Email: req.Email, Username: req.Username, RoleID: req.RoleID, CompanyID: req.CompanyID}
	if err := s.repo.Update(ctx, &user); err != nil {
		return nil, translateDBError("update user", err)
	}
	return s.FindByID(ctx, id)
}

func (s *userService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return translateDBError("deactivate user", err)
	}
	log.Info().Uint("userID", id).Msg("User deactivated")
	return nil
}
