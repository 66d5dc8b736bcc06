package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/lms/internal/auth"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		err = translateDBError("find user", err)
		if errors.Is(err, ErrNotFound) {
			log.Info().Str("email", email).Msg("Login failed: user not found")
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		log.Info().Str("email", email).Msg("Login failed: user inactive")
		return nil, ErrUnauthorized
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		log.Info().Str("email", email).Msg("Login failed: wrong password")
		return nil, ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	log.Info().Uint("userID", user.ID).Msg("User logged in")
	return &dto.LoginResponse{
		Message:  "Success",
		ID:       user.ID,
		Username: user.Username,
		RoleID:   user.RoleID,
		Token:    token,
	}, nil
}
