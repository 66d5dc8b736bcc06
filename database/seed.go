package database

import (
	"errors"
	"strings"

	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/internal/auth"
	"github.com/lshigami/lms/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrAdminPasswordTooShort = errors.New("ADMIN_PASSWORD must be at least 6 characters")

// SeedAdmin creates the first admin from ADMIN_EMAIL and ADMIN_PASSWORD when
// the users table holds no admin yet. Without those settings it only warns.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var admins int64
	if err := db.Model(&model.User{}).Where("role_id = ?", model.RoleAdmin).Count(&admins).Error; err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Auth.AdminEmail))
	if email == "" || cfg.Auth.AdminPassword == "" {
		log.Warn().Msg("No admin user exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set. Nobody can sign in.")
		return nil
	}
	if len(cfg.Auth.AdminPassword) < 6 {
		return ErrAdminPasswordTooShort
	}
	hashed, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return err
	}
	username := cfg.Auth.AdminUsername
	if username == "" {
		username = "admin"
	}
	admin := model.User{Email: email, Username: username, Password: hashed, RoleID: model.RoleAdmin, IsActive: true}
	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Str("email", email).Msg("Seeding admin failed")
		return err
	}
	log.Info().Uint("userID", admin.ID).Str("email", email).Msg("Seeded first admin user")
	return nil
}
