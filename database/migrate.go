package database

import (
	"github.com/lshigami/lms/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table and seeds the fixed roles.
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Role{},
		&model.Company{},
		&model.User{},
		&model.Course{},
		&model.TrainingDetail{},
		&model.StudentTraining{},
		&model.Attendance{},
		&model.TestMaster{},
		&model.McqQuestion{},
		&model.TestAnswer{},
		&model.TestScore{},
		&model.Material{},
		&model.StudentDocument{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// Role ids are fixed (1 admin, 2 faculty, 3 student); a fresh table gets
	// them in insertion order so the sequence stays in step.
	var roleCount int64
	if err := db.Model(&model.Role{}).Count(&roleCount).Error; err != nil {
		return err
	}
	if roleCount == 0 {
		for _, name := range []string{"admin", "faculty", "student"} {
			if err := db.Create(&model.Role{Name: name}).Error; err != nil {
				log.Error().Err(err).Str("role", name).Msg("Seeding roles failed")
				return err
			}
		}
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
