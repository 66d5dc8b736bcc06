package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Auth         Auth
	Storage      Storage
	Mail         Mail
	Attendance   Attendance
	GeminiApiKey string
}

type Server struct {
	Port string
	Mode string // gin mode: debug, release, test
}

type Database struct {
	Driver          string // postgres, mysql, sqlite
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type Auth struct {
	JWTSecret     string
	JWTExpiration time.Duration
	// First admin account, created at startup while no admin exists.
	AdminEmail    string
	AdminUsername string
	AdminPassword string
}

type Storage struct {
	Root string
}

type Mail struct {
	SendGridApiKey string
	FromAddress    string
	FromName       string
	Bcc            string
}

type Attendance struct {
	// WindowDays is how far back attendance may be recorded.
	WindowDays int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 150)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", time.Hour)
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", 10*time.Second)
	viper.SetDefault("JWT_EXPIRATION", 24*time.Hour)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("STORAGE_ROOT", "files")
	viper.SetDefault("MAIL_FROM_ADDRESS", "noreply@localhost")
	viper.SetDefault("MAIL_FROM_NAME", "LMS")
	viper.SetDefault("ATTENDANCE_WINDOW_DAYS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.MaxOpenConns = viper.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = viper.GetInt("DATABASE_MAX_IDLE_CONNS")
	config.Database.ConnMaxLifetime = viper.GetDuration("DATABASE_CONN_MAX_LIFETIME")
	config.Database.QueryTimeout = viper.GetDuration("DATABASE_QUERY_TIMEOUT")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.JWTExpiration = viper.GetDuration("JWT_EXPIRATION")
	config.Auth.AdminEmail = viper.GetString("ADMIN_EMAIL")
	config.Auth.AdminUsername = viper.GetString("ADMIN_USERNAME")
	config.Auth.AdminPassword = viper.GetString("ADMIN_PASSWORD")

	config.Storage.Root = viper.GetString("STORAGE_ROOT")

	config.Mail.SendGridApiKey = viper.GetString("SENDGRID_API_KEY")
	config.Mail.FromAddress = viper.GetString("MAIL_FROM_ADDRESS")
	config.Mail.FromName = viper.GetString("MAIL_FROM_NAME")
	config.Mail.Bcc = viper.GetString("MAIL_BCC")

	config.Attendance.WindowDays = viper.GetInt("ATTENDANCE_WINDOW_DAYS")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Str("storage_root", config.Storage.Root).
		Msg("Config loaded")
	return &config, nil
}
