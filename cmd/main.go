package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/database"
	_ "github.com/lshigami/lms/docs"
	"github.com/lshigami/lms/internal/auth"
	adminctrl "github.com/lshigami/lms/internal/controller/admin"
	userctrl "github.com/lshigami/lms/internal/controller/user"
	"github.com/lshigami/lms/internal/importer"
	"github.com/lshigami/lms/internal/logger"
	"github.com/lshigami/lms/internal/mailer"
	"github.com/lshigami/lms/internal/middleware"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/router"
	"github.com/lshigami/lms/internal/service"
	"github.com/lshigami/lms/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title LMS API
// @version 1.0
// @description Learning management backend: companies, courses, trainings, attendance, MCQ tests and reports.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			auth.NewTokenManager,
			mailer.New,
			storage.NewLocal,
			importer.NewGeminiExtractor,
			importer.NewRegistry,
		),

		fx.Provide(
			repository.NewCompanyRepository,
			repository.NewCourseRepository,
			repository.NewTrainingRepository,
			repository.NewUserRepository,
			repository.NewRoleRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewScoreRepository,
			repository.NewStudentTrainingRepository,
			repository.NewAttendanceRepository,
			repository.NewLookupRepository,
			repository.NewMaterialRepository,
			repository.NewStudentDocumentRepository,
			repository.NewReportRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewCompanyService,
			service.NewCourseService,
			service.NewTrainingService,
			service.NewUserService,
			service.NewRoleService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewTestSubmissionService,
			service.NewAttendanceService,
			service.NewMappingService,
			service.NewLookupService,
			service.NewMaterialService,
			service.NewStudentDocumentService,
			service.NewReportService,
		),

		fx.Provide(
			userctrl.NewAuthController,
			adminctrl.NewCompanyController,
			adminctrl.NewCourseController,
			adminctrl.NewTrainingController,
			adminctrl.NewUserController,
			adminctrl.NewRoleController,
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			adminctrl.NewMappingController,
			adminctrl.NewAttendanceController,
			adminctrl.NewMaterialController,
			adminctrl.NewReportController,
			userctrl.NewLookupController,
			userctrl.NewStudentDocumentController,
		),

		fx.Invoke(database.AutoMigrate),
		fx.Invoke(database.SeedAdmin),
		fx.Invoke(router.Register),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Timeout(cfg.Database.QueryTimeout))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// StartServer ties the HTTP server to the fx lifecycle.
func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("LMS API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
