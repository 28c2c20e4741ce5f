package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/openclass/lms-api/api/swagger"
	"github.com/openclass/lms-api/internal/handler"
	"github.com/openclass/lms-api/internal/middleware"
	"github.com/openclass/lms-api/internal/repository"
	"github.com/openclass/lms-api/internal/service"
	"github.com/openclass/lms-api/pkg/cache"
	"github.com/openclass/lms-api/pkg/config"
	"github.com/openclass/lms-api/pkg/database"
	"github.com/openclass/lms-api/pkg/logger"
	corsmiddleware "github.com/openclass/lms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/openclass/lms-api/pkg/middleware/requestid"
)

// @title Campus LMS Portal API
// @version 1.0.0
// @description School portal backend: courses, modules, assignments, submissions, announcements, presence
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, presence falls back to recent users", "error", err)
		}
	}

	validate := validator.New()

	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	userRepo := repository.NewUserRepository(db)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	moduleSvc := service.NewModuleService(moduleRepo, validate)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, validate)
	submissionSvc := service.NewSubmissionService(submissionRepo)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, logr)
	announcementSvc := service.NewAnnouncementService(announcementRepo, validate)
	presenceSvc := service.NewPresenceService(rdb, userRepo, service.PresenceConfig{
		Window:   cfg.Presence.Window,
		MaxUsers: cfg.Presence.MaxUsers,
	}, logr)
	exportSvc := service.NewExportService(assignmentRepo, submissionRepo)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Principal(authSvc, cfg.Auth))
	r.Use(middleware.Heartbeat(presenceSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, handler.Handlers{
		Courses:       handler.NewCourseHandler(courseSvc, enrollmentSvc),
		Modules:       handler.NewModuleHandler(moduleSvc),
		Assignments:   handler.NewAssignmentHandler(assignmentSvc, submissionSvc, exportSvc),
		Announcements: handler.NewAnnouncementHandler(announcementSvc),
		Users:         handler.NewUserHandler(presenceSvc, enrollmentSvc, metricsSvc),
		Auth:          handler.NewAuthHandler(authSvc),
		ExportEnabled: cfg.Export.Enabled,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
