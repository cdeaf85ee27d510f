package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"podcastflow-backend/internal/api/routes"
	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/mailer"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "podcastflow-backend/docs" // This is needed for swag
)

//	@title			PodcastFlow Pro API
//	@version		1.0
//	@description	Multi-tenant backend for podcast advertising sales: advertiser CRM, shows and episodes, rate cards, campaigns, inventory orders, invoicing, and analytics.

//	@contact.name	API Support
//	@contact.email	support@podcastflow.local

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg.LogLevel)
	log := logger.New()

	// Platform database (GORM over the public schema)
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tenant pool (pgx over the org_* schemas)
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to initialize tenant pool: ", err)
	}
	defer pool.Close()

	// Seed system email templates before any notification is dispatched
	templateService := service.NewTemplateService(repository.NewEmailTemplateRepository(db), validator.New(), log)
	if err := templateService.SeedDefaults(); err != nil {
		logrus.Fatal("Failed to seed email templates: ", err)
	}

	// Email queue worker
	transport, err := mailer.NewTransport(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize mail transport: ", err)
	}
	emailWorker := mailer.NewWorker(repository.NewEmailQueueRepository(db), transport, cfg, log)
	go emailWorker.Run(ctx)

	// Scheduled YouTube stats sync
	orgRepo := repository.NewOrganizationRepository(db)
	resolver := tenant.NewResolver(db)
	syncService := service.NewYouTubeSyncService(
		repository.NewSyncJobRepository(db),
		repository.NewEpisodeRepository(tenant.NewGateway(pool)),
		service.NewYouTubeService(cfg),
		service.NewNotificationService(
			repository.NewUserRepository(db),
			repository.NewEmailTemplateRepository(db),
			repository.NewEmailQueueRepository(db),
			repository.NewNotificationRepository(db),
			log,
		),
		log,
	)
	scheduler := service.NewYouTubeScheduler(orgRepo, resolver, syncService, cfg, log)
	go scheduler.Run(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, pool, cfg, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
