package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobdeck/job-board-api/internal/api"
	"github.com/jobdeck/job-board-api/internal/api/handler"
	"github.com/jobdeck/job-board-api/internal/core/service"
	mongodb "github.com/jobdeck/job-board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobdeck/job-board-api/internal/infrastructure/db/redis"
	"github.com/jobdeck/job-board-api/internal/infrastructure/mail"
	"github.com/jobdeck/job-board-api/internal/infrastructure/queue"
	"github.com/jobdeck/job-board-api/internal/pkg/config"
	"github.com/jobdeck/job-board-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "job-board-api",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	tagRepo := mongodb.NewTagRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	followRepo := mongodb.NewFollowRepository(db)
	subRepo := mongodb.NewSubscriptionRepository(db)
	notifRepo := mongodb.NewNotificationRepository(db)
	pageRepo := mongodb.NewPageRepository(db)
	faqRepo := mongodb.NewFAQRepository(db)

	if err := mongodb.EnsureIndexes(ctx,
		userRepo, companyRepo, profileRepo, categoryRepo, tagRepo,
		jobRepo, appRepo, followRepo, subRepo, notifRepo, pageRepo, faqRepo,
	); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Outbound ---
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	notificationService := service.NewNotificationService(notifRepo, log)
	dispatcher := queue.NewDispatcher(
		cfg.FanoutWorkers, followRepo, subRepo, notificationService, mailer, cfg.PublicBaseURL, log,
	)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(userRepo, mailer, cfg.PublicBaseURL, cfg.JWTSecret, 24*time.Hour, log)
	companyService := service.NewCompanyService(companyRepo, log)
	profileService := service.NewProfileService(profileRepo, log)
	taxonomyService := service.NewTaxonomyService(categoryRepo, tagRepo, jobRepo, followRepo, subRepo, log)
	jobService := service.NewJobService(jobRepo, companyRepo, categoryRepo, tagRepo, appRepo, dispatcher, cfg.HideInactiveTaxonomy, log)
	applicationService := service.NewApplicationService(appRepo, jobRepo, companyRepo, dispatcher, log)
	engagementService := service.NewEngagementService(followRepo, subRepo, companyRepo, categoryRepo, tagRepo, mailer, cfg.PublicBaseURL, log)
	contentService := service.NewContentService(pageRepo, faqRepo, log)

	// --- HTTP ---
	e := api.NewRouter(api.RouterDeps{
		JWTSecret:    cfg.JWTSecret,
		AuthService:  authService,
		Logger:       log,
		Auth:         handler.NewAuthHandler(authService),
		Company:      handler.NewCompanyHandler(companyService),
		Profile:      handler.NewProfileHandler(profileService),
		Taxonomy:     handler.NewTaxonomyHandler(taxonomyService),
		Job:          handler.NewJobHandler(jobService),
		Application:  handler.NewApplicationHandler(applicationService),
		Engagement:   handler.NewEngagementHandler(engagementService, redisdb.NewSubscribeLimiter(rdb)),
		Notification: handler.NewNotificationHandler(notificationService),
		Content:      handler.NewContentHandler(contentService),
		Health:       handler.NewHealthHandler(db, rdb),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
