package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/CSAbhinav3/IWP-CIA3/internal/api/http"
	"github.com/CSAbhinav3/IWP-CIA3/internal/api/http/handlers"
	"github.com/CSAbhinav3/IWP-CIA3/internal/auth"
	"github.com/CSAbhinav3/IWP-CIA3/internal/config"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	"github.com/CSAbhinav3/IWP-CIA3/internal/observability"
	"github.com/CSAbhinav3/IWP-CIA3/internal/persistence"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
	"github.com/CSAbhinav3/IWP-CIA3/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	companyRepo := repository.NewCompanyRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		CompanyRepo: companyRepo,
		StudentRepo: studentRepo,
		FacultyRepo: facultyRepo,
	})
	companyService := service.NewCompanyService(companyRepo)
	jobService := service.NewJobService(jobRepo, dispatcher)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, dispatcher)
	studentService := service.NewStudentService(studentRepo)
	notificationService := service.NewNotificationService(notificationRepo, studentRepo, dispatcher, logger, cfg.Notification)
	statsService := service.NewStatsService(studentRepo, companyRepo, jobRepo, applicationRepo, redis.Client, logger)

	worker.StartNotificationWorker(notificationService)

	resolver := auth.NewIdentityResolver(companyRepo, studentRepo, facultyRepo)
	gate := auth.NewMiddleware(authService.TokenManager(), resolver, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService),
		Company:       handlers.NewCompanyHandler(companyService, jobService, applicationService, statsService),
		Companies:     handlers.NewCompaniesHandler(companyService),
		Jobs:          handlers.NewJobsHandler(jobService),
		Students:      handlers.NewStudentsHandler(studentService),
		Applications:  handlers.NewApplicationsHandler(applicationService),
		Notifications: handlers.NewNotificationsHandler(notificationService),
		Stats:         handlers.NewStatsHandler(statsService),
		Gate:          gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
