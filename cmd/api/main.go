// @title Habit Insights API
// @version 1.0
// @description Habit tracking, daily check-ins, trend charts and recommendations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/config"
	"habit-insights-service/internal/logging"
	"habit-insights-service/internal/observability"

	checkinsHttp "habit-insights-service/internal/checkins/adapters/http/fiber"
	checkinsRepoPg "habit-insights-service/internal/checkins/adapters/postgres"
	checkinsUsecase "habit-insights-service/internal/checkins/core/usecase"

	dashboardHttp "habit-insights-service/internal/dashboard/adapters/http/fiber"
	dashboardUsecase "habit-insights-service/internal/dashboard/core/usecase"

	habitsHttp "habit-insights-service/internal/habits/adapters/http/fiber"
	habitsKafka "habit-insights-service/internal/habits/adapters/kafka"
	habitsRepoPg "habit-insights-service/internal/habits/adapters/postgres"
	habitsPorts "habit-insights-service/internal/habits/core/ports"
	habitsUsecase "habit-insights-service/internal/habits/core/usecase"

	recHttp "habit-insights-service/internal/recommendations/adapters/http/fiber"
	recRepoPg "habit-insights-service/internal/recommendations/adapters/postgres"
	recUsecase "habit-insights-service/internal/recommendations/core/usecase"

	trendsHttp "habit-insights-service/internal/trends/adapters/http/fiber"
	trendsRepoPg "habit-insights-service/internal/trends/adapters/postgres"
	trendsUsecase "habit-insights-service/internal/trends/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "habit-insights-service/docs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	metrics := observability.NewMetrics()

	// habit.completed publisher, disabled without brokers
	var publisher habitsPorts.CompletionPublisherPort
	if len(cfg.KafkaBrokers) > 0 {
		p := habitsKafka.NewCompletionPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := p.Close(); err != nil {
				logger.Warn("kafka writer close", zap.Error(err))
			}
		}()
		publisher = p
		logger.Info("publishing completions", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	// Repositories
	habitRepository := habitsRepoPg.NewHabitRepository(habitsRepoPg.NewSQLDB(db))
	completionRepository := trendsRepoPg.NewCompletionRepository(trendsRepoPg.NewSQLDB(db))
	checkInRepository := checkinsRepoPg.NewCheckInRepository(checkinsRepoPg.NewSQLDB(db))
	profileRepository := recRepoPg.NewProfileRepository(recRepoPg.NewSQLDB(db))

	// Usecases
	habitUC := habitsUsecase.NewHabitUseCase(habitRepository)
	recordCompletionUC := habitsUsecase.NewRecordCompletionUseCase(habitRepository, publisher, metrics, logger)
	getTrendsUC := trendsUsecase.NewGetTrendsUseCase(completionRepository, logger, metrics)
	checkInUC := checkinsUsecase.NewCheckInUseCase(checkInRepository)
	getRecommendationUC := recUsecase.NewGetRecommendationUseCase(profileRepository, nil)
	analyzeProfileUC := recUsecase.NewAnalyzeProfileUseCase(profileRepository, logger)
	getDashboardUC := dashboardUsecase.NewGetDashboardUseCase(getRecommendationUC, habitUC, getTrendsUC, logger)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "habit-insights-service",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.Middleware(logger))
	app.Use(metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: "GET,POST,PUT,OPTIONS",
	}))

	// public endpoints
	app.Get("/healthz", healthz(db))
	app.Get("/metrics", metrics.Handler())
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	api := app.Group("/", auth.Middleware(auth.NewVerifier(cfg.JWTSecret)))

	// habits endpoints
	habitsHandler := habitsHttp.NewHabitHandler(habitUC, recordCompletionUC)
	api.Post("/habits", habitsHandler.CreateHabit)
	api.Get("/habits", habitsHandler.ListHabits)
	api.Post("/habits/:id/completions", habitsHandler.RecordCompletion)
	api.Post("/completions/bulk", habitsHandler.BulkImportCompletions)

	// trends endpoints
	trendsHandler := trendsHttp.NewTrendsHandler(getTrendsUC)
	api.Get("/trends", trendsHandler.GetTrends)

	// check-in endpoints
	checkInHandler := checkinsHttp.NewCheckInHandler(checkInUC)
	api.Put("/checkins", checkInHandler.SaveCheckIn)
	api.Get("/checkins/today", checkInHandler.GetToday)
	api.Get("/checkins", checkInHandler.ListCheckIns)

	// recommendation endpoints
	recHandler := recHttp.NewRecommendationHandler(getRecommendationUC, analyzeProfileUC)
	api.Get("/recommendation", recHandler.GetRecommendation)
	api.Post("/profile/analysis", recHandler.AnalyzeProfile)

	// dashboard
	dashboardHandler := dashboardHttp.NewDashboardHandler(getDashboardUC)
	api.Get("/dashboard", dashboardHandler.GetDashboard)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
	return nil
}

func healthz(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
