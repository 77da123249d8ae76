package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rahmanda/transbus/internal/pkg/config"
	"github.com/rahmanda/transbus/internal/pkg/constants"
	"github.com/rahmanda/transbus/internal/pkg/database"
	"github.com/rahmanda/transbus/internal/pkg/health"
	jobspkg "github.com/rahmanda/transbus/internal/pkg/jobs"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/middleware"
	"github.com/rahmanda/transbus/internal/pkg/models"
	natspkg "github.com/rahmanda/transbus/internal/pkg/nats"
	"github.com/rahmanda/transbus/services/scheduling"
	"github.com/rahmanda/transbus/services/scheduling/gateway"
	"github.com/rahmanda/transbus/services/scheduling/handler"
	"github.com/rahmanda/transbus/services/scheduling/repository"
	"github.com/rahmanda/transbus/services/scheduling/usecase"
)

func main() {
	appName := "scheduler-service"
	configPath := "config/scheduler.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	db := postgresClient.GetDB()
	tripRepo := repository.NewTripRepository(configs, db)
	driverRepo := repository.NewDriverRepository(configs, db)
	scheduleRepo := repository.NewScheduleRepository(configs, db)

	// Initialize gateway
	producer := natspkg.NewProducer(natsClient)
	schedulingGW := gateway.NewSchedulingGW(producer)

	// Initialize assignment strategy
	var strategy scheduling.AssignmentStrategy
	switch configs.Scheduler.Strategy {
	case "workload":
		strategy = usecase.NewWorkloadStrategy(configs, db, tripRepo, driverRepo)
	case "availability":
		strategy = usecase.NewAvailabilityStrategy(configs, db, tripRepo, driverRepo, scheduleRepo)
	default:
		logger.Fatal("Unknown assignment strategy",
			logger.String("strategy", configs.Scheduler.Strategy))
	}

	// Initialize usecases
	generatorUC := usecase.NewGeneratorUC(configs, tripRepo, schedulingGW)
	assignmentUC := usecase.NewAssignmentUC(configs, tripRepo, driverRepo, scheduleRepo, strategy, schedulingGW)
	lifecycleUC := usecase.NewLifecycleUC(tripRepo, schedulingGW)

	// Initialize job runner and durable consumers
	runner, err := jobspkg.NewRunner(ctx, natsClient, configs.Jobs)
	if err != nil {
		logger.Fatal("Failed to initialize job runner", logger.Err(err))
	}
	defer runner.Stop()

	h := handler.NewHandler(generatorUC, assignmentUC, lifecycleUC, runner)
	if err := h.InitJobConsumers(ctx); err != nil {
		logger.Fatal("Failed to initialize job consumers", logger.Err(err))
	}

	// Recurring jobs: daily generation ahead of today, periodic lifecycle sweep
	dispatcher := jobspkg.NewDispatcher(runner, redisClient, configs.Jobs, []jobspkg.RecurringJob{
		{
			Name:     constants.JobTripGenerate,
			Schedule: jobspkg.DailyAt{Hour: configs.Scheduler.GenerateHour},
			Payload: func(occurrence time.Time) interface{} {
				target := occurrence.AddDate(0, 0, configs.Scheduler.GenerateAheadDays)
				return models.GenerateJobPayload{TargetDate: target.Format("2006-01-02")}
			},
		},
		{
			Name:     constants.JobTripSweep,
			Schedule: jobspkg.Every(time.Duration(configs.Scheduler.SweepIntervalSeconds) * time.Second),
			Payload: func(occurrence time.Time) interface{} {
				return models.SweepJobPayload{EnqueuedAt: occurrence}
			},
		},
	})
	dispatcher.Run(ctx)
	defer dispatcher.Stop()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		logger.Info("Starting server",
			logger.String("service", appName),
			logger.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down", logger.String("service", appName))
	cancel()

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", logger.Err(err))
	}
}
