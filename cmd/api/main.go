package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"seatbooking/internal/adapter/handler"
	"seatbooking/internal/adapter/repository/postgres"
	"seatbooking/internal/adapter/repository/redislock"
	"seatbooking/internal/config"
	"seatbooking/internal/core/services"
	"seatbooking/internal/platform/database"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := database.NewPostgresDB(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database after retries")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	logger.Info().Msg("redis connected")

	showRepo := postgres.NewShowRepository(db)
	seatRepo := postgres.NewSeatRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	lockStore := redislock.NewLockStore(redisClient)

	availability := services.NewAvailabilityService(showRepo, seatRepo, bookingRepo, lockStore)
	locker := services.NewSeatLockService(bookingRepo, lockStore, cfg.LockTTL, logger)
	committer := services.NewBookingService(bookingRepo, lockStore, logger)
	reservations := services.NewReservationService(showRepo, seatRepo, availability, locker, committer, logger)

	reporterCtx, stopReporter := context.WithCancel(context.Background())
	defer stopReporter()

	reporter := services.NewReporter(bookingRepo, cfg.ReportInterval, logger)
	go reporter.Run(reporterCtx)

	e := echo.New()
	e.HideBanner = true

	handler.NewReservationHandler(reservations).Register(e)
	e.GET("/healthz", handler.Health(db, redisClient))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("server starting")
		if err := e.Start(":" + cfg.HTTPPort); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("shutting down server")
	stopReporter()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exiting")
}
