package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avoicu/airdesk/config"
	"github.com/avoicu/airdesk/internal/bootstrap"
	"github.com/avoicu/airdesk/internal/cache"
	"github.com/avoicu/airdesk/internal/kafka"
	"github.com/avoicu/airdesk/internal/repository"
	"github.com/avoicu/airdesk/internal/service/registry"
	"github.com/avoicu/airdesk/internal/service/reservation"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := repository.InitSchema(ctx, pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.RoutesCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	locationRepo := repository.NewLocationRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	registryService := registry.NewRegistryService(locationRepo, staffRepo, flightRepo)
	reservationService := reservation.NewReservationService(
		flightRepo,
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.HoldTTLSeconds)*time.Second,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, registryService, reservationService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
