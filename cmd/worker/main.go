package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avoicu/airdesk/config"
	"github.com/avoicu/airdesk/internal/kafka"
	"github.com/avoicu/airdesk/internal/notify"
	"github.com/avoicu/airdesk/internal/repository"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reservationService := reservation.NewReservationService(
		flightRepo,
		bookingRepo,
		nil,
		nil,
		"",
		0,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	notifier := notify.NewNotifier()

	go func() {
		if err := consumer.Consume(ctx, notifier.Send); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	auditTicker := time.NewTicker(cfg.Worker.AuditSweepInterval())
	defer auditTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-auditTicker.C:
			corrections, err := reservationService.AuditSeats(ctx)
			if err != nil {
				log.Printf("seat audit error: %v", err)
				continue
			}
			if len(corrections) > 0 {
				log.Printf("repaired %d flight seat counts", len(corrections))
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
