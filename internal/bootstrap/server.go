package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/avoicu/airdesk/api"
	"github.com/avoicu/airdesk/config"
	"github.com/avoicu/airdesk/internal/service/registry"
	"github.com/avoicu/airdesk/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is cancelled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, registrySvc registry.RegistryUseCase, reservationSvc reservation.ReservationUseCase) error {
	router := gin.New()
	router.Use(gin.Recovery())

	locationHandler := api.NewLocationHandler(registrySvc)
	staffHandler := api.NewStaffHandler(registrySvc)
	flightHandler := api.NewFlightHandler(registrySvc, reservationSvc)
	bookingHandler := api.NewBookingHandler(reservationSvc)

	root := router.Group("/")
	locationHandler.Register(root)
	staffHandler.Register(router.Group("/staff"))
	flightHandler.Register(router.Group("/flights"))
	bookingHandler.Register(router.Group("/bookings"))
	bookingHandler.RegisterPassengers(router.Group("/passengers"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
