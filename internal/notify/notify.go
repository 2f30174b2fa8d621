package notify

import (
	"context"
	"log"

	"github.com/avoicu/airdesk/internal/kafka"
)

// Notifier turns booking events into passenger-facing confirmation
// messages. Delivery is a log line for now; the interface stays the
// same once a real channel (email, SMS) is plugged in.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("confirmation for %s: flight %s seat %s (%s), paid %d.%02d EUR, ref %s",
		event.Passenger, event.FlightNumber, event.SeatNumber, event.TicketClass,
		event.PriceCents/100, event.PriceCents%100, event.BookingRef)
	return nil
}
