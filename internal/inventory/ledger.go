// Package inventory is the seat ledger: it guards the no-overbooking
// invariant on in-memory flights and reconstructs booked state from the
// denormalized available-seat column.
package inventory

import (
	"fmt"

	"github.com/avoicu/airdesk/internal/domain"
)

// Reserve attaches the ticket to the flight and returns the updated
// available-seat count. On a full flight it fails with
// ErrCapacityExceeded and leaves the flight untouched.
func Reserve(f *domain.Flight, t domain.Ticket) (int, error) {
	if err := f.AddTicket(t); err != nil {
		return f.AvailableSeats(), err
	}
	return f.AvailableSeats(), nil
}

// Rehydrate fills a freshly loaded flight's booked list from the stored
// available count. The store keeps only the aggregate, not per-seat
// ticket classes, so the reconstructed tickets are economy
// placeholders. This is a documented lossy point: the booking rows, not
// these placeholders, are the durable record.
func Rehydrate(f *domain.Flight, storedAvailable int) {
	booked := f.TotalSeats() - storedAvailable
	if booked < 0 {
		booked = 0
	}
	for i := 0; i < booked && !f.IsFullyBooked(); i++ {
		_ = f.AddTicket(domain.NewTicket(domain.TicketClassEconomy, f.Number, "", ""))
	}
}

// NextSeatNumber derives a seat label from the booked count: six seats
// per row, letters A through F.
func NextSeatNumber(f *domain.Flight) string {
	n := f.BookedCount() + 1
	row := n/6 + 1
	seat := rune('A' + n%6)
	return fmt.Sprintf("%d%c", row, seat)
}
