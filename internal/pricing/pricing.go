// Package pricing computes the final fare for a ticket class. Prices
// are integer cents so the business surcharge stays exact.
package pricing

import (
	"fmt"

	"github.com/avoicu/airdesk/internal/domain"
)

// FinalPrice returns the fare in cents for one seat of the given class.
// Economy pays the flight's base price; business pays base plus a 50%
// surcharge.
func FinalPrice(basePriceCents int64, class domain.TicketClass) (int64, error) {
	if basePriceCents < 0 {
		return 0, fmt.Errorf("%w: base price cannot be negative", domain.ErrInvalidValue)
	}
	switch class {
	case domain.TicketClassEconomy:
		return basePriceCents, nil
	case domain.TicketClassBusiness:
		return basePriceCents * 3 / 2, nil
	default:
		return 0, fmt.Errorf("%w: unknown ticket class %q", domain.ErrInvalidValue, class)
	}
}
