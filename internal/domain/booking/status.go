package booking

import "github.com/BruksfildServices01/turf-booking/internal/httperr"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// CanCancel allows cancelling only a confirmed booking; cancelled is terminal.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrConflict("booking_already_cancelled", "Booking is already cancelled.")
	}
	return nil
}
