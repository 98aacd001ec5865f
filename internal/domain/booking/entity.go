package booking

import (
	"time"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

// Reserve creates a confirmed booking for slot and marks the slot booked.
func Reserve(slot *models.Slot, userID uint) (*models.Booking, error) {
	if slot.IsBooked {
		return nil, httperr.ErrConflict("slot_already_booked", "Slot already booked. Please choose another one.")
	}

	slot.IsBooked = true
	return &models.Booking{
		UserID: userID,
		TurfID: slot.TurfID,
		SlotID: slot.ID,
		Status: string(InitialStatus()),
	}, nil
}

// Cancel checks that userID is the booking's player, cancels the booking
// and frees its slot. slot may be nil when it no longer exists.
func Cancel(b *models.Booking, slot *models.Slot, userID uint, now time.Time) error {
	if b.UserID != userID {
		return httperr.ErrForbidden("not_booking_owner", "You can only cancel your own bookings.")
	}

	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	if slot != nil {
		slot.IsBooked = false
	}
	return nil
}
