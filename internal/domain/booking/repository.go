package booking

import (
	"context"

	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction. Any error returned by fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Slot --------
	LockSlot(ctx context.Context, id uint) (*models.Slot, error)

	// MarkSlotBooked flips is_booked to true only if it is still false.
	MarkSlotBooked(ctx context.Context, slotID uint) error

	ReleaseSlot(ctx context.Context, slotID uint) error

	// -------- Booking --------
	CreateBooking(ctx context.Context, b *models.Booking) error

	LockBooking(ctx context.Context, id uint) (*models.Booking, error)

	UpdateBooking(ctx context.Context, b *models.Booking) error

	ListBookingsForUser(ctx context.Context, userID uint) ([]BookingView, error)
}

// BookingView is a booking joined with its turf and slot for listing.
type BookingView struct {
	models.Booking
	TurfName  string
	Date      string
	StartTime string
	EndTime   string
}
