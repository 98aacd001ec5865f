package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/turf-booking/internal/audit"
	domain "github.com/BruksfildServices01/turf-booking/internal/domain/booking"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit audit.Sink
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	audit audit.Sink,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Execute cancels the booking on behalf of userID and frees its slot in
// the same transaction.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var cancelled *models.Booking

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}

		slot, err := tx.LockSlot(ctx, b.SlotID)
		if err != nil && httperr.KindOf(err) != httperr.KindNotFound {
			return err
		}

		if err := domain.Cancel(b, slot, userID, uc.now()); err != nil {
			return err
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		if slot != nil {
			if err := tx.ReleaseSlot(ctx, slot.ID); err != nil {
				return err
			}
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking cancelled",
		"booking_id", cancelled.ID,
		"slot_id", cancelled.SlotID,
		"user_id", userID,
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		TurfID:   &cancelled.TurfID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &cancelled.ID,
		Metadata: map[string]any{"slot_id": cancelled.SlotID},
	})

	return cancelled, nil
}
