package booking

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/turf-booking/internal/audit"
	domain "github.com/BruksfildServices01/turf-booking/internal/domain/booking"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type BookSlot struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewBookSlot(
	repo domain.Repository,
	audit audit.Sink,
) *BookSlot {
	return &BookSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute reserves the slot for userID. The slot row is locked, re-checked
// and flipped together with the booking insert in one transaction, so of
// two concurrent attempts exactly one succeeds.
func (uc *BookSlot) Execute(
	ctx context.Context,
	slotID uint,
	userID uint,
) (*models.Booking, error) {

	var created *models.Booking

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		slot, err := tx.LockSlot(ctx, slotID)
		if err != nil {
			return err
		}

		b, err := domain.Reserve(slot, userID)
		if err != nil {
			return err
		}

		if err := tx.MarkSlotBooked(ctx, slot.ID); err != nil {
			return err
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"booking_id", created.ID,
		"slot_id", created.SlotID,
		"user_id", userID,
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		TurfID:   &created.TurfID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &created.ID,
		Metadata: map[string]any{"slot_id": created.SlotID},
	})

	return created, nil
}
