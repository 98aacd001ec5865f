package slot

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/turf-booking/internal/audit"
	domain "github.com/BruksfildServices01/turf-booking/internal/domain/slot"
	"github.com/BruksfildServices01/turf-booking/internal/domain/turf"
)

type DeleteSlot struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteSlot(
	repo domain.Repository,
	audit audit.Sink,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteSlot) Execute(
	ctx context.Context,
	ownerID uint,
	slotID uint,
) error {

	s, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return err
	}

	t, err := uc.repo.GetTurf(ctx, s.TurfID)
	if err != nil {
		return err
	}

	if err := turf.AssertOwner(t, ownerID); err != nil {
		return err
	}

	if err := uc.repo.DeleteSlot(ctx, s.ID); err != nil {
		return err
	}

	slog.Info("slot deleted", "slot_id", s.ID, "turf_id", t.ID, "was_booked", s.IsBooked)

	uc.audit.Dispatch(audit.Event{
		OwnerID:  t.OwnerID,
		UserID:   &ownerID,
		TurfID:   &t.ID,
		Action:   "slot_deleted",
		Entity:   "slot",
		EntityID: &s.ID,
		Metadata: map[string]any{"was_booked": s.IsBooked},
	})

	return nil
}
