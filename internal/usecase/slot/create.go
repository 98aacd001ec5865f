package slot

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/turf-booking/internal/audit"
	domain "github.com/BruksfildServices01/turf-booking/internal/domain/slot"
	"github.com/BruksfildServices01/turf-booking/internal/domain/turf"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type CreateSlotInput struct {
	OwnerID uint
	TurfID  uint

	Date      string
	StartTime string
	EndTime   string
}

type CreateSlot struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateSlot(
	repo domain.Repository,
	audit audit.Sink,
) *CreateSlot {
	return &CreateSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the window, then inserts the slot unless it overlaps
// another slot of the same turf on the same date.
func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.Slot, error) {

	t, err := uc.repo.GetTurf(ctx, in.TurfID)
	if err != nil {
		return nil, err
	}

	if err := turf.AssertOwner(t, in.OwnerID); err != nil {
		return nil, err
	}

	w, err := domain.ParseWindow(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	s := &models.Slot{TurfID: t.ID}
	w.Apply(s)

	if err := uc.repo.CreateSlotWithoutOverlap(ctx, s); err != nil {
		if httperr.IsBusiness(err, "slot_overlap") {
			uc.audit.Dispatch(audit.Event{
				OwnerID: t.OwnerID,
				UserID:  &in.OwnerID,
				TurfID:  &t.ID,
				Action:  "slot_overlap_rejected",
				Entity:  "slot",
				Metadata: map[string]any{
					"date":  s.Date,
					"start": s.StartTime,
					"end":   s.EndTime,
				},
			})
		}
		return nil, err
	}

	slog.Info("slot created", "slot_id", s.ID, "turf_id", t.ID, "date", s.Date)

	uc.audit.Dispatch(audit.Event{
		OwnerID:  t.OwnerID,
		UserID:   &in.OwnerID,
		TurfID:   &t.ID,
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &s.ID,
	})

	return s, nil
}
