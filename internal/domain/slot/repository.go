package slot

import (
	"context"

	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type Repository interface {
	GetTurf(ctx context.Context, id uint) (*models.Turf, error)

	GetSlot(ctx context.Context, id uint) (*models.Slot, error)

	// CreateSlotWithoutOverlap inserts s unless it intersects another slot of
	// the same turf and date, in which case it returns a slot_overlap conflict.
	CreateSlotWithoutOverlap(ctx context.Context, s *models.Slot) error

	// DeleteSlot removes the slot together with its booking.
	DeleteSlot(ctx context.Context, id uint) error
}
