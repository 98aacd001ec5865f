package turf

import (
	"context"

	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type Repository interface {
	// -------- Browse --------
	ListTurfs(ctx context.Context, city string) ([]models.Turf, error)

	LatestTurfs(ctx context.Context, limit int) ([]models.Turf, error)

	GetTurf(ctx context.Context, id uint) (*models.Turf, error)

	// ListSlots returns the turf's slots ordered by date then start time.
	ListSlots(ctx context.Context, turfID uint) ([]models.Slot, error)

	// -------- Owner --------
	CreateTurf(ctx context.Context, t *models.Turf) error

	UpdateTurf(ctx context.Context, t *models.Turf) error

	// DeleteTurf removes the turf with its slots and bookings.
	DeleteTurf(ctx context.Context, id uint) error

	// -------- Analytics --------
	TotalRevenue(ctx context.Context, turfID uint) (float64, error)

	ListOwnerStats(ctx context.Context, ownerID uint) ([]Stats, error)
}
