package turf

import (
	"context"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/turf"
)

type OwnerDashboard struct {
	repo domain.Repository
}

func NewOwnerDashboard(repo domain.Repository) *OwnerDashboard {
	return &OwnerDashboard{repo: repo}
}

// Execute builds revenue and utilization for every turf of the owner.
func (uc *OwnerDashboard) Execute(ctx context.Context, ownerID uint) (domain.Dashboard, error) {
	stats, err := uc.repo.ListOwnerStats(ctx, ownerID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return domain.Summarize(stats), nil
}

// TotalRevenue sums the hourly price of every confirmed booking of one
// turf the owner holds.
func (uc *OwnerDashboard) TotalRevenue(ctx context.Context, ownerID, turfID uint) (float64, error) {
	t, err := uc.repo.GetTurf(ctx, turfID)
	if err != nil {
		return 0, err
	}
	if err := domain.AssertOwner(t, ownerID); err != nil {
		return 0, err
	}
	return uc.repo.TotalRevenue(ctx, t.ID)
}
