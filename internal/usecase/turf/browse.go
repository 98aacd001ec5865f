package turf

import (
	"context"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/turf"
	"github.com/BruksfildServices01/turf-booking/internal/dto"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type BrowseTurfs struct {
	repo        domain.Repository
	latestLimit int
}

func NewBrowseTurfs(repo domain.Repository, latestLimit int) *BrowseTurfs {
	if latestLimit <= 0 {
		latestLimit = 6
	}
	return &BrowseTurfs{repo: repo, latestLimit: latestLimit}
}

// List returns every turf whose city contains the filter, ignoring case.
// An empty filter lists all turfs.
func (uc *BrowseTurfs) List(ctx context.Context, city string) ([]models.Turf, error) {
	return uc.repo.ListTurfs(ctx, city)
}

// Latest is the home feed: newest turfs first.
func (uc *BrowseTurfs) Latest(ctx context.Context) ([]models.Turf, error) {
	return uc.repo.LatestTurfs(ctx, uc.latestLimit)
}

// Detail returns the turf with its slots ordered by date and start time.
func (uc *BrowseTurfs) Detail(ctx context.Context, turfID uint) (*dto.TurfDetailDTO, error) {
	t, err := uc.repo.GetTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	slots, err := uc.repo.ListSlots(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TurfDetailDTO{Turf: *t, Slots: slots}, nil
}
