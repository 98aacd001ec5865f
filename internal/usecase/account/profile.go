package account

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/account"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type Profile struct {
	repo domain.Repository
}

func NewProfile(repo domain.Repository) *Profile {
	return &Profile{repo: repo}
}

func (uc *Profile) Get(ctx context.Context, userID uint) (*models.User, error) {
	return uc.repo.GetUser(ctx, userID)
}

// Delete removes the account with everything it owns. Slots held by the
// user's confirmed bookings become bookable again.
func (uc *Profile) Delete(ctx context.Context, userID uint) error {
	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	slog.Info("account deleted", "user_id", userID)
	return nil
}
