package turf

import (
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

// AssertOwner fails with Forbidden unless userID owns t.
func AssertOwner(t *models.Turf, userID uint) error {
	if t.OwnerID != userID {
		return httperr.ErrForbidden("not_turf_owner", "You do not own this turf.")
	}
	return nil
}
