package account

import (
	"context"

	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type Repository interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)

	EmailTaken(ctx context.Context, email string) (bool, error)

	CreateUser(ctx context.Context, u *models.User) error

	FindByUsername(ctx context.Context, username string) (*models.User, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)

	// DeleteUser removes the user, the turfs they own (with slots and
	// bookings) and their own bookings, freeing the slots those held.
	DeleteUser(ctx context.Context, id uint) error
}
