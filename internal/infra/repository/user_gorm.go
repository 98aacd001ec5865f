package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/account"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) UsernameTaken(
	ctx context.Context,
	username string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrConflict("user_already_exists", "Username or email already registered.")
	}
	return err
}

func (r *UserGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found", "User not found.")
	}
	return &u, nil
}

func (r *UserGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user_not_found", "User not found.")
	}
	return &u, nil
}

func (r *UserGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteUserCascade(tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return httperr.ErrNotFound("user_not_found", "User not found.")
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
