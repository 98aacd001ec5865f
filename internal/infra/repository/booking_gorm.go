package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/booking"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *BookingGormRepository) LockSlot(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, id).Error; err != nil {
		return nil, errSlotNotFound(err)
	}
	return &s, nil
}

func (r *BookingGormRepository) MarkSlotBooked(
	ctx context.Context,
	slotID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ? AND is_booked = ?", slotID, false).
		Update("is_booked", true)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrConflict("slot_already_booked", "Slot already booked. Please choose another one.")
	}
	return nil
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	slotID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ?", slotID).
		Update("is_booked", false).Error
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Create(b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrConflict("slot_already_booked", "Slot already booked. Please choose another one.")
	}
	return err
}

func (r *BookingGormRepository) LockBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error; err != nil {
		return nil, notFound(err, "booking_not_found", "Booking not found.")
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Model(b).
		Select("status", "cancelled_at").
		Updates(b).Error
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]domain.BookingView, error) {

	var out []domain.BookingView
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.*,
            turfs.name AS turf_name,
            slots.date AS date,
            slots.start_time AS start_time,
            slots.end_time AS end_time`).
		Joins("JOIN turfs ON turfs.id = bookings.turf_id").
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC, bookings.id DESC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
