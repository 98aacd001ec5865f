package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/slot"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

func (r *SlotGormRepository) GetTurf(
	ctx context.Context,
	id uint,
) (*models.Turf, error) {

	var t models.Turf
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, errTurfNotFound(err)
	}
	return &t, nil
}

func (r *SlotGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, errSlotNotFound(err)
	}
	return &s, nil
}

func (r *SlotGormRepository) CreateSlotWithoutOverlap(
	ctx context.Context,
	s *models.Slot,
) error {

	candidate, err := domain.WindowOf(s)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Locking the turf row serializes slot creation per turf.
		var t models.Turf
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&t, s.TurfID).Error; err != nil {
			return errTurfNotFound(err)
		}

		var sameDay []models.Slot
		if err := tx.
			Where("turf_id = ? AND date = ?", s.TurfID, s.Date).
			Find(&sameDay).Error; err != nil {
			return err
		}

		hit, err := domain.FirstOverlap(candidate, sameDay)
		if err != nil {
			return err
		}
		if hit != nil {
			slog.Info("slot rejected: overlap",
				"turf_id", s.TurfID,
				"date", s.Date,
				"existing_slot_id", hit.ID,
			)
			return httperr.ErrConflict("slot_overlap", "Slot overlaps with an existing one.")
		}

		return tx.Create(s).Error
	})
}

func (r *SlotGormRepository) DeleteSlot(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteSlotCascade(tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return httperr.ErrNotFound("slot_not_found", "Slot not found.")
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
