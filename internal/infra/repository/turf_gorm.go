package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domainBooking "github.com/BruksfildServices01/turf-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/turf-booking/internal/domain/turf"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type TurfGormRepository struct {
	db *gorm.DB
}

func NewTurfGormRepository(db *gorm.DB) *TurfGormRepository {
	return &TurfGormRepository{db: db}
}

// --------------------------------------------------
// Browse
// --------------------------------------------------

func (r *TurfGormRepository) ListTurfs(
	ctx context.Context,
	city string,
) ([]models.Turf, error) {

	q := r.db.WithContext(ctx)

	city = strings.ToLower(strings.TrimSpace(city))
	if city != "" {
		q = q.Where(`LOWER(city) LIKE ? ESCAPE '\'`, "%"+escapeLike(city)+"%")
	}

	var turfs []models.Turf
	if err := q.Order("id ASC").Find(&turfs).Error; err != nil {
		return nil, err
	}
	return turfs, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *TurfGormRepository) LatestTurfs(
	ctx context.Context,
	limit int,
) ([]models.Turf, error) {

	var turfs []models.Turf
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&turfs).Error; err != nil {
		return nil, err
	}
	return turfs, nil
}

func (r *TurfGormRepository) GetTurf(
	ctx context.Context,
	id uint,
) (*models.Turf, error) {

	var t models.Turf
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, errTurfNotFound(err)
	}
	return &t, nil
}

func (r *TurfGormRepository) ListSlots(
	ctx context.Context,
	turfID uint,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("turf_id = ?", turfID).
		Order("date ASC, start_time ASC, id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (r *TurfGormRepository) CreateTurf(
	ctx context.Context,
	t *models.Turf,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TurfGormRepository) UpdateTurf(
	ctx context.Context,
	t *models.Turf,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TurfGormRepository) DeleteTurf(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteTurfCascade(tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return httperr.ErrNotFound("turf_not_found", "Turf not found.")
		}
		return nil
	})
}

// --------------------------------------------------
// Analytics
// --------------------------------------------------

func (r *TurfGormRepository) TotalRevenue(
	ctx context.Context,
	turfID uint,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select("COALESCE(SUM(turfs.price_per_hour), 0)").
		Joins("JOIN turfs ON turfs.id = bookings.turf_id").
		Where("bookings.turf_id = ? AND bookings.status = ?", turfID, string(domainBooking.StatusConfirmed)).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TurfGormRepository) ListOwnerStats(
	ctx context.Context,
	ownerID uint,
) ([]domain.Stats, error) {

	var stats []domain.Stats
	if err := r.db.WithContext(ctx).
		Raw(`
            SELECT
                t.id AS turf_id,
                t.name AS name,
                t.city AS city,
                t.price_per_hour AS price_per_hour,
                (SELECT COUNT(*) FROM slots s WHERE s.turf_id = t.id) AS total_slots,
                (SELECT COUNT(*) FROM bookings b
                    WHERE b.turf_id = t.id AND b.status = ?) AS confirmed_bookings
            FROM turfs t
            WHERE t.owner_id = ?
            ORDER BY t.id ASC
        `, string(domainBooking.StatusConfirmed), ownerID).
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*TurfGormRepository)(nil)
