package repository

import (
	"gorm.io/gorm"

	domainBooking "github.com/BruksfildServices01/turf-booking/internal/domain/booking"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

// The helpers below spell out the cascade rules instead of relying on the
// database honoring ON DELETE CASCADE. They must run inside a transaction.

func deleteSlotCascade(tx *gorm.DB, slotID uint) (int64, error) {
	if err := tx.Where("slot_id = ?", slotID).Delete(&models.Booking{}).Error; err != nil {
		return 0, err
	}

	res := tx.Delete(&models.Slot{}, slotID)
	return res.RowsAffected, res.Error
}

func deleteTurfCascade(tx *gorm.DB, turfID uint) (int64, error) {
	if err := tx.Where("turf_id = ?", turfID).Delete(&models.Booking{}).Error; err != nil {
		return 0, err
	}

	if err := tx.Where("turf_id = ?", turfID).Delete(&models.Slot{}).Error; err != nil {
		return 0, err
	}

	res := tx.Delete(&models.Turf{}, turfID)
	return res.RowsAffected, res.Error
}

func deleteUserCascade(tx *gorm.DB, userID uint) (int64, error) {
	var turfIDs []uint
	if err := tx.Model(&models.Turf{}).
		Where("owner_id = ?", userID).
		Pluck("id", &turfIDs).Error; err != nil {
		return 0, err
	}

	for _, id := range turfIDs {
		if _, err := deleteTurfCascade(tx, id); err != nil {
			return 0, err
		}
	}

	// Slots held by this player's confirmed bookings on other owners' turfs
	// become available again.
	if err := tx.Model(&models.Slot{}).
		Where("id IN (?)", tx.Model(&models.Booking{}).
			Select("slot_id").
			Where("user_id = ? AND status = ?", userID, string(domainBooking.StatusConfirmed))).
		Update("is_booked", false).Error; err != nil {
		return 0, err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.Booking{}).Error; err != nil {
		return 0, err
	}

	if err := tx.Where("owner_id = ?", userID).Delete(&models.AuditLog{}).Error; err != nil {
		return 0, err
	}

	res := tx.Delete(&models.User{}, userID)
	return res.RowsAffected, res.Error
}
