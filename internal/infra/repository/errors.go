package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
)

// notFound turns gorm.ErrRecordNotFound into a business NotFound error and
// passes every other error through.
func notFound(err error, code, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code, message)
	}
	return err
}

func errSlotNotFound(err error) error {
	return notFound(err, "slot_not_found", "Slot not found.")
}

func errTurfNotFound(err error) error {
	return notFound(err, "turf_not_found", "Turf not found.")
}
