package dto

import "github.com/BruksfildServices01/turf-booking/internal/models"

type TurfDetailDTO struct {
	Turf  models.Turf   `json:"turf"`
	Slots []models.Slot `json:"slots"`
}
