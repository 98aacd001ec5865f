package models

import "time"

type Turf struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint  `gorm:"index;not null" json:"owner_id"`
	Owner   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name         string  `gorm:"size:120;not null" json:"name"`
	City         string  `gorm:"size:80" json:"city"`
	Address      string  `gorm:"size:200" json:"address"`
	PricePerHour float64 `gorm:"not null;default:500;check:chk_turfs_price,price_per_hour > 0" json:"price_per_hour"`
	Description  string  `gorm:"type:text" json:"description"`
	Image        string  `gorm:"size:200" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
