package models

import "time"

// Date is stored as YYYY-MM-DD and times as HH:MM, so ordering by the raw
// columns is chronological.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TurfID uint  `gorm:"index:idx_slots_turf_date;not null" json:"turf_id"`
	Turf   *Turf `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date      string `gorm:"size:10;index:idx_slots_turf_date;not null" json:"date"`
	StartTime string `gorm:"size:5;not null;check:chk_slots_window,start_time < end_time" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	IsBooked  bool   `gorm:"default:false;not null" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
}
