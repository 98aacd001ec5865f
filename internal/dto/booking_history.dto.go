package dto

import "time"

type BookingHistoryDTO struct {
	ID          uint       `json:"id"`
	TurfID      uint       `json:"turf_id"`
	TurfName    string     `json:"turf_name"`
	SlotID      uint       `json:"slot_id"`
	Date        string     `json:"date"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Status      string     `json:"status"`
	Upcoming    bool       `json:"upcoming"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}
