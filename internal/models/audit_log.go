package models

import "time"

// AuditLog rows are scoped to the owner of the turf the event concerns.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint   `gorm:"index;not null" json:"owner_id"`
	UserID  *uint  `json:"user_id"`
	TurfID  *uint  `json:"turf_id"`
	Action  string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
