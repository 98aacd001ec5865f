package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/turf-booking/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// Log persists ev. When OwnerID is unset it is resolved from the turf.
func (l *Logger) Log(ctx context.Context, ev Event) error {
	ownerID := ev.OwnerID
	if ownerID == 0 && ev.TurfID != nil {
		if err := l.db.WithContext(ctx).
			Model(&models.Turf{}).
			Where("id = ?", *ev.TurfID).
			Select("owner_id").
			Scan(&ownerID).Error; err != nil {
			return fmt.Errorf("resolve turf owner: %w", err)
		}
	}
	if ownerID == 0 {
		return fmt.Errorf("audit %s: no owner for event", ev.Action)
	}

	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		OwnerID:  ownerID,
		UserID:   ev.UserID,
		TurfID:   ev.TurfID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}
