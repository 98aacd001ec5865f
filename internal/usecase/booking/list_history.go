package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/booking"
	"github.com/BruksfildServices01/turf-booking/internal/domain/slot"
	"github.com/BruksfildServices01/turf-booking/internal/dto"
	"github.com/BruksfildServices01/turf-booking/internal/timezone"
)

type ListBookingHistory struct {
	repo     domain.Repository
	timezone string
	now      func() time.Time
}

func NewListBookingHistory(
	repo domain.Repository,
	tz string,
) *ListBookingHistory {
	return &ListBookingHistory{
		repo:     repo,
		timezone: tz,
		now:      func() time.Time { return timezone.NowIn(tz) },
	}
}

// Execute lists the player's bookings, newest first. A booking is upcoming
// while it is confirmed and its slot has not started yet.
func (uc *ListBookingHistory) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingHistoryDTO, error) {

	views, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.timezone)
	now := uc.now()

	out := make([]dto.BookingHistoryDTO, 0, len(views))
	for _, v := range views {
		upcoming := false
		if v.Status == string(domain.StatusConfirmed) {
			w := slot.Window{Date: v.Date}
			if start, err := slot.ParseClock(v.StartTime); err == nil {
				w.Start = start
				if startsAt, err := w.StartsAt(loc); err == nil {
					upcoming = startsAt.After(now)
				}
			}
		}

		out = append(out, dto.BookingHistoryDTO{
			ID:          v.ID,
			TurfID:      v.TurfID,
			TurfName:    v.TurfName,
			SlotID:      v.SlotID,
			Date:        v.Date,
			StartTime:   v.StartTime,
			EndTime:     v.EndTime,
			Status:      v.Status,
			Upcoming:    upcoming,
			CreatedAt:   v.CreatedAt,
			CancelledAt: v.CancelledAt,
		})
	}

	return out, nil
}
