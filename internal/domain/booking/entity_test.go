package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

func TestReserve(t *testing.T) {
	slot := &models.Slot{ID: 7, TurfID: 3}

	b, err := Reserve(slot, 42)
	require.NoError(t, err)

	assert.True(t, slot.IsBooked)
	assert.Equal(t, uint(42), b.UserID)
	assert.Equal(t, uint(3), b.TurfID)
	assert.Equal(t, uint(7), b.SlotID)
	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestReserveBookedSlot(t *testing.T) {
	slot := &models.Slot{ID: 7, TurfID: 3, IsBooked: true}

	b, err := Reserve(slot, 42)

	assert.Nil(t, b)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
}

func TestCancel(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	slot := &models.Slot{ID: 7, IsBooked: true}
	b := &models.Booking{ID: 1, UserID: 42, SlotID: 7, Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(b, slot, 42, now))

	assert.Equal(t, string(StatusCancelled), b.Status)
	assert.False(t, slot.IsBooked)
	require.NotNil(t, b.CancelledAt)
	assert.True(t, b.CancelledAt.Equal(now))
}

func TestCancelByAnotherUser(t *testing.T) {
	slot := &models.Slot{ID: 7, IsBooked: true}
	b := &models.Booking{ID: 1, UserID: 42, SlotID: 7, Status: string(StatusConfirmed)}

	err := Cancel(b, slot, 99, time.Now())

	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.True(t, slot.IsBooked)
}

func TestCancelIsTerminal(t *testing.T) {
	slot := &models.Slot{ID: 7}
	b := &models.Booking{ID: 1, UserID: 42, SlotID: 7, Status: string(StatusCancelled)}

	err := Cancel(b, slot, 42, time.Now())

	assert.True(t, httperr.IsBusiness(err, "booking_already_cancelled"))
	assert.Nil(t, b.CancelledAt)
}
