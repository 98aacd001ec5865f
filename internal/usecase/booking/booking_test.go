package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/turf-booking/internal/audit"
	domain "github.com/BruksfildServices01/turf-booking/internal/domain/booking"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/infra/repository"
	"github.com/BruksfildServices01/turf-booking/internal/models"
	"github.com/BruksfildServices01/turf-booking/internal/testutil"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

type fixture struct {
	db     *gorm.DB
	repo   *repository.BookingGormRepository
	sink   *recordingSink
	player *models.User
	other  *models.User
	turf   *models.Turf
	slot   *models.Slot
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner", true)
	turf := testutil.CreateTurf(t, db, owner.ID, "Green Field", "Mumbai", 500)

	return fixture{
		db:     db,
		repo:   repository.NewBookingGormRepository(db),
		sink:   &recordingSink{},
		player: testutil.CreateUser(t, db, "player", false),
		other:  testutil.CreateUser(t, db, "other", false),
		turf:   turf,
		slot:   testutil.CreateSlot(t, db, turf.ID, "2024-01-01", "10:00", "11:00"),
	}
}

func TestBookThenCancelFreesSlot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	b, err := NewBookSlot(f.repo, f.sink).Execute(ctx, f.slot.ID, f.player.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.Equal(t, f.turf.ID, b.TurfID)
	assert.True(t, testutil.ReloadSlot(t, f.db, f.slot.ID).IsBooked)

	cancelled, err := NewCancelBooking(f.repo, f.sink).Execute(ctx, b.ID, f.player.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	assert.False(t, testutil.ReloadSlot(t, f.db, f.slot.ID).IsBooked)
	assert.Equal(t, int64(1), testutil.CountBookings(t, f.db, "slot_id = ?", f.slot.ID))
	assert.Equal(t, int64(1), testutil.CountBookings(t, f.db, "slot_id = ? AND status = ?", f.slot.ID, "cancelled"))

	assert.Equal(t, []string{"booking_created", "booking_cancelled"}, f.sink.actions())
}

func TestDoubleBookIsConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	uc := NewBookSlot(f.repo, f.sink)

	first, err := uc.Execute(ctx, f.slot.ID, f.player.ID)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, f.slot.ID, f.other.ID)
	require.Error(t, err)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))

	var stored models.Booking
	require.NoError(t, f.db.First(&stored, first.ID).Error)
	assert.Equal(t, f.player.ID, stored.UserID)
	assert.Equal(t, string(domain.StatusConfirmed), stored.Status)
	assert.Equal(t, int64(1), testutil.CountBookings(t, f.db, "slot_id = ?", f.slot.ID))
}

func TestRebookAfterCancelCreatesNewBooking(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	b, err := NewBookSlot(f.repo, f.sink).Execute(ctx, f.slot.ID, f.player.ID)
	require.NoError(t, err)
	_, err = NewCancelBooking(f.repo, f.sink).Execute(ctx, b.ID, f.player.ID)
	require.NoError(t, err)

	again, err := NewBookSlot(f.repo, f.sink).Execute(ctx, f.slot.ID, f.other.ID)
	require.NoError(t, err)

	assert.NotEqual(t, b.ID, again.ID)
	assert.Equal(t, int64(2), testutil.CountBookings(t, f.db, "slot_id = ?", f.slot.ID))
	assert.True(t, testutil.ReloadSlot(t, f.db, f.slot.ID).IsBooked)
}

func TestBookMissingSlot(t *testing.T) {
	f := setup(t)

	_, err := NewBookSlot(f.repo, f.sink).Execute(context.Background(), 9999, f.player.ID)

	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
	assert.Empty(t, f.sink.actions())
}

func TestCancelByAnotherUserIsForbidden(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	b, err := NewBookSlot(f.repo, f.sink).Execute(ctx, f.slot.ID, f.player.ID)
	require.NoError(t, err)

	_, err = NewCancelBooking(f.repo, f.sink).Execute(ctx, b.ID, f.other.ID)
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	assert.True(t, testutil.ReloadSlot(t, f.db, f.slot.ID).IsBooked)
	assert.Equal(t, int64(1), testutil.CountBookings(t, f.db, "status = ?", "confirmed"))
}

func TestCancelMissingBooking(t *testing.T) {
	f := setup(t)

	_, err := NewCancelBooking(f.repo, f.sink).Execute(context.Background(), 9999, f.player.ID)

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestCancelTwiceIsConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	b, err := NewBookSlot(f.repo, f.sink).Execute(ctx, f.slot.ID, f.player.ID)
	require.NoError(t, err)

	uc := NewCancelBooking(f.repo, f.sink)
	_, err = uc.Execute(ctx, b.ID, f.player.ID)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, b.ID, f.player.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_already_cancelled"))
}

// failingRepo breaks CreateBooking after the slot flag has been flipped.
type failingRepo struct {
	domain.Repository
}

func (r failingRepo) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.Repository.Transaction(ctx, func(tx domain.Repository) error {
		return fn(failingRepo{tx})
	})
}

func (failingRepo) CreateBooking(context.Context, *models.Booking) error {
	return errors.New("disk full")
}

func TestBookRollsBackOnPersistenceFailure(t *testing.T) {
	f := setup(t)

	_, err := NewBookSlot(failingRepo{f.repo}, f.sink).Execute(context.Background(), f.slot.ID, f.player.ID)
	require.Error(t, err)
	assert.Equal(t, httperr.Kind(""), httperr.KindOf(err))

	assert.False(t, testutil.ReloadSlot(t, f.db, f.slot.ID).IsBooked)
	assert.Zero(t, testutil.CountBookings(t, f.db, "slot_id = ?", f.slot.ID))
	assert.Empty(t, f.sink.actions())
}

func TestConcurrentBookingsOnlyOneWins(t *testing.T) {
	f := setup(t)
	uc := NewBookSlot(f.repo, audit.Discard{})

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), f.slot.ID, f.player.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case httperr.KindOf(err) == httperr.KindConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, int64(1), testutil.CountBookings(t, f.db, "slot_id = ?", f.slot.ID))
}

func TestListBookingHistory(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	later := testutil.CreateSlot(t, f.db, f.turf.ID, "2024-01-03", "18:00", "19:00")

	first, err := NewBookSlot(f.repo, f.sink).Execute(ctx, f.slot.ID, f.player.ID)
	require.NoError(t, err)
	second, err := NewBookSlot(f.repo, f.sink).Execute(ctx, later.ID, f.player.ID)
	require.NoError(t, err)
	_, err = NewBookSlot(f.repo, f.sink).Execute(ctx, testutil.CreateSlot(t, f.db, f.turf.ID, "2024-01-05", "08:00", "09:00").ID, f.other.ID)
	require.NoError(t, err)

	uc := NewListBookingHistory(f.repo, "UTC")
	uc.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }

	history, err := uc.Execute(ctx, f.player.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, "Green Field", history[0].TurfName)
	assert.Equal(t, "2024-01-03", history[0].Date)
	assert.Equal(t, "18:00", history[0].StartTime)
	assert.True(t, history[0].Upcoming)

	assert.Equal(t, first.ID, history[1].ID)
	assert.False(t, history[1].Upcoming)
}
