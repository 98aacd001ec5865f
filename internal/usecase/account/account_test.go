package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/account"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/infra/repository"
	"github.com/BruksfildServices01/turf-booking/internal/models"
	"github.com/BruksfildServices01/turf-booking/internal/testutil"
)

func validInput() RegisterInput {
	return RegisterInput{
		Username:        "player1",
		Email:           "Player1@Example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserGormRepository(db)
	tokens := domain.NewTokens("test-secret", time.Hour)

	session, err := NewRegister(repo, tokens, false).Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "player1@example.com", session.User.Email)
	assert.NotEqual(t, "secret123", session.User.PasswordHash)

	id, role, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, id)
	assert.Equal(t, models.RolePlayer, role)

	login := NewLogin(repo, tokens)

	got, err := login.Execute(context.Background(), "player1", "secret123")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, got.User.ID)

	_, err = login.Execute(context.Background(), "player1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = login.Execute(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterConflicts(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "player1", false)
	uc := NewRegister(repository.NewUserGormRepository(db), domain.NewTokens("s", time.Hour), false)

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "username_taken"))

	in := validInput()
	in.Username = "player2"
	in.Email = "player1@example.com"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "email_taken"))
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
}

func TestRegisterValidation(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewRegister(repository.NewUserGormRepository(db), domain.NewTokens("s", time.Hour), false)

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
		code   string
	}{
		{"missing", func(in *RegisterInput) { in.Username = " " }, "missing_fields"},
		{"short username", func(in *RegisterInput) { in.Username = "ab" }, "invalid_username"},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, "invalid_email"},
		{"weak password", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "123", "123" }, "weak_password"},
		{"mismatch", func(in *RegisterInput) { in.ConfirmPassword = "other123" }, "password_mismatch"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestRegisterRejectsUnresolvableDomain(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewRegister(repository.NewUserGormRepository(db), domain.NewTokens("s", time.Hour), true)
	uc.emailDomainOK = func(string) bool { return false }

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
}

func TestDeleteAccountCascades(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner", true)
	player := testutil.CreateUser(t, db, "player", false)

	own := testutil.CreateTurf(t, db, owner.ID, "Arena", "Pune", 500)
	ownSlot := testutil.CreateSlot(t, db, own.ID, "2024-01-01", "10:00", "11:00")

	otherOwner := testutil.CreateUser(t, db, "other", true)
	foreign := testutil.CreateTurf(t, db, otherOwner.ID, "Goal", "Pune", 500)
	foreignSlot := testutil.CreateSlot(t, db, foreign.ID, "2024-01-01", "10:00", "11:00")
	require.NoError(t, db.Model(foreignSlot).Update("is_booked", true).Error)
	require.NoError(t, db.Create(&models.Booking{UserID: owner.ID, TurfID: foreign.ID, SlotID: foreignSlot.ID, Status: "confirmed"}).Error)
	require.NoError(t, db.Create(&models.Booking{UserID: player.ID, TurfID: own.ID, SlotID: ownSlot.ID, Status: "confirmed"}).Error)

	uc := NewProfile(repository.NewUserGormRepository(db))
	require.NoError(t, uc.Delete(context.Background(), owner.ID))

	_, err := uc.Get(context.Background(), owner.ID)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))

	var turfs int64
	require.NoError(t, db.Model(&models.Turf{}).Where("owner_id = ?", owner.ID).Count(&turfs).Error)
	assert.Zero(t, turfs)
	assert.Zero(t, testutil.CountBookings(t, db, "turf_id = ?", own.ID))
	assert.Zero(t, testutil.CountBookings(t, db, "user_id = ?", owner.ID))

	assert.False(t, testutil.ReloadSlot(t, db, foreignSlot.ID).IsBooked)

	err = uc.Delete(context.Background(), owner.ID)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}
