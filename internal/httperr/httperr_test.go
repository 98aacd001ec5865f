package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("book slot: %w", ErrConflict("slot_already_booked", "taken"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsBusiness(err, "slot_already_booked"))
	assert.False(t, IsBusiness(err, "slot_overlap"))
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrNotFound("slot_not_found", "Slot not found."), http.StatusNotFound, "slot_not_found"},
		{"forbidden", ErrForbidden("not_booking_owner", "nope"), http.StatusForbidden, "not_booking_owner"},
		{"conflict", ErrConflict("slot_overlap", "overlap"), http.StatusConflict, "slot_overlap"},
		{"validation", ErrValidation("invalid_time_range", "bad"), http.StatusBadRequest, "invalid_time_range"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error_code":"`+tc.code+`"`)
		})
	}
}
