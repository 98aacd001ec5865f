package turf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

func TestDetailsValidate(t *testing.T) {
	ok := Details{Name: "Arena", PricePerHour: 500}
	assert.NoError(t, ok.Validate())

	cases := []struct {
		name string
		in   Details
		code string
	}{
		{"missing name", Details{Name: "  ", PricePerHour: 500}.Normalize(), "missing_name"},
		{"long name", Details{Name: strings.Repeat("a", 121), PricePerHour: 500}, "invalid_name"},
		{"long city", Details{Name: "A", City: strings.Repeat("c", 81), PricePerHour: 500}, "invalid_city"},
		{"zero price", Details{Name: "A"}, "invalid_price"},
		{"negative price", Details{Name: "A", PricePerHour: -10}, "invalid_price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
			assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
		})
	}
}

func TestAssertOwner(t *testing.T) {
	turf := &models.Turf{ID: 1, OwnerID: 5}

	assert.NoError(t, AssertOwner(turf, 5))
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(AssertOwner(turf, 6)))
}
