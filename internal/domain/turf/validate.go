package turf

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

// Details are the owner-editable attributes of a turf.
type Details struct {
	Name         string
	City         string
	Address      string
	Description  string
	Image        string
	PricePerHour float64
}

func (d Details) Normalize() Details {
	d.Name = strings.TrimSpace(d.Name)
	d.City = strings.TrimSpace(d.City)
	d.Address = strings.TrimSpace(d.Address)
	d.Description = strings.TrimSpace(d.Description)
	d.Image = strings.TrimSpace(d.Image)
	return d
}

func (d Details) Validate() error {
	if d.Name == "" {
		return httperr.ErrValidation("missing_name", "Turf name is required.")
	}

	limits := []struct {
		field string
		value string
		max   int
	}{
		{"name", d.Name, 120},
		{"city", d.City, 80},
		{"address", d.Address, 200},
		{"image", d.Image, 200},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return httperr.ErrValidation("invalid_"+l.field, "Turf "+l.field+" is too long.")
		}
	}

	if d.PricePerHour <= 0 {
		return httperr.ErrValidation("invalid_price", "Price per hour must be positive.")
	}
	return nil
}

func (d Details) Apply(t *models.Turf) {
	t.Name = d.Name
	t.City = d.City
	t.Address = d.Address
	t.Description = d.Description
	t.Image = d.Image
	t.PricePerHour = d.PricePerHour
}
