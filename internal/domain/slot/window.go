package slot

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Clock is a time of day in minutes since midnight.
type Clock int

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, err
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Window is a half-open [Start, End) interval on a calendar date.
type Window struct {
	Date  string
	Start Clock
	End   Clock
}

// ParseWindow validates raw form input. Malformed values and ranges where
// start is not strictly before end are validation errors.
func ParseWindow(date, start, end string) (Window, error) {
	if date == "" || start == "" || end == "" {
		return Window{}, httperr.ErrValidation("missing_fields", "Please fill all fields.")
	}

	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return Window{}, httperr.ErrValidation("invalid_date_or_time", "Invalid date or time format.")
	}

	s, err := ParseClock(start)
	if err != nil {
		return Window{}, httperr.ErrValidation("invalid_date_or_time", "Invalid date or time format.")
	}

	e, err := ParseClock(end)
	if err != nil {
		return Window{}, httperr.ErrValidation("invalid_date_or_time", "Invalid date or time format.")
	}

	if s >= e {
		return Window{}, httperr.ErrValidation("invalid_time_range", "End time must be after start time.")
	}

	return Window{Date: d.Format(DateLayout), Start: s, End: e}, nil
}

// WindowOf reads the window of a stored slot.
func WindowOf(s *models.Slot) (Window, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return Window{}, fmt.Errorf("slot %d start: %w", s.ID, err)
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return Window{}, fmt.Errorf("slot %d end: %w", s.ID, err)
	}
	return Window{Date: s.Date, Start: start, End: end}, nil
}

// Apply copies the window onto a slot in its stored form.
func (w Window) Apply(s *models.Slot) {
	s.Date = w.Date
	s.StartTime = w.Start.String()
	s.EndTime = w.End.String()
}

// StartsAt returns the window start as an instant in loc.
func (w Window) StartsAt(loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, w.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(w.Start) * time.Minute), nil
}
