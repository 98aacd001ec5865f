package slot

import "github.com/BruksfildServices01/turf-booking/internal/models"

// Overlaps reports whether [start, end) intersects [otherStart, otherEnd).
// Touching intervals do not overlap.
func Overlaps(start, end, otherStart, otherEnd Clock) bool {
	return !(end <= otherStart || start >= otherEnd)
}

// Overlaps compares two windows. Windows on different dates never overlap.
func (w Window) Overlaps(other Window) bool {
	if w.Date != other.Date {
		return false
	}
	return Overlaps(w.Start, w.End, other.Start, other.End)
}

// FirstOverlap returns the first existing slot that intersects candidate, or nil.
func FirstOverlap(candidate Window, existing []models.Slot) (*models.Slot, error) {
	for i := range existing {
		w, err := WindowOf(&existing[i])
		if err != nil {
			return nil, err
		}
		if w.Overlaps(candidate) {
			return &existing[i], nil
		}
	}
	return nil, nil
}
