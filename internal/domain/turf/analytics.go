package turf

import "math"

// Stats are the raw counters of one turf.
type Stats struct {
	TurfID            uint
	Name              string
	City              string
	PricePerHour      float64
	TotalSlots        int64
	ConfirmedBookings int64
}

// Revenue charges the full hourly price once per confirmed booking,
// whatever the slot duration.
func Revenue(pricePerHour float64, confirmed int64) float64 {
	return pricePerHour * float64(confirmed)
}

// Utilization is confirmed/slots as a percentage rounded to one decimal,
// and 0 when there are no slots.
func Utilization(confirmed, slots int64) float64 {
	if slots == 0 {
		return 0
	}
	return math.Round(float64(confirmed)/float64(slots)*1000) / 10
}

type TurfSummary struct {
	TurfID            uint    `json:"turf_id"`
	Name              string  `json:"name"`
	City              string  `json:"city"`
	PricePerHour      float64 `json:"price_per_hour"`
	TotalSlots        int64   `json:"total_slots"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	Revenue           float64 `json:"revenue"`
	Utilization       float64 `json:"utilization"`
}

type Dashboard struct {
	Turfs         []TurfSummary `json:"turfs"`
	TotalRevenue  float64       `json:"total_revenue"`
	TotalBookings int64         `json:"total_bookings"`
	TotalSlots    int64         `json:"total_slots"`
	Utilization   float64       `json:"utilization"`
}

// Summarize aggregates per-turf counters into the owner dashboard.
func Summarize(stats []Stats) Dashboard {
	d := Dashboard{Turfs: make([]TurfSummary, 0, len(stats))}

	for _, s := range stats {
		revenue := Revenue(s.PricePerHour, s.ConfirmedBookings)
		d.Turfs = append(d.Turfs, TurfSummary{
			TurfID:            s.TurfID,
			Name:              s.Name,
			City:              s.City,
			PricePerHour:      s.PricePerHour,
			TotalSlots:        s.TotalSlots,
			ConfirmedBookings: s.ConfirmedBookings,
			Revenue:           revenue,
			Utilization:       Utilization(s.ConfirmedBookings, s.TotalSlots),
		})

		d.TotalRevenue += revenue
		d.TotalBookings += s.ConfirmedBookings
		d.TotalSlots += s.TotalSlots
	}

	d.Utilization = Utilization(d.TotalBookings, d.TotalSlots)
	return d
}
