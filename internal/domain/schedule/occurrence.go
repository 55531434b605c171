package schedule

import "github.com/agenasports/pitch-scheduler/internal/models"

// ===============================
// Effective occurrence
// ===============================

// Occurrence is one entry of a day's effective timeline: either a physical
// reservation or a virtual projection of a subscription. Virtual
// occurrences exist only in memory; DisplayDate carries the projected date
// while Reservation.Date stays the series anchor.
type Occurrence struct {
	models.Reservation

	Virtual     bool   `json:"virtual"`
	DisplayDate string `json:"display_date"`
}

func Physical(r models.Reservation) Occurrence {
	return Occurrence{
		Reservation: r,
		Virtual:     false,
		DisplayDate: r.Date,
	}
}

// Project yields the virtual occurrence of a subscription on date. The
// caller is expected to have checked ProjectsOn first.
func Project(r models.Reservation, date string) Occurrence {
	return Occurrence{
		Reservation: r,
		Virtual:     true,
		DisplayDate: date,
	}
}
