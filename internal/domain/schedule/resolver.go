package schedule

import (
	"github.com/agenasports/pitch-scheduler/internal/models"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
)

// ===============================
// Recurrence resolution
// ===============================

// ProjectsOn decides whether subscription b projects a virtual occurrence
// onto date. physical must be the concrete reservations already occupying
// b's pitch on that date: a physical booking overlapping b's time range
// shadows the virtual slot entirely.
func ProjectsOn(b models.Reservation, date string, physical []models.Reservation) bool {
	if !b.IsSubscription() {
		return false
	}
	if !timegrid.SameWeekday(b.Date, date) {
		return false
	}
	// occurrences never project before the series anchor
	if date < b.Date {
		return false
	}
	if b.HasException(date) {
		return false
	}
	for _, p := range physical {
		if timegrid.Overlaps(p.StartTime, p.EndTime, b.StartTime, b.EndTime) {
			return false
		}
	}
	return true
}

// NextOccurrenceDate resolves the nearest date within 14 days of fromISO
// (inclusive) sharing anchorISO's weekday. Used by the skip-week action,
// which is addressed at the series rather than a displayed occurrence.
func NextOccurrenceDate(anchorISO, fromISO string) (string, bool) {
	d := fromISO
	for i := 0; i < 14; i++ {
		if timegrid.SameWeekday(anchorISO, d) {
			return d, true
		}
		d = timegrid.AddDays(d, 1)
	}
	return "", false
}
