package schedule

import "github.com/agenasports/pitch-scheduler/internal/models"

// MonthCounts maps anchor date -> number of stored reservations for the
// pitch. Virtual occurrences are not counted; the calendar badge reflects
// persisted records only, as the source of each series is a single row.
func MonthCounts(all []models.Reservation, pitchID string) map[string]int {
	counts := make(map[string]int)
	for _, b := range all {
		if b.PitchID != pitchID {
			continue
		}
		counts[b.Date]++
	}
	return counts
}
