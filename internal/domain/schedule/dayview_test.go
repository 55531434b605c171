package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenasports/pitch-scheduler/internal/models"
)

func reservation(id, pitch, date, start, end, matchType string) models.Reservation {
	return models.Reservation{
		ID:        id,
		PitchID:   pitch,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		MatchType: matchType,
	}
}

func TestBuildDayViewMergesAndSorts(t *testing.T) {
	all := []models.Reservation{
		reservation("b2", "p1", "2024-01-10", "20:00", "21:00", models.MatchTypeSingle),
		reservation("b1", "p1", "2024-01-10", "09:00", "10:00", models.MatchTypeSingle),
		reservation("sub", "p1", "2024-01-03", "18:00", "19:00", models.MatchTypeSubscription),
		reservation("other-pitch", "p2", "2024-01-10", "09:00", "10:00", models.MatchTypeSingle),
		reservation("other-date", "p1", "2024-01-11", "09:00", "10:00", models.MatchTypeSingle),
	}

	view := BuildDayView(all, "p1", "2024-01-10")

	require.Len(t, view.Timeline, 3)
	assert.Equal(t, "b1", view.Timeline[0].ID)
	assert.Equal(t, "sub", view.Timeline[1].ID)
	assert.True(t, view.Timeline[1].Virtual)
	assert.Equal(t, "2024-01-10", view.Timeline[1].DisplayDate)
	assert.Equal(t, "b2", view.Timeline[2].ID)
}

func TestBuildDayViewFreeBusyPartition(t *testing.T) {
	all := []models.Reservation{
		reservation("b1", "p1", "2024-01-10", "10:00", "12:00", models.MatchTypeSingle),
	}

	view := BuildDayView(all, "p1", "2024-01-10")

	// 16 pairs total, two taken by the 10:00-12:00 booking
	assert.Len(t, view.Free, 14)
	require.Len(t, view.Busy, 2)
	assert.Equal(t, "10:00", view.Busy[0].Start)
	assert.Equal(t, "11:00", view.Busy[1].Start)
	require.Len(t, view.Busy[0].Matches, 1)
	assert.Equal(t, "b1", view.Busy[0].Matches[0].ID)

	for _, s := range view.Free {
		assert.NotEqual(t, "10:00", s.Start)
		assert.NotEqual(t, "11:00", s.Start)
	}
}

func TestBuildDayViewShadowedSubscriptionAbsent(t *testing.T) {
	all := []models.Reservation{
		reservation("sub", "p1", "2024-01-03", "18:00", "19:00", models.MatchTypeSubscription),
		reservation("phys", "p1", "2024-01-10", "18:00", "19:00", models.MatchTypeSingle),
	}

	view := BuildDayView(all, "p1", "2024-01-10")

	require.Len(t, view.Timeline, 1)
	assert.Equal(t, "phys", view.Timeline[0].ID)
	assert.False(t, view.Timeline[0].Virtual)
}

// Historical double-bookings written by another writer are displayed, not
// rejected.
func TestBuildDayViewToleratesOverlappingData(t *testing.T) {
	all := []models.Reservation{
		reservation("b1", "p1", "2024-01-10", "10:00", "11:00", models.MatchTypeSingle),
		reservation("b2", "p1", "2024-01-10", "10:30", "11:30", models.MatchTypeSingle),
	}

	view := BuildDayView(all, "p1", "2024-01-10")

	assert.Len(t, view.Timeline, 2)
	require.NotEmpty(t, view.Busy)
	assert.Len(t, view.Busy[0].Matches, 2)
}

func TestSubscriptionLifecycleScenario(t *testing.T) {
	sub := reservation("sub", "p1", "2024-01-03", "18:00", "19:00", models.MatchTypeSubscription)
	all := []models.Reservation{sub}

	// 2024-01-17 is a Wednesday: one virtual occurrence
	view := BuildDayView(all, "p1", "2024-01-17")
	require.Len(t, view.Timeline, 1)
	assert.True(t, view.Timeline[0].Virtual)
	assert.Equal(t, "18:00", view.Timeline[0].StartTime)

	// deleting the occurrence appends the exception
	sub.RecurrenceExceptions = append(sub.RecurrenceExceptions, "2024-01-17")
	all = []models.Reservation{sub}

	view = BuildDayView(all, "p1", "2024-01-17")
	assert.Empty(t, view.Timeline)

	// the following week is untouched
	view = BuildDayView(all, "p1", "2024-01-24")
	assert.Len(t, view.Timeline, 1)
}

func TestWouldConflict(t *testing.T) {
	timeline := BuildDayView([]models.Reservation{
		reservation("b1", "p1", "2024-01-10", "10:30", "11:30", models.MatchTypeSingle),
	}, "p1", "2024-01-10").Timeline

	assert.True(t, WouldConflict(timeline, "10:00", "11:00"))
	assert.False(t, WouldConflict(timeline, "09:00", "10:00"))
	assert.False(t, WouldConflict(timeline, "11:30", "12:30"))
}

func TestWouldConflictSeesVirtualOccurrences(t *testing.T) {
	timeline := BuildDayView([]models.Reservation{
		reservation("sub", "p1", "2024-01-03", "18:00", "19:00", models.MatchTypeSubscription),
	}, "p1", "2024-01-17").Timeline

	assert.True(t, WouldConflict(timeline, "18:00", "19:00"))
	assert.False(t, WouldConflict(timeline, "19:00", "20:00"))
}

func TestMonthCounts(t *testing.T) {
	all := []models.Reservation{
		reservation("b1", "p1", "2024-01-10", "10:00", "11:00", models.MatchTypeSingle),
		reservation("b2", "p1", "2024-01-10", "12:00", "13:00", models.MatchTypeSingle),
		reservation("b3", "p1", "2024-01-11", "10:00", "11:00", models.MatchTypeSingle),
		reservation("b4", "p2", "2024-01-10", "10:00", "11:00", models.MatchTypeSingle),
	}

	counts := MonthCounts(all, "p1")
	assert.Equal(t, 2, counts["2024-01-10"])
	assert.Equal(t, 1, counts["2024-01-11"])
	assert.NotContains(t, counts, "2024-01-12")
}
