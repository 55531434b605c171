package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenasports/pitch-scheduler/internal/models"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
)

func subscription() models.Reservation {
	return models.Reservation{
		ID:        "sub-1",
		PitchID:   "p1",
		Date:      "2024-01-03", // Wednesday
		StartTime: "18:00",
		EndTime:   "19:00",
		MatchType: models.MatchTypeSubscription,
	}
}

func TestProjectsOnFutureSameWeekday(t *testing.T) {
	b := subscription()

	assert.True(t, ProjectsOn(b, "2024-01-10", nil))
	assert.True(t, ProjectsOn(b, "2024-01-17", nil))
	assert.True(t, ProjectsOn(b, "2024-01-03", nil)) // anchor itself

	// other weekdays never project
	for d := "2024-01-11"; d != "2024-01-17"; d = timegrid.AddDays(d, 1) {
		assert.False(t, ProjectsOn(b, d, nil), "weekday mismatch on %s", d)
	}
}

func TestProjectsOnNeverBackward(t *testing.T) {
	b := subscription()
	assert.False(t, ProjectsOn(b, "2023-12-27", nil)) // earlier Wednesday
}

func TestProjectsOnNotForOtherTypes(t *testing.T) {
	b := subscription()
	b.MatchType = models.MatchTypeSingle
	assert.False(t, ProjectsOn(b, "2024-01-10", nil))
}

func TestExceptionSuppressesExactlyThatDate(t *testing.T) {
	b := subscription()
	b.RecurrenceExceptions = []string{"2024-01-17"}

	assert.False(t, ProjectsOn(b, "2024-01-17", nil))
	assert.True(t, ProjectsOn(b, "2024-01-10", nil))
	assert.True(t, ProjectsOn(b, "2024-01-24", nil))
}

func TestPhysicalShadowsVirtual(t *testing.T) {
	b := subscription()

	occupying := []models.Reservation{{
		ID:        "phys-1",
		PitchID:   "p1",
		Date:      "2024-01-10",
		StartTime: "18:30",
		EndTime:   "19:30",
		MatchType: models.MatchTypeSingle,
	}}
	assert.False(t, ProjectsOn(b, "2024-01-10", occupying))

	// an adjacent physical booking does not shadow
	adjacent := []models.Reservation{{
		StartTime: "19:00",
		EndTime:   "20:00",
	}}
	assert.True(t, ProjectsOn(b, "2024-01-10", adjacent))
}

func TestProject(t *testing.T) {
	b := subscription()
	oc := Project(b, "2024-01-17")

	assert.True(t, oc.Virtual)
	assert.Equal(t, "2024-01-17", oc.DisplayDate)
	assert.Equal(t, "2024-01-03", oc.Date) // anchor untouched
	assert.Equal(t, "sub-1", oc.ID)
}

func TestNextOccurrenceDate(t *testing.T) {
	// anchor Wednesday, reference Friday -> following Wednesday
	target, ok := NextOccurrenceDate("2024-01-03", "2024-01-05")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-10", target)

	// reference already on the right weekday resolves to itself
	target, ok = NextOccurrenceDate("2024-01-03", "2024-01-17")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-17", target)

	// malformed reference never matches
	_, ok = NextOccurrenceDate("2024-01-03", "garbage")
	assert.False(t, ok)
}
