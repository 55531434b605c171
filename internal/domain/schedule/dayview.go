package schedule

import (
	"sort"

	"github.com/agenasports/pitch-scheduler/internal/models"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
)

// ===============================
// Day view
// ===============================

// BusySlot is a grid pair together with the occurrences occupying it.
type BusySlot struct {
	timegrid.Slot
	Matches []Occurrence `json:"matches"`
}

// DayView is the effective timeline of one pitch on one date plus its
// free/busy partition against the fixed grid. It is recomputed from
// scratch on every snapshot and holds no state of its own.
type DayView struct {
	PitchID  string          `json:"pitch_id"`
	Date     string          `json:"date"`
	Timeline []Occurrence    `json:"timeline"`
	Free     []timegrid.Slot `json:"free"`
	Busy     []BusySlot      `json:"busy"`
}

// BuildDayView merges the pitch's physical reservations for date with the
// virtual occurrences its subscriptions project onto that date. The sort
// is stable: ties on start time keep snapshot order. Overlapping entries
// written by another writer are displayed as-is, never rejected here —
// overlap is a write-time invariant.
func BuildDayView(all []models.Reservation, pitchID, date string) DayView {
	var physical []models.Reservation
	for _, b := range all {
		if b.PitchID == pitchID && b.Date == date {
			physical = append(physical, b)
		}
	}

	timeline := make([]Occurrence, 0, len(physical))
	for _, b := range physical {
		timeline = append(timeline, Physical(b))
	}
	for _, b := range all {
		if b.PitchID != pitchID || !b.IsSubscription() {
			continue
		}
		if ProjectsOn(b, date, physical) {
			timeline = append(timeline, Project(b, date))
		}
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].StartTime < timeline[j].StartTime
	})

	view := DayView{
		PitchID:  pitchID,
		Date:     date,
		Timeline: timeline,
	}

	for _, s := range timegrid.SlotPairs() {
		var matches []Occurrence
		for _, oc := range timeline {
			if timegrid.Overlaps(s.Start, s.End, oc.StartTime, oc.EndTime) {
				matches = append(matches, oc)
			}
		}
		if len(matches) == 0 {
			view.Free = append(view.Free, s)
		} else {
			view.Busy = append(view.Busy, BusySlot{Slot: s, Matches: matches})
		}
	}

	return view
}

// WouldConflict reports whether [start, end) overlaps any entry of the
// effective timeline. Evaluating against the timeline — not raw physical
// records — is what keeps new bookings off projected subscription slots.
func WouldConflict(timeline []Occurrence, start, end string) bool {
	for _, oc := range timeline {
		if timegrid.Overlaps(start, end, oc.StartTime, oc.EndTime) {
			return true
		}
	}
	return false
}
