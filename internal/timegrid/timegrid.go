package timegrid

import (
	"fmt"
	"time"
)

// Pontos fixos da grade: 17 horários cheios, 08:00 até 24:00.
var TimePoints = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
	"17:00", "18:00", "19:00", "20:00", "21:00", "22:00", "23:00", "24:00",
}

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// SlotPairs derives the 16 one-hour pairs from the fixed grid.
func SlotPairs() []Slot {
	pairs := make([]Slot, 0, len(TimePoints)-1)
	for i := 0; i < len(TimePoints)-1; i++ {
		pairs = append(pairs, Slot{
			Start: TimePoints[i],
			End:   TimePoints[i+1],
			Label: TimePoints[i] + " - " + TimePoints[i+1],
		})
	}
	return pairs
}

// ToMinutes converts "HH:MM" to minutes since midnight. "24:00" maps to 1440.
func ToMinutes(t string) int {
	var hh, mm int
	fmt.Sscanf(t, "%d:%d", &hh, &mm)
	return hh*60 + mm
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Adjacent ranges (end == start) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	a1, a2 := ToMinutes(aStart), ToMinutes(aEnd)
	b1, b2 := ToMinutes(bStart), ToMinutes(bEnd)
	return a1 < b2 && b1 < a2
}

const isoLayout = "2006-01-02"

func ParseISO(iso string) (time.Time, error) {
	return time.Parse(isoLayout, iso)
}

func FormatISO(t time.Time) string {
	return t.Format(isoLayout)
}

func Today() string {
	return time.Now().Format(isoLayout)
}

// AddDays shifts an ISO date by n calendar days. Invalid input comes back
// unchanged so callers comparing dates fail closed instead of panicking.
func AddDays(iso string, n int) string {
	d, err := ParseISO(iso)
	if err != nil {
		return iso
	}
	return FormatISO(d.AddDate(0, 0, n))
}

// WeekdayIndex returns Monday=0 .. Sunday=6 for an ISO date, remapped
// explicitly from Go's Sunday=0 numbering. Returns -1 on a malformed date.
func WeekdayIndex(iso string) int {
	d, err := ParseISO(iso)
	if err != nil {
		return -1
	}
	return (int(d.Weekday()) + 6) % 7
}

func SameWeekday(aISO, bISO string) bool {
	a, b := WeekdayIndex(aISO), WeekdayIndex(bISO)
	return a >= 0 && a == b
}

// DaysInMonth returns the number of days in year/month (1-12).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
