package reservation

import (
	"context"
	"fmt"
	"time"

	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
)

type MonthCounts struct {
	repo domain.Repository
}

func NewMonthCounts(repo domain.Repository) *MonthCounts {
	return &MonthCounts{repo: repo}
}

// Execute returns per-date stored reservation counts for the pitch,
// restricted to the requested month. Feeds the calendar badges.
func (uc *MonthCounts) Execute(
	ctx context.Context,
	pitchID string,
	year int,
	month time.Month,
) (map[string]int, error) {

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := domain.MonthCounts(all, pitchID)
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	out := make(map[string]int, timegrid.DaysInMonth(year, month))
	for date, n := range counts {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			out[date] = n
		}
	}
	return out, nil
}
