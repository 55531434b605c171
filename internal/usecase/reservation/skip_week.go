package reservation

import (
	"context"

	"github.com/agenasports/pitch-scheduler/internal/audit"
	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/httperr"
)

type SkipWeekInput struct {
	MasterID      string
	ReferenceDate string
	Actor         string
}

// SkipWeek excepts the subscription's nearest occurrence on or after the
// reference date. Addressed at the series itself, so it works without a
// displayed virtual occurrence.
type SkipWeek struct {
	repo     domain.Repository
	audit    Auditor
	notifier Notifier
}

func NewSkipWeek(
	repo domain.Repository,
	audit Auditor,
	notifier Notifier,
) *SkipWeek {
	return &SkipWeek{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *SkipWeek) Execute(
	ctx context.Context,
	in SkipWeekInput,
) (string, error) {

	master, err := uc.repo.GetReservation(ctx, in.MasterID)
	if err != nil {
		return "", err
	}
	if !master.IsSubscription() {
		return "", httperr.ErrBusiness("not_a_subscription")
	}

	target, ok := domain.NextOccurrenceDate(master.Date, in.ReferenceDate)
	if !ok {
		return "", httperr.ErrBusiness("invalid_date")
	}

	if err := uc.repo.AppendException(ctx, master.ID, target); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "week_skipped",
		Entity:   "reservation",
		EntityID: master.ID,
		Detail:   master.PitchName + " — " + target + " — " + master.StartTime + "-" + master.EndTime,
	})

	uc.notifier.Notify(ctx)
	return target, nil
}
