package reservation

import (
	"context"

	"github.com/agenasports/pitch-scheduler/internal/audit"
	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
)

type MarkNoShowInput struct {
	ID          string
	DisplayDate string
	Virtual     bool
	Actor       string
}

// MarkNoShow flags a physical reservation non-destructively. A
// subscription has no per-date record to flag, so the occurrence is
// excepted instead — present-or-excepted is the only representable state.
type MarkNoShow struct {
	repo     domain.Repository
	audit    Auditor
	notifier Notifier
}

func NewMarkNoShow(
	repo domain.Repository,
	audit Auditor,
	notifier Notifier,
) *MarkNoShow {
	return &MarkNoShow{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	in MarkNoShowInput,
) error {

	res, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		return err
	}

	if res.IsSubscription() {
		date := res.Date
		if in.Virtual {
			date = in.DisplayDate
		}

		if err := uc.repo.AppendException(ctx, res.ID, date); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			Actor:    in.Actor,
			Action:   "occurrence_cancelled",
			Entity:   "reservation",
			EntityID: res.ID,
			Detail:   res.PitchName + " — " + date,
		})

		uc.notifier.Notify(ctx)
		return nil
	}

	if err := uc.repo.SetNoShow(ctx, res.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "no_show_marked",
		Entity:   "reservation",
		EntityID: res.ID,
		Detail:   res.PitchName + " — " + res.Date + " — " + res.FirstName + " " + res.LastName,
	})

	uc.notifier.Notify(ctx)
	return nil
}
