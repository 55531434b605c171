package reservation

import (
	"context"

	"github.com/agenasports/pitch-scheduler/internal/audit"
	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
)

type DeleteOccurrenceInput struct {
	ID string

	// DisplayDate and Virtual identify a projected occurrence; for a
	// physical record DisplayDate equals the record's own date.
	DisplayDate string
	Virtual     bool

	Actor string
}

// DeleteOccurrence removes a physical reservation outright. A virtual
// subscription occurrence is not deletable: its display date is appended
// to the parent's exception list and the parent persists.
type DeleteOccurrence struct {
	repo     domain.Repository
	audit    Auditor
	notifier Notifier
}

func NewDeleteOccurrence(
	repo domain.Repository,
	audit Auditor,
	notifier Notifier,
) *DeleteOccurrence {
	return &DeleteOccurrence{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *DeleteOccurrence) Execute(
	ctx context.Context,
	in DeleteOccurrenceInput,
) error {

	res, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		return err
	}

	if in.Virtual && res.IsSubscription() {
		if err := uc.repo.AppendException(ctx, res.ID, in.DisplayDate); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			Actor:    in.Actor,
			Action:   "occurrence_cancelled",
			Entity:   "reservation",
			EntityID: res.ID,
			Detail:   res.PitchName + " — " + in.DisplayDate + " — " + res.StartTime + "-" + res.EndTime,
		})

		uc.notifier.Notify(ctx)
		return nil
	}

	if err := uc.repo.DeleteReservation(ctx, res.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: res.ID,
		Detail:   res.PitchName + " — " + res.Date + " — " + res.StartTime + "-" + res.EndTime,
	})

	uc.notifier.Notify(ctx)
	return nil
}
