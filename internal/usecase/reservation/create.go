package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/agenasports/pitch-scheduler/internal/audit"
	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/httperr"
	"github.com/agenasports/pitch-scheduler/internal/models"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
	"github.com/agenasports/pitch-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	PitchID   string
	PitchName string

	Date      string
	StartTime string
	EndTime   string
	MatchType string

	FirstName string
	LastName  string
	Phone     string
	Note      string

	CreatedBy string
	Source    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	audit    Auditor
	notifier Notifier
}

func NewCreateReservation(
	repo domain.Repository,
	audit Auditor,
	notifier Notifier,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	phone := validators.NormalizePhone(in.Phone)
	if in.FirstName == "" || phone == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if _, err := timegrid.ParseISO(in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if timegrid.ToMinutes(in.StartTime) >= timegrid.ToMinutes(in.EndTime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	switch in.MatchType {
	case models.MatchTypeSingle, models.MatchTypeSubscription,
		models.MatchTypeDaytime, models.MatchTypeCourse:
	default:
		return nil, httperr.ErrBusiness("invalid_match_type")
	}

	blocked, err := uc.repo.IsBlacklisted(ctx, phone)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, httperr.ErrBusiness("phone_blacklisted")
	}

	// advisory pre-check against the current effective timeline; the
	// authoritative check runs inside CreateChecked's transaction
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	view := domain.BuildDayView(all, in.PitchID, in.Date)
	if domain.WouldConflict(view.Timeline, in.StartTime, in.EndTime) {
		return nil, domain.ErrConflict
	}

	res := &models.Reservation{
		ID:        uuid.NewString(),
		PitchID:   in.PitchID,
		PitchName: in.PitchName,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		MatchType: in.MatchType,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     phone,
		Note:      in.Note,
		CreatedBy: in.CreatedBy,
		Source:    in.Source,
	}
	if res.IsSubscription() {
		res.RecurrenceExceptions = []string{}
	}

	if err := uc.repo.CreateChecked(ctx, res); err != nil {
		return nil, err
	}

	if err := uc.repo.UpsertCustomer(ctx, phone, in.FirstName, in.LastName, in.Note); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.CreatedBy,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: res.ID,
		Detail:   res.PitchName + " — " + res.Date + " — " + res.StartTime + "-" + res.EndTime,
	})

	uc.notifier.Notify(ctx)

	return res, nil
}
