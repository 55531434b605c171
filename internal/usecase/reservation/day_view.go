package reservation

import (
	"context"

	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/httperr"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
)

type GetDayView struct {
	repo domain.Repository
}

func NewGetDayView(repo domain.Repository) *GetDayView {
	return &GetDayView{repo: repo}
}

func (uc *GetDayView) Execute(
	ctx context.Context,
	pitchID string,
	date string,
) (*domain.DayView, error) {

	if _, err := timegrid.ParseISO(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	view := domain.BuildDayView(all, pitchID, date)
	return &view, nil
}
