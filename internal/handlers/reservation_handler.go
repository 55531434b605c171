package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/httperr"
	"github.com/agenasports/pitch-scheduler/internal/httpresp"
	"github.com/agenasports/pitch-scheduler/internal/middleware"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
	ucReservation "github.com/agenasports/pitch-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC   *ucReservation.CreateReservation
	deleteUC   *ucReservation.DeleteOccurrence
	noShowUC   *ucReservation.MarkNoShow
	skipWeekUC *ucReservation.SkipWeek
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	deleteUC *ucReservation.DeleteOccurrence,
	noShowUC *ucReservation.MarkNoShow,
	skipWeekUC *ucReservation.SkipWeek,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:   createUC,
		deleteUC:   deleteUC,
		noShowUC:   noShowUC,
		skipWeekUC: skipWeekUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	PitchID   string `json:"pitch_id" binding:"required"`
	PitchName string `json:"pitch_name"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	MatchType string `json:"match_type" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Note      string `json:"note"`
}

type OccurrenceRequest struct {
	Date    string `json:"date"`
	Virtual bool   `json:"virtual"`
}

type SkipWeekRequest struct {
	ReferenceDate string `json:"reference_date"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrConflict):
		httperr.Conflict(c, "time_conflict", "Este horário está ocupado.")
	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
	default:
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Dados inválidos.")
			return
		}
		httperr.Internal(c, "write_failure", "Erro ao gravar reserva.")
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		PitchID:   req.PitchID,
		PitchName: req.PitchName,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		MatchType: req.MatchType,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Note:      req.Note,
		CreatedBy: username,
		Source:    role,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *ReservationHandler) DeleteOccurrence(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	date := c.Query("date")
	virtual := c.Query("virtual") == "true"
	if virtual && date == "" {
		httperr.BadRequest(c, "missing_date", "Data da ocorrência é obrigatória.")
		return
	}

	err := h.deleteUC.Execute(c.Request.Context(), ucReservation.DeleteOccurrenceInput{
		ID:          c.Param("id"),
		DisplayDate: date,
		Virtual:     virtual,
		Actor:       username,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *ReservationHandler) MarkNoShow(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	var req OccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.noShowUC.Execute(c.Request.Context(), ucReservation.MarkNoShowInput{
		ID:          c.Param("id"),
		DisplayDate: req.Date,
		Virtual:     req.Virtual,
		Actor:       username,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "no_show_marked"})
}

func (h *ReservationHandler) SkipWeek(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	var req SkipWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.ReferenceDate == "" {
		req.ReferenceDate = timegrid.Today()
	}

	target, err := h.skipWeekUC.Execute(c.Request.Context(), ucReservation.SkipWeekInput{
		MasterID:      c.Param("id"),
		ReferenceDate: req.ReferenceDate,
		Actor:         username,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "week_skipped", "date": target})
}
