package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agenasports/pitch-scheduler/internal/httperr"
	"github.com/agenasports/pitch-scheduler/internal/httpresp"
	"github.com/agenasports/pitch-scheduler/internal/timegrid"
	ucReservation "github.com/agenasports/pitch-scheduler/internal/usecase/reservation"
)

type DayViewHandler struct {
	dayViewUC *ucReservation.GetDayView
	monthUC   *ucReservation.MonthCounts
}

func NewDayViewHandler(
	dayViewUC *ucReservation.GetDayView,
	monthUC *ucReservation.MonthCounts,
) *DayViewHandler {
	return &DayViewHandler{
		dayViewUC: dayViewUC,
		monthUC:   monthUC,
	}
}

// Day returns the effective timeline plus the free/busy partition for one
// pitch and date. Public: the booking page reads it without a session.
func (h *DayViewHandler) Day(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timegrid.Today()
	}

	view, err := h.dayViewUC.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, view)
}

func (h *DayViewHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	counts, err := h.monthUC.Execute(c.Request.Context(), c.Param("id"), year, time.Month(monthNum))
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"counts": counts})
}
