package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// CalendarHandler serves the month view and the iCalendar export.
type CalendarHandler struct {
	calendar ports.CalendarService
	loc      *time.Location
}

func NewCalendarHandler(calendar ports.CalendarService, loc *time.Location) *CalendarHandler {
	return &CalendarHandler{calendar: calendar, loc: loc}
}

// Month handles GET /v1/calendar. nav moves the view from date by one month or
// back to today; the response carries the resulting current date.
//
// @Summary      Month view
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Current view date (YYYY-MM-DD), defaults to today"
// @Param        nav   query     string  false  "prev, next or today"
// @Param        type  query     string  false  "ALL, EVENT, GOAL or UPDATE"
// @Success      200   {object}  monthResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/calendar [get]
func (h *CalendarHandler) Month(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	in := ports.MonthViewInput{ActorID: actorID}
	if raw := c.QueryParam("date"); raw != "" {
		if in.Date, err = domain.ParseDate(raw, h.loc); err != nil {
			return err
		}
	}
	if in.Nav, err = domain.ParseNavAction(c.QueryParam("nav")); err != nil {
		return err
	}
	if in.Filter, err = domain.ParseTypeFilter(c.QueryParam("type")); err != nil {
		return err
	}

	view, err := h.calendar.MonthView(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMonthResponse(view))
}

// Export handles GET /v1/calendar/export.ics.
//
// @Summary      Export as iCalendar
// @Tags         calendar
// @Produce      text/calendar
// @Security     BearerAuth
// @Param        type  query  string  false  "ALL, EVENT, GOAL or UPDATE"
// @Success      200   {string}  string
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/calendar/export.ics [get]
func (h *CalendarHandler) Export(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	filter, err := domain.ParseTypeFilter(c.QueryParam("type"))
	if err != nil {
		return err
	}

	doc, contentType, err := h.calendar.Export(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="family-calendar.ics"`)
	return c.Blob(http.StatusOK, contentType, doc)
}
