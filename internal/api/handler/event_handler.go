package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// EventHandler handles calendar item commands and queries.
type EventHandler struct {
	calendar ports.CalendarService
	loc      *time.Location
}

// NewEventHandler creates an EventHandler. loc resolves timestamps in the date
// query parameter to a household calendar date.
func NewEventHandler(calendar ports.CalendarService, loc *time.Location) *EventHandler {
	return &EventHandler{calendar: calendar, loc: loc}
}

// List handles GET /v1/events, optionally filtered by type and date.
//
// @Summary      List calendar items
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        type  query     string  false  "ALL, EVENT, GOAL or UPDATE"
// @Param        date  query     string  false  "Only items on this date (YYYY-MM-DD)"
// @Success      200   {object}  eventListResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	filter, err := domain.ParseTypeFilter(c.QueryParam("type"))
	if err != nil {
		return err
	}

	in := ports.ListEventsInput{ActorID: actorID, Filter: filter}
	resp := eventListResponse{Filter: string(filter)}
	if raw := c.QueryParam("date"); raw != "" {
		date, err := domain.ParseDate(raw, h.loc)
		if err != nil {
			return err
		}
		in.Date = &date
		resp.Date = date.String()
	}

	views, err := h.calendar.ListEvents(c.Request().Context(), in)
	if err != nil {
		return err
	}
	resp.Events = toEventResponses(views)
	resp.Count = len(resp.Events)
	return c.JSON(http.StatusOK, resp)
}

// Add handles POST /v1/events.
//
// @Summary      Add a calendar item
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      addEventRequest  true   "Calendar item"
// @Success      201              {object}  eventResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /v1/events [post]
func (h *EventHandler) Add(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req addEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	date, err := domain.ParseDate(req.Date, h.loc)
	if err != nil {
		return err
	}

	view, err := h.calendar.AddEvent(c.Request().Context(), ports.AddEventInput{
		ActorID:        actorID,
		Date:           date,
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEventResponse(*view))
}

// Delete handles DELETE /v1/events/:id. Only admins and the creator may delete;
// deleting an id that does not exist succeeds.
//
// @Summary      Delete a calendar item
// @Tags         events
// @Security     BearerAuth
// @Param        id   path  string  true  "Event id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.calendar.DeleteEvent(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
