package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// SessionHandler handles joining the household and switching the active member.
type SessionHandler struct {
	sessions ports.SessionService
	calendar ports.CalendarService
}

func NewSessionHandler(sessions ports.SessionService, calendar ports.CalendarService) *SessionHandler {
	return &SessionHandler{sessions: sessions, calendar: calendar}
}

// Join adds a new member to the household and signs them in.
//
// @Summary      Join the household
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      joinRequest  true  "New member"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/session/join [post]
func (h *SessionHandler) Join(c echo.Context) error {
	var req joinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sess, err := h.sessions.Join(c.Request().Context(), req.Name, req.Passphrase)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSessionResponse(sess))
}

// Switch makes an existing member the active one.
//
// @Summary      Switch the active member
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      switchRequest  true  "Member to switch to"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/session/switch [post]
func (h *SessionHandler) Switch(c echo.Context) error {
	var req switchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sess, err := h.sessions.Switch(c.Request().Context(), req.UserID, req.Passphrase)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Active returns the household's active member.
//
// @Summary      Get the active member
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/session/active [get]
func (h *SessionHandler) Active(c echo.Context) error {
	user, err := h.calendar.ActiveUser(c.Request().Context())
	if err != nil {
		return err
	}
	resp := toUserResponse(user)
	resp.Active = true
	return c.JSON(http.StatusOK, resp)
}
