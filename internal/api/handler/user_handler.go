package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// UserHandler serves the household roster.
type UserHandler struct {
	calendar ports.CalendarService
}

func NewUserHandler(calendar ports.CalendarService) *UserHandler {
	return &UserHandler{calendar: calendar}
}

// List returns every member with display information.
//
// @Summary      List household members
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.calendar.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserViewResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// ToggleRole flips a member between admin and user.
//
// @Summary      Toggle a member's role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/users/{id}/role [patch]
func (h *UserHandler) ToggleRole(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.calendar.ToggleRole(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
