package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor returns the member id injected by the Auth middleware. An empty id
// means the route was mounted without Auth and is rejected with 401.
func ctxActor(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
