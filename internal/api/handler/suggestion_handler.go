package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// SuggestionHandler returns activity ideas to pre-fill the add form.
type SuggestionHandler struct {
	suggestions ports.SuggestionService
}

func NewSuggestionHandler(suggestions ports.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// Suggest handles POST /v1/suggestions. Nothing is stored.
//
// @Summary      Suggest a family activity
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  suggestionResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/suggestions [post]
func (h *SuggestionHandler) Suggest(c echo.Context) error {
	idea, err := h.suggestions.Suggest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suggestionResponse{Title: idea.Title, Description: idea.Description})
}
