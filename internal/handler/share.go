package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artifec12/event-tracker/internal/repository"
)

// GetSharedEvent handles GET /v1/events/share/:token. No credential is
// required or consulted: possession of the token is the whole authorization
// factor. The response carries exactly the shareable projection (title,
// date, location, description) and nothing else — the repository query
// selects only those columns.
func (h *EventHandler) GetSharedEvent(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	view, err := h.Events.GetByShareToken(ctx, token)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, view)
}
