package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artifec12/event-tracker/internal/auth"
	"github.com/artifec12/event-tracker/internal/config"
	"github.com/artifec12/event-tracker/internal/queue"
	"github.com/artifec12/event-tracker/internal/repository"
	"github.com/artifec12/event-tracker/internal/service"
	"github.com/artifec12/event-tracker/internal/utils"
)

// shareTokenAttempts bounds the regenerate-and-retry loop around the
// share_token uniqueness constraint. With 16 bytes of entropy a single
// collision is already vanishingly unlikely; exhausting the budget means
// something other than luck is wrong.
const shareTokenAttempts = 5

// EventHandler bundles dependencies for the event endpoints.
type EventHandler struct {
	Cfg    config.Config
	Events EventStore
}

func NewEventHandler(cfg config.Config, events EventStore) *EventHandler {
	return &EventHandler{Cfg: cfg, Events: events}
}

// ----- DTOs -----

type createEventReq struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

type updateEventReq struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
}

type bulkShareReq struct {
	EventIDs []uint64 `json:"event_ids"`
}

type shareLinkPart struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	ShareURL string `json:"share_url"`
}

// CreateEvent handles POST /v1/events. The route requires the admin role.
// The share token is minted here and committed atomically with the owner in
// one insert; a storage-level uniqueness rejection regenerates the token and
// retries rather than pre-checking, so there is no race window.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	// The route already mounts RequireRole, but the create rule belongs to
	// the guard: keep the decision here too so it holds wherever the
	// handler is mounted.
	if !auth.CanCreate(getRole(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)
	if req.Title == "" || req.Date.IsZero() || req.Location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, date and location are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev := repository.Event{
		Title:       req.Title,
		Date:        req.Date.UTC(),
		Location:    req.Location,
		Description: req.Description,
		OwnerID:     actorID,
	}
	for attempt := 0; ; attempt++ {
		ev.ShareToken, err = utils.NewShareToken()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
		}
		err = h.Events.Create(ctx, &ev)
		if err == nil {
			break
		}
		if err == repository.ErrShareTokenExists && attempt < shareTokenAttempts-1 {
			continue
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}

	_ = service.PublishActivity(ctx, queue.ActivityEvent{
		Action: queue.ActionCreated, EventID: ev.ID, Title: ev.Title,
		ActorID: actorID, At: time.Now().UTC(),
	})
	return c.JSON(http.StatusCreated, echo.Map{"event": ev})
}

// ListEvents handles GET /v1/events?filter=upcoming|past&sort=asc|desc.
// The query is scoped to the caller's own events inside the repository, so
// no per-row authorization check happens here.
func (h *EventHandler) ListEvents(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	filter := c.QueryParam("filter")
	sort := c.QueryParam("sort")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListByOwner(ctx, actorID, filter, sort)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events})
}

// UpdateEvent handles PUT/PATCH /v1/events/:id with partial field updates.
// Existence is checked before ownership: a non-owner probing a missing id
// sees the same 404 as anyone else, and 403 only confirms events that do
// exist.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if auth.Authorize(actorID, getRole(c), ev.OwnerID, auth.ActionUpdate) != auth.Allow {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed to update this event"})
	}

	if req.Title != nil {
		ev.Title = strings.TrimSpace(*req.Title)
	}
	if req.Date != nil {
		ev.Date = req.Date.UTC()
	}
	if req.Location != nil {
		ev.Location = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if err := h.Events.Update(ctx, &ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	_ = service.PublishActivity(ctx, queue.ActivityEvent{
		Action: queue.ActionUpdated, EventID: ev.ID, Title: ev.Title,
		ActorID: actorID, At: time.Now().UTC(),
	})
	return c.JSON(http.StatusOK, echo.Map{"event": ev})
}

// DeleteEvent handles DELETE /v1/events/:id. Same 404-before-403 ordering as
// UpdateEvent. Deleting the row is also what retires its share token.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if auth.Authorize(actorID, getRole(c), ev.OwnerID, auth.ActionDelete) != auth.Allow {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed to delete this event"})
	}

	if err := h.Events.Delete(ctx, id); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}

	_ = service.PublishActivity(ctx, queue.ActivityEvent{
		Action: queue.ActionDeleted, EventID: id, Title: ev.Title,
		ActorID: actorID, At: time.Now().UTC(),
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "event deleted"})
}

// BulkShare handles POST /v1/events/bulk-share. Admin-only: it surfaces the
// share tokens already assigned to the given ids as absolute URLs. It never
// mints tokens. An id set resolving to nothing is reported as not found
// rather than a hard error.
func (h *EventHandler) BulkShare(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bulkShareReq
	if err := c.Bind(&req); err != nil || len(req.EventIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_ids array required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	links, err := h.Events.ListShareLinks(ctx, req.EventIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if len(links) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no events found for given ids"})
	}

	base := strings.TrimRight(h.Cfg.AppURL, "/")
	out := make([]shareLinkPart, 0, len(links))
	for _, l := range links {
		out = append(out, shareLinkPart{
			ID:       l.ID,
			Title:    l.Title,
			ShareURL: base + "/events/share/" + l.ShareToken,
		})
	}

	_ = service.PublishActivity(ctx, queue.ActivityEvent{
		Action: queue.ActionBulkShare, ActorID: actorID, At: time.Now().UTC(),
	})
	return c.JSON(http.StatusOK, echo.Map{"share_links": out})
}
