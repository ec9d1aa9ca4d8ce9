// Package handler implements the HTTP endpoints. Handlers depend on narrow
// store interfaces rather than concrete repositories so tests can exercise
// the full request flow against in-memory fakes.
package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artifec12/event-tracker/internal/repository"
)

// UserStore is the credential store as consumed by the auth endpoints:
// lookup by normalized email and create. *repository.UserRepo satisfies it.
type UserStore interface {
	Create(ctx context.Context, email, password, role string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
}

// EventStore is the event store as consumed by the event endpoints.
// *repository.EventRepo satisfies it.
type EventStore interface {
	Create(ctx context.Context, e *repository.Event) error
	GetByID(ctx context.Context, id uint64) (repository.Event, error)
	GetByShareToken(ctx context.Context, token string) (repository.SharedEvent, error)
	ListByOwner(ctx context.Context, ownerID uint64, filter, sort string) ([]repository.Event, error)
	Update(ctx context.Context, e *repository.Event) error
	Delete(ctx context.Context, id uint64) error
	ListShareLinks(ctx context.Context, ids []uint64) ([]repository.ShareLink, error)
}

// getUserID extracts the authenticated user id placed in context by the
// JWTAuth middleware.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// getRole extracts the authenticated role from context.
func getRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}
