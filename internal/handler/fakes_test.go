package handler_test

// In-memory stand-ins for the repository layer. They reproduce the store
// contracts the handlers rely on: sentinel errors, email normalization, the
// share_token uniqueness rejection and owner-scoped list queries.

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/artifec12/event-tracker/internal/repository"
	"github.com/artifec12/event-tracker/internal/utils"
)

type fakeUserStore struct {
	mu      sync.Mutex
	nextID  uint64
	byEmail map[string]repository.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]repository.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, email, password, role string, cost int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := s.byEmail[email]; ok {
		return 0, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.nextID++
	s.byEmail[email] = repository.User{
		ID: s.nextID, Email: email, PasswordHash: hash, Role: role,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	return s.nextID, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (repository.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return repository.User{}, sql.ErrNoRows
	}
	return u, nil
}

type fakeEventStore struct {
	mu     sync.Mutex
	nextID uint64
	events map[uint64]repository.Event

	// collisions makes the next N inserts fail with ErrShareTokenExists to
	// exercise the regenerate-and-retry loop. attempts counts inserts.
	collisions int
	attempts   int
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[uint64]repository.Event{}}
}

// seed inserts an event directly, bypassing the handler path.
func (s *fakeEventStore) seed(e repository.Event) repository.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	e.ID = s.nextID
	s.events[e.ID] = e
	return e
}

func (s *fakeEventStore) Create(_ context.Context, e *repository.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.collisions > 0 {
		s.collisions--
		return repository.ErrShareTokenExists
	}
	for _, existing := range s.events {
		if existing.ShareToken == e.ShareToken {
			return repository.ErrShareTokenExists
		}
	}
	s.nextID++
	e.ID = s.nextID
	s.events[e.ID] = *e
	return nil
}

func (s *fakeEventStore) GetByID(_ context.Context, id uint64) (repository.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return repository.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (s *fakeEventStore) GetByShareToken(_ context.Context, token string) (repository.SharedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ShareToken == token {
			return repository.SharedEvent{
				Title: e.Title, Date: e.Date, Location: e.Location, Description: e.Description,
			}, nil
		}
	}
	return repository.SharedEvent{}, repository.ErrEventNotFound
}

func (s *fakeEventStore) ListByOwner(_ context.Context, ownerID uint64, filter, sortDir string) ([]repository.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	out := []repository.Event{}
	for _, e := range s.events {
		if e.OwnerID != ownerID {
			continue
		}
		switch filter {
		case repository.FilterUpcoming:
			if e.Date.Before(now) {
				continue
			}
		case repository.FilterPast:
			if !e.Date.Before(now) {
				continue
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if sortDir == repository.SortDesc {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (s *fakeEventStore) Update(_ context.Context, e *repository.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.ID]; !ok {
		return repository.ErrEventNotFound
	}
	s.events[e.ID] = *e
	return nil
}

func (s *fakeEventStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *fakeEventStore) ListShareLinks(_ context.Context, ids []uint64) ([]repository.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := []repository.ShareLink{}
	for _, id := range ids {
		if e, ok := s.events[id]; ok {
			links = append(links, repository.ShareLink{ID: e.ID, Title: e.Title, ShareToken: e.ShareToken})
		}
	}
	return links, nil
}
