package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Event mirrors the 'events' table. OwnerID and ShareToken are set once at
// insert and never change for the row's lifetime; deleting the row is the
// only way its share token stops resolving.
type Event struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	OwnerID     uint64    `json:"owner_id"`
	ShareToken  string    `json:"share_token"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SharedEvent is the trimmed projection exposed on the anonymous share path.
// It deliberately carries no owner, id or token fields.
type SharedEvent struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// ShareLink pairs an event with its share token for the bulk-share listing.
type ShareLink struct {
	ID         uint64
	Title      string
	ShareToken string
}

// List query parameters. Filter narrows by date relative to now; Sort orders
// by date.
const (
	FilterUpcoming = "upcoming"
	FilterPast     = "past"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// Create inserts an event with its owner and share token in a single
// statement, so both are committed atomically with the row. A duplicate
// share token surfaces as ErrShareTokenExists for the caller to retry with a
// fresh token.
func (r *EventRepo) Create(ctx context.Context, e *Event) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO events (title, date, location, description, owner_id, share_token) VALUES (?,?,?,?,?,?)",
		e.Title, e.Date, e.Location, e.Description, e.OwnerID, e.ShareToken)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrShareTokenExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// GetByID fetches a single event or ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (Event, error) {
	var e Event
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,date,location,description,owner_id,share_token,created_at,updated_at FROM events WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.Description, &e.OwnerID, &e.ShareToken, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return Event{}, ErrEventNotFound
	}
	return e, err
}

// GetByShareToken resolves an event solely by token and returns only the
// shareable fields. The query itself selects the projection so internal
// columns never cross this boundary.
func (r *EventRepo) GetByShareToken(ctx context.Context, token string) (SharedEvent, error) {
	var v SharedEvent
	err := r.DB.QueryRowContext(ctx,
		"SELECT title,date,location,description FROM events WHERE share_token=? LIMIT 1",
		token).Scan(&v.Title, &v.Date, &v.Location, &v.Description)
	if err == sql.ErrNoRows {
		return SharedEvent{}, ErrEventNotFound
	}
	return v, err
}

// ListByOwner returns the events owned by ownerID, optionally narrowed to
// upcoming or past dates and sorted by date. The owner predicate is part of
// the query, not a post-hoc check: callers can never receive another
// account's events from this method regardless of filter or sort.
func (r *EventRepo) ListByOwner(ctx context.Context, ownerID uint64, filter, sort string) ([]Event, error) {
	q := "SELECT id,title,date,location,description,owner_id,share_token,created_at,updated_at FROM events WHERE owner_id=?"
	args := []any{ownerID}

	switch filter {
	case FilterUpcoming:
		q += " AND date >= ?"
		args = append(args, time.Now().UTC())
	case FilterPast:
		q += " AND date < ?"
		args = append(args, time.Now().UTC())
	}

	if sort == SortDesc {
		q += " ORDER BY date DESC"
	} else {
		q += " ORDER BY date ASC"
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.Description, &e.OwnerID, &e.ShareToken, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update saves the mutable fields of an event.
func (r *EventRepo) Update(ctx context.Context, e *Event) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE events SET title=?, date=?, location=?, description=? WHERE id=?",
		e.Title, e.Date, e.Location, e.Description, e.ID)
	return err
}

// Delete removes an event. Deleting the row implicitly invalidates its share
// token: subsequent token lookups report not found.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ListShareLinks fetches the share tokens already assigned to the given ids.
// Unknown ids are skipped rather than erroring; the caller decides what an
// empty result means.
func (r *EventRepo) ListShareLinks(ctx context.Context, ids []uint64) ([]ShareLink, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := "SELECT id,title,share_token FROM events WHERE id IN (?" + strings.Repeat(",?", len(ids)-1) + ")"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []ShareLink{}
	for rows.Next() {
		var l ShareLink
		if err := rows.Scan(&l.ID, &l.Title, &l.ShareToken); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
