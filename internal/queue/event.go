// Package queue contains the activity message schema and the background
// consumer that appends activity records to logs/activity.log.
package queue

import "time"

// ActivityQueueName is the durable queue carrying event activity messages.
const ActivityQueueName = "event.activity"

// Actions recorded on the activity feed.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionBulkShare = "bulk_share"
)

// ActivityEvent describes one mutation of an event, published after the
// write commits. ActorID is the authenticated user who performed the action.
type ActivityEvent struct {
	Action  string    `json:"action"`
	EventID uint64    `json:"event_id,omitempty"`
	Title   string    `json:"title,omitempty"`
	ActorID uint64    `json:"actor_id"`
	At      time.Time `json:"at"`
}
