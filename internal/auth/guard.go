// Package auth holds the authorization rules applied to event access.
//
// Two mechanisms make up the contract. Single-resource actions (read,
// update, delete) go through Authorize, which compares the actor against the
// resource owner. List queries never reach Authorize: the repository
// pre-filters on owner_id, which is the same ownership decision baked into
// the read path.
package auth

// Action is an operation an actor attempts on an event.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Roles carried in session tokens. Every account holds exactly one,
// assigned at registration and immutable afterwards.
const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Authorize decides whether an actor may perform an action on an event owned
// by ownerID. Rules, in order: admins may do anything to anything, including
// resources owned by others; owners may read, update and delete their own
// resources; everyone else is denied.
//
// Callers must resolve the resource before consulting the guard: a missing
// resource is NotFound, and NotFound takes precedence over Deny so that a
// denial confirms the resource exists only to authenticated callers.
func Authorize(actorID uint64, actorRole string, ownerID uint64, action Action) Decision {
	if actorRole == RoleAdmin {
		return Allow
	}
	if actorID == ownerID {
		switch action {
		case ActionRead, ActionUpdate, ActionDelete:
			return Allow
		}
	}
	return Deny
}

// CanCreate reports whether a role is allowed to create events. Creation is
// not an ownership question, so it is a separate rule: only admins create.
func CanCreate(actorRole string) bool {
	return actorRole == RoleAdmin
}
