// Package repository contains data access logic separated from HTTP
// handlers. Sentinel errors let handlers map storage outcomes to HTTP
// statuses without string inspection leaking upward.
package repository

import "errors"

// ErrEmailExists is returned when registration hits the unique index on
// users.email. Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrEventNotFound is returned when an event cannot be found, whether looked
// up by id or by share token. Handlers translate this into HTTP 404.
var ErrEventNotFound = errors.New("event not found")

// ErrShareTokenExists is returned when an insert collides with the unique
// index on events.share_token. This is a retryable condition: the caller
// generates a fresh token and inserts again.
var ErrShareTokenExists = errors.New("share token already exists")
