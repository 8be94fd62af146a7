package domain

import (
	"errors"
	"fmt"
)

// EntityKind names a record type in errors and policy tables.
type EntityKind string

const (
	KindStaff    EntityKind = "staff_user"
	KindClient   EntityKind = "client"
	KindContract EntityKind = "contract"
	KindEvent    EntityKind = "event"
)

// Authentication outcomes. ErrInvalidCredential and ErrExpiredCredential are
// distinct signals from the token codec; both collapse to "not authenticated"
// at the API boundary but stay separate for diagnostics.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrExpiredCredential  = errors.New("expired credential")
	ErrInvalidCredentials = errors.New("invalid credentials") // bad login/password pair
)

// ErrForbidden is the category sentinel for every authorization refusal.
// Match it with errors.Is; inspect the concrete type for the rejecting gate.
var ErrForbidden = errors.New("access forbidden")

// Gate names identify which check rejected a request.
const (
	GateRole      = "role"
	GateOwnership = "ownership"
	GateField     = "field"
)

// ForbiddenError is returned when an authenticated principal is not permitted
// to perform an operation, either by role or by instance ownership.
type ForbiddenError struct {
	Gate     string
	Required []Role
	Actual   Role
	Reason   string
}

func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("forbidden (%s gate): %s", e.Gate, e.Reason)
	}
	return fmt.Sprintf("forbidden (%s gate): role %q not in %v", e.Gate, e.Actual, e.Required)
}

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// FieldNotAllowedError is returned when a patch names a field the acting
// role may not set. The whole patch is rejected, never partially applied.
type FieldNotAllowedError struct {
	Field string
	Role  Role
}

func (e *FieldNotAllowedError) Error() string {
	return fmt.Sprintf("field %q may not be set by role %q", e.Field, e.Role)
}

func (e *FieldNotAllowedError) Is(target error) bool { return target == ErrForbidden }

// NotFoundError is returned when a referenced record does not exist.
type NotFoundError struct {
	Entity EntityKind
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError is returned when an insert or patch would collide with
// another record's unique field. Nothing is applied when it fires.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already in use", e.Field, e.Value)
}

// ValidationError is returned when a cross-entity precondition fails, e.g.
// creating an event against an unsigned contract.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
