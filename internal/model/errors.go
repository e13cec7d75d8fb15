package model

import "errors"

var (
	// ErrNotFound is returned when a requested resource does not exist
	// or its identifier is malformed.
	ErrNotFound = errors.New("resource not found")
	// ErrEmailTaken is returned on a duplicate email at create or update
	// time. The database unique index is the final arbiter.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password
	// on signin. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrForbidden is returned when an authenticated caller fails a
	// policy check.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidRole is returned when a role string is outside the
	// USER/ADMIN set.
	ErrInvalidRole = errors.New("role must be USER or ADMIN")
	// ErrEmptyUpdate is returned when an update request carries no fields.
	ErrEmptyUpdate = errors.New("at least one field must be provided")
)
