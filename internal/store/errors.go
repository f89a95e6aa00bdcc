package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateEmail is returned by [UserRepository.Add] when a record
	// with the same email already exists. The store is left unchanged.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound is returned when no record matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrCorruptState is returned in strict mode when the persisted users
	// collection cannot be decoded.
	ErrCorruptState = errors.New("persisted users are corrupt")

	// ErrConflict is returned when another writer replaced the users
	// collection between this writer's read and its write.
	ErrConflict = errors.New("users were modified concurrently")

	// ErrNoSession is returned when no session user is stored.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidFields is returned by [UserRepository.Update] when a field
	// value does not fit the record's shape.
	ErrInvalidFields = errors.New("invalid user fields")
)
