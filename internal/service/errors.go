package service

import "errors"

// Errors returned by the services. Store sentinels such as
// store.ErrDuplicateEmail pass through wrapped.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email/password")

	ErrNotSessionUser = errors.New("user is not the session user")
	ErrTaskNotFound   = errors.New("task is not in today's list")

	ErrParse = errors.New("import is not a list of user records")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
