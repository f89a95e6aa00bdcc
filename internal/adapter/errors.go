package adapter

import "errors"

var (
	ErrInvalidDestination = errors.New("invalid export destination")

	// Errors returned by HTTPSink when the remote refuses an upload.
	ErrRemoteRejected    = errors.New("remote rejected the export")
	ErrRemoteConflict    = errors.New("remote users changed during import")
	ErrRemoteNoImport    = errors.New("remote has no import endpoint")
	ErrRemoteUnavailable = errors.New("remote storage is unavailable")
	ErrRemoteFailed      = errors.New("remote failed to import the export")
)
