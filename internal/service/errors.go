package service

import "errors"

var (
	// ErrNoPartnerSelected is returned by operations that require a
	// selected partner before any request is attempted.
	ErrNoPartnerSelected = errors.New("no partner selected")

	// ErrNoFileChosen is returned when an upload is started without a
	// file.
	ErrNoFileChosen = errors.New("no file selected for upload")

	// ErrMissingFileID is returned when an audit log is requested for a
	// file without an identity.
	ErrMissingFileID = errors.New("file id is missing")

	// ErrFileNotFound means the referenced file is absent from the
	// current registry snapshot, typically because the reference went
	// stale across a refresh.
	ErrFileNotFound = errors.New("file not found in registry")

	// ErrToggleInFlight rejects a second state toggle for a file whose
	// previous toggle has not yet resolved.
	ErrToggleInFlight = errors.New("state toggle already in flight for this file")

	// ErrSessionClosed is returned when review decisions are submitted
	// for a session that has already ended.
	ErrSessionClosed = errors.New("review session is closed")
)
