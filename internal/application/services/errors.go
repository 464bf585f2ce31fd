package services

import "errors"

// Per-action errors; none are fatal to the process. Controllers map these to
// status codes and user-facing messages.
var (
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrWeakPassword          = errors.New("password too weak")
	ErrEmailInUse            = errors.New("email already in use")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
	ErrRequiresRecentLogin   = errors.New("recent login required")

	ErrFileNotFound    = errors.New("file not found")
	ErrUploadTransport = errors.New("upload transfer failed")
	// ErrUploadCommit: the object landed but the record write failed; the
	// object is left orphaned, there is no compensating delete.
	ErrUploadCommit = errors.New("saving uploaded file record failed")
)
