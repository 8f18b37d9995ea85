package service

import "errors"

var (
	// ErrInvalidCredentials means the directory definitively rejected the
	// username/password pair.
	ErrInvalidCredentials = errors.New("service: invalid credentials")

	// ErrInvalidRefresh covers every refresh failure: bad signature, expired,
	// unknown subject, reused after rotation. Callers must not distinguish
	// them externally.
	ErrInvalidRefresh = errors.New("service: invalid refresh token")

	// ErrDirectoryUnavailable means the users directory could not answer.
	// Retriable; never conflated with a credential rejection.
	ErrDirectoryUnavailable = errors.New("service: user directory unavailable")
)
