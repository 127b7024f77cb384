// Package common defines shared sentinel errors and small helpers used across
// the radian client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Record store errors.
	ErrCorruptBlob      = errors.New("stored record collection is corrupt")
	ErrTermsNotAccepted = errors.New("terms and conditions not accepted")

	// Dashboard errors.
	ErrInboxNotEmpty = errors.New("inbox is not empty")
	ErrUnknownGroup  = errors.New("unknown triage group")

	// Wiring errors.
	ErrUnsupportedBackend = errors.New("unsupported backend")
)
