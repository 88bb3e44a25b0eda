package snapshot

import "errors"

var (
	ErrInvalidMagic       = errors.New("snapshot: invalid magic")
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	ErrInvalidHeader      = errors.New("snapshot: invalid fixed header")
	ErrInvalidSection     = errors.New("snapshot: invalid section header")
	ErrInvalidPayload     = errors.New("snapshot: invalid payload")
	ErrLimitExceeded      = errors.New("snapshot: limit exceeded")
	ErrValidation         = errors.New("snapshot: validation failed")
	ErrSourceMismatch     = errors.New("snapshot: source hash mismatch")
)
