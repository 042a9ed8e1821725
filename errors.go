package uuidv7

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string is not in the
	// canonical 8-4-4-4-12 hex form
	ErrInvalidFormat = errors.New("uuidv7: invalid UUID format")

	// ErrOutOfRange indicates that a field read would run past the 16th byte
	ErrOutOfRange = errors.New("uuidv7: offset out of range")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidv7: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID is not a version 7 UUID
	ErrInvalidVersion = errors.New("uuidv7: invalid UUID version (expected 7)")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("uuidv7: invalid UUID variant (expected RFC 4122)")
)
