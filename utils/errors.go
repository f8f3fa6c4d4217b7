package utils

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors for the referential existence checks. Controllers map
// them to 404 responses.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrGameNotFound         = errors.New("game not found")
	ErrGamePlatformNotFound = errors.New("game-platform combination not found")
)

// uniqueViolation is the PostgreSQL error code for a violated unique or
// primary key constraint.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL duplicate-key
// failure. The rating upsert uses it to turn a racing duplicate insert into
// an update, and registration uses it to report a conflict.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
