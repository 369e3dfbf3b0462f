// Package ids issues and validates document identifiers.
package ids

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid id")

// New returns a time-ordered UUIDv7 string.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Parse normalizes a user-supplied id, rejecting anything that is not a UUID.
func Parse(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
