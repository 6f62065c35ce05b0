package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced entity does not exist within the
// caller's tenant scope
var ErrNotFound = errors.New("not found")

// ConflictError reports a uniqueness violation scoped to one field
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsConflict unwraps a ConflictError if err carries one
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
