package jsonapi

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateResource is returned when two resources share a type and id
	ErrDuplicateResource = errors.New("duplicate resource")

	// ErrInvalidDocument is returned when a document cannot be decoded
	ErrInvalidDocument = errors.New("invalid JSON:API document")
)

// DuplicateResourceError reports the (type, id) pair that appeared twice
type DuplicateResourceError struct {
	Type string
	ID   string
}

func (e *DuplicateResourceError) Error() string {
	return fmt.Sprintf("%s: type %q id %q", ErrDuplicateResource, e.Type, e.ID)
}

// Is makes errors.Is(err, ErrDuplicateResource) match
func (e *DuplicateResourceError) Is(target error) bool {
	return target == ErrDuplicateResource
}
