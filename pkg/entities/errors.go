package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSingleton is returned when a document does not hold exactly one
	// resource of a type that must be unique (the site)
	ErrMissingSingleton = errors.New("missing singleton resource")
)

// MissingSingletonError reports how many resources of a singleton type were found
type MissingSingletonError struct {
	Type  string
	Count int
}

func (e *MissingSingletonError) Error() string {
	return fmt.Sprintf("%s: expected exactly one %q, found %d", ErrMissingSingleton, e.Type, e.Count)
}

// Is makes errors.Is(err, ErrMissingSingleton) match
func (e *MissingSingletonError) Is(target error) bool {
	return target == ErrMissingSingleton
}
