package preview

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when a selector matches no item
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidSelector is returned for selectors that cannot match anything
	ErrInvalidSelector = errors.New("invalid item selector")
)

// ItemNotFoundError describes the selector that matched nothing
type ItemNotFoundError struct {
	Selector Selector
	Count    int
}

func (e *ItemNotFoundError) Error() string {
	if e.Selector.ItemID != "" {
		return fmt.Sprintf("item %q not found", e.Selector.ItemID)
	}
	return fmt.Sprintf("item type %q has %d items, index %d is out of range",
		e.Selector.ItemType, e.Count, e.Selector.Index)
}

// Is reports whether target is ErrItemNotFound
func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
