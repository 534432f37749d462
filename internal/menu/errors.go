package menu

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateMenu    = errors.New("a menu with this name already exists for this date")
	ErrNotFound         = errors.New("menu not found")
	ErrCapacityExceeded = errors.New("menu is sold out")
)

// InvalidItemReferenceError reports every offending item id at once, so a
// client can fix the whole selection in one round trip.
type InvalidItemReferenceError struct {
	IDs []int
}

func (e *InvalidItemReferenceError) Error() string {
	return fmt.Sprintf("invalid item references: %v", e.IDs)
}
