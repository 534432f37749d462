package catalog

import (
	"context"
	"errors"
)

var (
	ErrDuplicateName = errors.New("item with this name already exists")
	ErrNotFound      = errors.New("item not found")
)

// Repository defines all database operations for the item catalog.
type Repository interface {
	Create(ctx context.Context, item *FoodItem) error

	// ListByVendor returns the vendor's items ordered by (category, name).
	// availableOnly, when non-nil, filters on is_available_today.
	ListByVendor(ctx context.Context, vendorID int, availableOnly *bool) ([]*FoodItem, error)

	SetAvailability(ctx context.Context, itemID int, vendorID int, available bool) error

	// FindByIDs returns the vendor's items among the given ids, keyed by id.
	// IDs that do not exist or belong to another vendor are simply absent
	// from the result; the caller decides how to treat them.
	FindByIDs(ctx context.Context, vendorID int, ids []int) (map[int]*FoodItem, error)
}
