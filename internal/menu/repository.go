package menu

import (
	"context"
	"time"
)

// SelectionRow is one (item, bucket) pair as persisted in menu_selections.
type SelectionRow struct {
	ItemID int
	Bucket Bucket
}

// Repository defines all database operations for daily menus.
//
// ReserveSlot must be a single atomic check-and-increment at the storage
// layer: concurrent reservations against the last remaining dabba must
// never both succeed, even across service instances.
type Repository interface {
	// Create persists the menu and its selections atomically; nothing is
	// written if any part fails.
	Create(ctx context.Context, m *Menu, rows []SelectionRow) error

	GetByID(ctx context.Context, menuID int) (*Menu, error)

	// ListByVendor returns the vendor's menus with bucket items populated,
	// newest date first. date, when non-nil, filters to that day.
	ListByVendor(ctx context.Context, vendorID int, date *time.Time) ([]*Menu, error)

	// ReplaceSelection swaps the menu's selections and stores the
	// recomputed veg-only flag in the same transaction.
	ReplaceSelection(ctx context.Context, menuID int, isVegOnly bool, rows []SelectionRow) error

	SetActive(ctx context.Context, menuID int, vendorID int, active bool) error

	// ReserveSlot increments dabbas_sold iff dabbas_sold < max_dabbas,
	// returning ErrCapacityExceeded when the menu is sold out.
	ReserveSlot(ctx context.Context, menuID int) error

	// ReleaseSlot decrements dabbas_sold, floored at zero.
	ReleaseSlot(ctx context.Context, menuID int) error
}
