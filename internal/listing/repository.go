package listing

import (
	"context"
	"errors"
	"time"

	"tiffinwala/internal/menu"
)

// ErrVendorNotFound also covers unverified and deactivated kitchens, so a
// consumer cannot probe which of the three it is.
var ErrVendorNotFound = errors.New("vendor not found")

// MenuEntry is one menu paired with the kitchen that publishes it.
type MenuEntry struct {
	Menu   *menu.Menu
	Vendor VendorSummary
}

// Reader is the consumer-facing read model over menus and vendors.
type Reader interface {
	// ListActiveMenus returns orderable menus of verified, active kitchens
	// with date >= from, ordered by date ascending.
	ListActiveMenus(ctx context.Context, from time.Time) ([]MenuEntry, error)

	// VendorMenus returns the kitchen and its orderable menus with
	// date >= from, same filter as the aggregate listing. Absent,
	// unverified and deactivated kitchens all come back as
	// ErrVendorNotFound.
	VendorMenus(ctx context.Context, vendorID int, from time.Time) (*VendorSummary, []*menu.Menu, error)
}
