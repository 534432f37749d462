package core

import "context"

// VendorReader resolves the authenticated user's vendor profile without
// pulling the full vendor package into catalog and menu handlers.
type VendorReader interface {
	// VendorIDForUser returns the vendor id owned by the given user,
	// or an error if the user has no vendor profile.
	VendorIDForUser(ctx context.Context, userID string) (int, error)
}
