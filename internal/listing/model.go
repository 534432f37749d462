package listing

import "tiffinwala/internal/menu"

// VendorSummary is the slice of the vendor profile consumers see next to a
// menu. Contact details only; verification state is implied by presence.
type VendorSummary struct {
	ID          int    `json:"id"`
	KitchenName string `json:"kitchen_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// MenuView is a menu payload annotated with its kitchen, so the consumer
// listing needs no second lookup.
type MenuView struct {
	*menu.Payload
	Vendor VendorSummary `json:"vendor"`
}
