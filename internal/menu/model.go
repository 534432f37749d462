package menu

import (
	"time"

	"tiffinwala/internal/catalog"
)

// Menu is one dated dabba menu a vendor publishes. Item selections live in
// three buckets; is_veg_only is derived from the selections at write time
// and dabbas_sold only ever moves through ReserveSlot/ReleaseSlot.
type Menu struct {
	ID             int
	VendorID       int
	Name           string
	Date           time.Time
	FullDabbaPrice float64
	MaxDabbas      int
	DabbasSold     int
	IsVegOnly      bool
	TodaysSpecial  string
	CookingStyle   string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	MainItems []*catalog.FoodItem
	SideItems []*catalog.FoodItem
	Extras    []*catalog.FoodItem
}

// DabbasRemaining never goes negative, whatever the counters say.
func (m *Menu) DabbasRemaining() int {
	remaining := m.MaxDabbas - m.DabbasSold
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsOrderable reports whether consumers can still order from this menu.
func (m *Menu) IsOrderable() bool {
	return m.IsActive && m.DabbasRemaining() > 0
}

func (m *Menu) AllItems() []*catalog.FoodItem {
	items := make([]*catalog.FoodItem, 0, len(m.MainItems)+len(m.SideItems)+len(m.Extras))
	items = append(items, m.MainItems...)
	items = append(items, m.SideItems...)
	items = append(items, m.Extras...)
	return items
}

// Payload is the wire shape for a menu, with the derived fields filled in
// so clients never have to recompute them.
type Payload struct {
	ID              int                 `json:"id"`
	VendorID        int                 `json:"vendor_id"`
	Name            string              `json:"name"`
	Date            string              `json:"date"`
	MainItems       []*catalog.FoodItem `json:"main_items"`
	SideItems       []*catalog.FoodItem `json:"side_items"`
	Extras          []*catalog.FoodItem `json:"extras"`
	IsVegOnly       bool                `json:"is_veg_only"`
	FullDabbaPrice  float64             `json:"full_dabba_price"`
	AggregatePrice  float64             `json:"aggregate_price"`
	MaxDabbas       int                 `json:"max_dabbas"`
	DabbasSold      int                 `json:"dabbas_sold"`
	DabbasRemaining int                 `json:"dabbas_remaining"`
	IsAvailable     bool                `json:"is_available"`
	TodaysSpecial   string              `json:"todays_special"`
	CookingStyle    string              `json:"cooking_style"`
	IsActive        bool                `json:"is_active"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (m *Menu) Payload() *Payload {
	return &Payload{
		ID:              m.ID,
		VendorID:        m.VendorID,
		Name:            m.Name,
		Date:            m.Date.Format("2006-01-02"),
		MainItems:       m.MainItems,
		SideItems:       m.SideItems,
		Extras:          m.Extras,
		IsVegOnly:       m.IsVegOnly,
		FullDabbaPrice:  m.FullDabbaPrice,
		AggregatePrice:  AggregatePrice(m),
		MaxDabbas:       m.MaxDabbas,
		DabbasSold:      m.DabbasSold,
		DabbasRemaining: m.DabbasRemaining(),
		IsAvailable:     m.IsOrderable(),
		TodaysSpecial:   m.TodaysSpecial,
		CookingStyle:    m.CookingStyle,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
	}
}

// AggregatePrice sums the unit prices of every selected item. It is an
// informational figure; the sale price is full_dabba_price, set by the
// vendor independently.
func AggregatePrice(m *Menu) float64 {
	var total float64
	for _, item := range m.AllItems() {
		total += item.Price
	}
	return total
}
