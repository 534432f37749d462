package listing

import (
	"context"
	"testing"
	"time"

	"tiffinwala/internal/catalog"
	"tiffinwala/internal/menu"
)

type MockReader struct {
	entries  []MenuEntry
	vendors  map[int]*VendorSummary
	menus    map[int][]*menu.Menu
	lastFrom time.Time
}

func (m *MockReader) ListActiveMenus(ctx context.Context, from time.Time) ([]MenuEntry, error) {
	m.lastFrom = from
	return m.entries, nil
}

func (m *MockReader) VendorMenus(
	ctx context.Context,
	vendorID int,
	from time.Time,
) (*VendorSummary, []*menu.Menu, error) {
	m.lastFrom = from
	v, ok := m.vendors[vendorID]
	if !ok {
		return nil, nil, ErrVendorNotFound
	}
	return v, m.menus[vendorID], nil
}

func sampleMenu(id, vendorID int) *menu.Menu {
	return &menu.Menu{
		ID:             id,
		VendorID:       vendorID,
		Name:           "Monday Special",
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		FullDabbaPrice: 150,
		MaxDabbas:      30,
		DabbasSold:     12,
		IsActive:       true,
		MainItems: []*catalog.FoodItem{
			{ID: 1, VendorID: vendorID, Name: "Dal", Category: catalog.CategoryDal, Price: 40, IsVegetarian: true},
		},
	}
}

func TestListActiveMenus_DefaultsFromToToday(t *testing.T) {
	reader := &MockReader{}
	service := NewService(reader, nil)

	if _, err := service.ListActiveMenus(context.Background(), time.Time{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reader.lastFrom.IsZero() {
		t.Fatal("expected zero from to default to today")
	}
	if reader.lastFrom.Hour() != 0 || reader.lastFrom.Minute() != 0 {
		t.Errorf("expected from truncated to midnight, got %v", reader.lastFrom)
	}
}

func TestListActiveMenus_DefaultsInMarketTimezone(t *testing.T) {
	reader := &MockReader{}
	loc := time.FixedZone("IST", 5*3600+1800)
	service := NewService(reader, loc)

	if _, err := service.ListActiveMenus(context.Background(), time.Time{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reader.lastFrom.Location() != loc {
		t.Errorf("expected from in market timezone, got %v", reader.lastFrom.Location())
	}
	if reader.lastFrom.Hour() != 0 || reader.lastFrom.Minute() != 0 {
		t.Errorf("expected local midnight, got %v", reader.lastFrom)
	}

	wantDay := time.Now().In(loc).Day()
	if reader.lastFrom.Day() != wantDay {
		t.Errorf("expected local day %d, got %d", wantDay, reader.lastFrom.Day())
	}
}

func TestListActiveMenus_BuildsViews(t *testing.T) {
	reader := &MockReader{
		entries: []MenuEntry{
			{
				Menu:   sampleMenu(1, 7),
				Vendor: VendorSummary{ID: 7, KitchenName: "Sharma Rasoi"},
			},
		},
	}
	service := NewService(reader, nil)

	views, err := service.ListActiveMenus(context.Background(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	view := views[0]
	if view.Vendor.KitchenName != "Sharma Rasoi" {
		t.Errorf("expected vendor attached, got %q", view.Vendor.KitchenName)
	}
	if view.DabbasRemaining != 18 {
		t.Errorf("expected 18 dabbas remaining, got %d", view.DabbasRemaining)
	}
	if !view.IsAvailable {
		t.Error("expected orderable menu to be available")
	}
	if view.AggregatePrice != 40 {
		t.Errorf("expected aggregate price 40, got %v", view.AggregatePrice)
	}
}

func TestVendorMenus_UnknownVendor(t *testing.T) {
	reader := &MockReader{vendors: map[int]*VendorSummary{}}
	service := NewService(reader, nil)

	_, err := service.VendorMenus(context.Background(), 42, time.Time{})
	if err != ErrVendorNotFound {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestVendorMenus_BuildsPage(t *testing.T) {
	reader := &MockReader{
		vendors: map[int]*VendorSummary{7: {ID: 7, KitchenName: "Sharma Rasoi"}},
		menus:   map[int][]*menu.Menu{7: {sampleMenu(1, 7)}},
	}
	service := NewService(reader, nil)

	page, err := service.VendorMenus(context.Background(), 7, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Vendor.ID != 7 {
		t.Errorf("expected vendor 7, got %d", page.Vendor.ID)
	}
	if len(page.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(page.Menus))
	}
	if page.Menus[0].DabbasRemaining != 18 {
		t.Errorf("expected 18 remaining, got %d", page.Menus[0].DabbasRemaining)
	}
	if !page.Menus[0].IsAvailable {
		t.Error("expected orderable menu to be available")
	}
}
