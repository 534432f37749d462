package catalog

import (
	"context"
	"sort"
	"testing"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	items  map[int]*FoodItem
	nextID int

	createErr error // injected storage failure
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		items:  make(map[int]*FoodItem),
		nextID: 1,
	}
}

func (m *MockRepository) Create(ctx context.Context, item *FoodItem) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.items {
		if existing.VendorID == item.VendorID && existing.Name == item.Name {
			return ErrDuplicateName
		}
	}
	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = item
	return nil
}

func (m *MockRepository) ListByVendor(
	ctx context.Context,
	vendorID int,
	availableOnly *bool,
) ([]*FoodItem, error) {

	items := []*FoodItem{}
	for _, item := range m.items {
		if item.VendorID != vendorID {
			continue
		}
		if availableOnly != nil && item.IsAvailableToday != *availableOnly {
			continue
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

func (m *MockRepository) SetAvailability(
	ctx context.Context,
	itemID int,
	vendorID int,
	available bool,
) error {
	item, ok := m.items[itemID]
	if !ok || item.VendorID != vendorID {
		return ErrNotFound
	}
	item.IsAvailableToday = available
	return nil
}

func (m *MockRepository) FindByIDs(
	ctx context.Context,
	vendorID int,
	ids []int,
) (map[int]*FoodItem, error) {
	found := make(map[int]*FoodItem)
	for _, id := range ids {
		if item, ok := m.items[id]; ok && item.VendorID == vendorID {
			found[id] = item
		}
	}
	return found, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func boolPtr(b bool) *bool { return &b }

func TestCreateItem_Success(t *testing.T) {
	service := NewService(NewMockRepository())

	item, err := service.CreateItem(context.Background(), 1, CreateItemInput{
		Name:     "Dal Makhani",
		Category: CategoryDal,
		Price:    80,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if item.ID == 0 {
		t.Errorf("expected ID to be set")
	}
	if !item.IsVegetarian {
		t.Errorf("expected vegetarian default true")
	}
	if !item.IsAvailableToday {
		t.Errorf("expected available default true")
	}
}

func TestCreateItem_NonVegCategoryForcesFlag(t *testing.T) {
	service := NewService(NewMockRepository())

	// Caller claims vegetarian; the category wins.
	item, err := service.CreateItem(context.Background(), 1, CreateItemInput{
		Name:         "Chicken Curry",
		Category:     CategoryNonVeg,
		Price:        120,
		IsVegetarian: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.IsVegetarian {
		t.Fatal("expected is_vegetarian to be forced false for non_veg category")
	}
}

func TestCreateItem_InvalidCategory(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.CreateItem(context.Background(), 1, CreateItemInput{
		Name:     "Mystery Dish",
		Category: "starter",
		Price:    50,
	})
	if err == nil {
		t.Fatal("expected error for invalid category")
	}
}

func TestCreateItem_NegativePrice(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.CreateItem(context.Background(), 1, CreateItemInput{
		Name:     "Free Lunch",
		Category: CategorySabzi,
		Price:    -10,
	})
	if err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestCreateItem_DuplicateName(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.CreateItem(context.Background(), 1, CreateItemInput{
		Name:     "Jeera Rice",
		Category: CategoryRiceItem,
		Price:    60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.CreateItem(context.Background(), 1, CreateItemInput{
		Name:     "Jeera Rice",
		Category: CategoryRiceItem,
		Price:    65,
	})
	if err != ErrDuplicateName {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// Same name under a different vendor is fine.
	_, err = service.CreateItem(context.Background(), 2, CreateItemInput{
		Name:     "Jeera Rice",
		Category: CategoryRiceItem,
		Price:    55,
	})
	if err != nil {
		t.Fatalf("unexpected error for other vendor: %v", err)
	}
}

func TestListItems_AvailabilityFilter(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo)
	ctx := context.Background()

	service.CreateItem(ctx, 1, CreateItemInput{Name: "Dal Tadka", Category: CategoryDal, Price: 70})
	item, _ := service.CreateItem(ctx, 1, CreateItemInput{Name: "Aloo Gobi", Category: CategorySabzi, Price: 80})

	if err := service.SetAvailability(ctx, item.ID, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	available, err := service.ListItems(ctx, 1, boolPtr(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].Name != "Dal Tadka" {
		t.Fatalf("expected only Dal Tadka available, got %d items", len(available))
	}

	all, err := service.ListItems(ctx, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 items, got %d", len(all))
	}
}

func TestSetAvailability_WrongVendor(t *testing.T) {
	service := NewService(NewMockRepository())
	ctx := context.Background()

	item, err := service.CreateItem(ctx, 1, CreateItemInput{
		Name:     "Paneer Butter Masala",
		Category: CategorySabzi,
		Price:    120,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.SetAvailability(ctx, item.ID, 2, false); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign vendor, got %v", err)
	}
}
