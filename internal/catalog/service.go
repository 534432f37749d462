package catalog

import (
	"context"

	"tiffinwala/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateItemInput struct {
	Name             string
	Category         Category
	Price            float64
	IsVegetarian     *bool
	IsSpicy          *bool
	IsAvailableToday *bool
}

// --------------------------------------------------
// Create item
// --------------------------------------------------
func (s *Service) CreateItem(
	ctx context.Context,
	vendorID int,
	input CreateItemInput,
) (*FoodItem, error) {

	if input.Name == "" {
		return nil, core.Invalid("name is required")
	}
	if !input.Category.Valid() {
		return nil, core.Invalid("invalid category")
	}
	if input.Price < 0 {
		return nil, core.Invalid("price must not be negative")
	}

	item := &FoodItem{
		VendorID:         vendorID,
		Name:             input.Name,
		Category:         input.Category,
		Price:            input.Price,
		IsVegetarian:     true,
		IsSpicy:          false,
		IsAvailableToday: true,
	}

	if input.IsVegetarian != nil {
		item.IsVegetarian = *input.IsVegetarian
	}
	if input.IsSpicy != nil {
		item.IsSpicy = *input.IsSpicy
	}
	if input.IsAvailableToday != nil {
		item.IsAvailableToday = *input.IsAvailableToday
	}

	// A non-veg category always wins over the caller-supplied flag, so
	// stored state stays self-consistent.
	if input.Category.ImpliesNonVeg() {
		item.IsVegetarian = false
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	item.CategoryDisplay = item.Category.Display()
	return item, nil
}

// --------------------------------------------------
// List items
// --------------------------------------------------
func (s *Service) ListItems(
	ctx context.Context,
	vendorID int,
	availableOnly *bool,
) ([]*FoodItem, error) {
	return s.repo.ListByVendor(ctx, vendorID, availableOnly)
}

// --------------------------------------------------
// Toggle daily availability
// --------------------------------------------------
func (s *Service) SetAvailability(
	ctx context.Context,
	itemID int,
	vendorID int,
	available bool,
) error {
	return s.repo.SetAvailability(ctx, itemID, vendorID, available)
}
