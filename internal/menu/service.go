package menu

import (
	"context"
	"sort"
	"time"

	"tiffinwala/internal/catalog"
	"tiffinwala/internal/core"
)

// ItemReader is the slice of the catalog the composer needs: resolving a
// vendor's items by id. Satisfied by catalog.Repository.
type ItemReader interface {
	FindByIDs(ctx context.Context, vendorID int, ids []int) (map[int]*catalog.FoodItem, error)
}

type Service struct {
	repo  Repository
	items ItemReader
}

func NewService(repo Repository, items ItemReader) *Service {
	return &Service{repo: repo, items: items}
}

type CreateMenuInput struct {
	Name           string
	Date           time.Time
	FullDabbaPrice float64
	MaxDabbas      int
	Selection      Selection
	TodaysSpecial  string
	CookingStyle   string
}

const defaultMaxDabbas = 30

// --------------------------------------------------
// Create menu
// --------------------------------------------------
func (s *Service) CreateMenu(
	ctx context.Context,
	vendorID int,
	input CreateMenuInput,
) (*Menu, error) {

	if input.Name == "" {
		return nil, core.Invalid("name is required")
	}
	if input.Date.IsZero() {
		return nil, core.Invalid("date is required")
	}
	if input.FullDabbaPrice < 0 {
		return nil, core.Invalid("full_dabba_price must not be negative")
	}
	if input.MaxDabbas == 0 {
		input.MaxDabbas = defaultMaxDabbas
	}
	if input.MaxDabbas < 1 {
		return nil, core.Invalid("max_dabbas must be a positive integer")
	}

	resolved, err := s.resolveSelection(ctx, vendorID, input.Selection)
	if err != nil {
		return nil, err
	}

	m := &Menu{
		VendorID:       vendorID,
		Name:           input.Name,
		Date:           input.Date,
		FullDabbaPrice: input.FullDabbaPrice,
		MaxDabbas:      input.MaxDabbas,
		IsVegOnly:      resolved.vegOnly,
		TodaysSpecial:  input.TodaysSpecial,
		CookingStyle:   input.CookingStyle,
		MainItems:      resolved.mains,
		SideItems:      resolved.sides,
		Extras:         resolved.extras,
	}

	if err := s.repo.Create(ctx, m, resolved.rows); err != nil {
		return nil, err
	}

	return m, nil
}

// --------------------------------------------------
// Update selection
// --------------------------------------------------
func (s *Service) UpdateSelection(
	ctx context.Context,
	menuID int,
	vendorID int,
	sel Selection,
) (*Menu, error) {

	m, err := s.repo.GetByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	// Foreign menus look exactly like missing ones.
	if m.VendorID != vendorID {
		return nil, ErrNotFound
	}

	resolved, err := s.resolveSelection(ctx, vendorID, sel)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceSelection(ctx, menuID, resolved.vegOnly, resolved.rows); err != nil {
		return nil, err
	}

	m.IsVegOnly = resolved.vegOnly
	m.MainItems = resolved.mains
	m.SideItems = resolved.sides
	m.Extras = resolved.extras
	return m, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (s *Service) ListMenus(
	ctx context.Context,
	vendorID int,
	date *time.Time,
) ([]*Menu, error) {
	return s.repo.ListByVendor(ctx, vendorID, date)
}

func (s *Service) SetMenuActive(
	ctx context.Context,
	menuID int,
	vendorID int,
	active bool,
) error {
	return s.repo.SetActive(ctx, menuID, vendorID, active)
}

// --------------------------------------------------
// Capacity (called by the order collaborator)
// --------------------------------------------------
func (s *Service) ReserveSlot(ctx context.Context, menuID int) error {
	return s.repo.ReserveSlot(ctx, menuID)
}

func (s *Service) ReleaseSlot(ctx context.Context, menuID int) error {
	return s.repo.ReleaseSlot(ctx, menuID)
}

// --------------------------------------------------
// Selection resolution
// --------------------------------------------------

type resolvedSelection struct {
	mains   []*catalog.FoodItem
	sides   []*catalog.FoodItem
	extras  []*catalog.FoodItem
	rows    []SelectionRow
	vegOnly bool
}

// resolveSelection validates every referenced item before anything is
// written: the item must exist, belong to the vendor, and carry a category
// its bucket allows. All offending ids are reported together.
func (s *Service) resolveSelection(
	ctx context.Context,
	vendorID int,
	sel Selection,
) (*resolvedSelection, error) {

	buckets := sel.buckets()

	idSet := make(map[int]struct{})
	for _, ids := range buckets {
		for _, id := range ids {
			idSet[id] = struct{}{}
		}
	}

	allIDs := make([]int, 0, len(idSet))
	for id := range idSet {
		allIDs = append(allIDs, id)
	}

	found, err := s.items.FindByIDs(ctx, vendorID, allIDs)
	if err != nil {
		return nil, err
	}

	offending := make(map[int]struct{})
	resolved := &resolvedSelection{vegOnly: true}

	for _, bucket := range []Bucket{BucketMain, BucketSide, BucketExtra} {
		seen := make(map[int]struct{})
		for _, id := range buckets[bucket] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			item, ok := found[id]
			if !ok || !bucket.Allows(item.Category) {
				offending[id] = struct{}{}
				continue
			}

			if !item.IsVegetarian {
				resolved.vegOnly = false
			}

			resolved.rows = append(resolved.rows, SelectionRow{ItemID: id, Bucket: bucket})
			switch bucket {
			case BucketMain:
				resolved.mains = append(resolved.mains, item)
			case BucketSide:
				resolved.sides = append(resolved.sides, item)
			case BucketExtra:
				resolved.extras = append(resolved.extras, item)
			}
		}
	}

	if len(offending) > 0 {
		ids := make([]int, 0, len(offending))
		for id := range offending {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		return nil, &InvalidItemReferenceError{IDs: ids}
	}

	return resolved, nil
}
