package listing

import (
	"context"
	"time"

	"tiffinwala/internal/menu"
)

type Service struct {
	reader Reader
	loc    *time.Location
}

// NewService takes the timezone the marketplace operates in; "today" is a
// local calendar date, not a UTC one, so menus roll over at local midnight.
// A nil loc falls back to UTC.
func NewService(reader Reader, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{reader: reader, loc: loc}
}

// today truncates to the calendar date so a menu published for today still
// lists during the day.
func (s *Service) today() time.Time {
	now := time.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

func (s *Service) ListActiveMenus(ctx context.Context, from time.Time) ([]*MenuView, error) {
	if from.IsZero() {
		from = s.today()
	}

	entries, err := s.reader.ListActiveMenus(ctx, from)
	if err != nil {
		return nil, err
	}

	views := make([]*MenuView, 0, len(entries))
	for _, e := range entries {
		views = append(views, &MenuView{Payload: e.Menu.Payload(), Vendor: e.Vendor})
	}
	return views, nil
}

// VendorMenuPage is one verified kitchen with its upcoming orderable menus.
type VendorMenuPage struct {
	Vendor *VendorSummary  `json:"vendor"`
	Menus  []*menu.Payload `json:"menus"`
}

func (s *Service) VendorMenus(ctx context.Context, vendorID int, from time.Time) (*VendorMenuPage, error) {
	if from.IsZero() {
		from = s.today()
	}

	v, menus, err := s.reader.VendorMenus(ctx, vendorID, from)
	if err != nil {
		return nil, err
	}

	page := &VendorMenuPage{Vendor: v, Menus: make([]*menu.Payload, 0, len(menus))}
	for _, m := range menus {
		page.Menus = append(page.Menus, m.Payload())
	}
	return page, nil
}
