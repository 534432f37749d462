package listing

import (
	"context"
	"errors"
	"time"

	"tiffinwala/internal/menu"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresReader struct {
	db *pgxpool.Pool
}

func NewPostgresReader(db *pgxpool.Pool) *PostgresReader {
	return &PostgresReader{db: db}
}

const menuColumns = `
	m.id, m.vendor_id, m.name, m.date, m.full_dabba_price, m.max_dabbas,
	m.dabbas_sold, m.is_veg_only, m.todays_special, m.cooking_style,
	m.is_active, m.created_at, m.updated_at
`

// --------------------------------------------------
// CONSUMER LISTING
// --------------------------------------------------
func (r *PostgresReader) ListActiveMenus(
	ctx context.Context,
	from time.Time,
) ([]MenuEntry, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+menuColumns+`,
			v.id, v.kitchen_name, v.address, v.phone_number
		FROM menus m
		JOIN vendors v ON v.id = m.vendor_id
		WHERE m.date >= $1
		  AND m.is_active = TRUE
		  AND m.dabbas_sold < m.max_dabbas
		  AND v.is_verified = TRUE
		  AND v.is_active = TRUE
		ORDER BY m.date ASC, v.kitchen_name, m.name
	`, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []MenuEntry{}
	menus := []*menu.Menu{}
	for rows.Next() {
		m := &menu.Menu{}
		var v VendorSummary
		if err := rows.Scan(
			&m.ID, &m.VendorID, &m.Name, &m.Date, &m.FullDabbaPrice,
			&m.MaxDabbas, &m.DabbasSold, &m.IsVegOnly, &m.TodaysSpecial,
			&m.CookingStyle, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
			&v.ID, &v.KitchenName, &v.Address, &v.PhoneNumber,
		); err != nil {
			return nil, err
		}
		entries = append(entries, MenuEntry{Menu: m, Vendor: v})
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := menu.LoadSelections(ctx, r.db, menus); err != nil {
		return nil, err
	}

	return entries, nil
}

// --------------------------------------------------
// VENDOR PAGE
// --------------------------------------------------
func (r *PostgresReader) VendorMenus(
	ctx context.Context,
	vendorID int,
	from time.Time,
) (*VendorSummary, []*menu.Menu, error) {

	v := &VendorSummary{}
	err := r.db.QueryRow(ctx, `
		SELECT id, kitchen_name, address, phone_number
		FROM vendors
		WHERE id = $1
		  AND is_verified = TRUE
		  AND is_active = TRUE
	`, vendorID).Scan(&v.ID, &v.KitchenName, &v.Address, &v.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrVendorNotFound
		}
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+menuColumns+`
		FROM menus m
		WHERE m.vendor_id = $1
		  AND m.date >= $2
		  AND m.is_active = TRUE
		  AND m.dabbas_sold < m.max_dabbas
		ORDER BY m.date ASC, m.name
	`, vendorID, from)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	menus := []*menu.Menu{}
	for rows.Next() {
		m := &menu.Menu{}
		if err := rows.Scan(
			&m.ID, &m.VendorID, &m.Name, &m.Date, &m.FullDabbaPrice,
			&m.MaxDabbas, &m.DabbasSold, &m.IsVegOnly, &m.TodaysSpecial,
			&m.CookingStyle, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, nil, err
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	if err := menu.LoadSelections(ctx, r.db, menus); err != nil {
		return nil, nil, err
	}

	return v, menus, nil
}
