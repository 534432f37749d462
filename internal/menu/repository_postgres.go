package menu

import (
	"context"
	"errors"
	"time"

	"tiffinwala/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const menuColumns = `
	id, vendor_id, name, date, full_dabba_price, max_dabbas, dabbas_sold,
	is_veg_only, todays_special, cooking_style, is_active, created_at, updated_at
`

// --------------------------------------------------
// CREATE (ATOMIC: MENU + SELECTIONS)
// --------------------------------------------------
func (r *PostgresRepository) Create(
	ctx context.Context,
	m *Menu,
	rows []SelectionRow,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO menus (
			vendor_id, name, date, full_dabba_price, max_dabbas,
			is_veg_only, todays_special, cooking_style
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, dabbas_sold, is_active, created_at, updated_at
	`,
		m.VendorID,
		m.Name,
		m.Date,
		m.FullDabbaPrice,
		m.MaxDabbas,
		m.IsVegOnly,
		m.TodaysSpecial,
		m.CookingStyle,
	).Scan(&m.ID, &m.DabbasSold, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateMenu
		}
		return err
	}

	for _, row := range rows {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menu_selections (menu_id, item_id, bucket)
			VALUES ($1, $2, $3)
		`, m.ID, row.ItemID, row.Bucket); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// READ
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, menuID int) (*Menu, error) {
	m := &Menu{}
	err := r.db.QueryRow(ctx, `
		SELECT `+menuColumns+`
		FROM menus
		WHERE id = $1
	`, menuID).Scan(
		&m.ID, &m.VendorID, &m.Name, &m.Date, &m.FullDabbaPrice,
		&m.MaxDabbas, &m.DabbasSold, &m.IsVegOnly, &m.TodaysSpecial,
		&m.CookingStyle, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := LoadSelections(ctx, r.db, []*Menu{m}); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *PostgresRepository) ListByVendor(
	ctx context.Context,
	vendorID int,
	date *time.Time,
) ([]*Menu, error) {

	query := `
		SELECT ` + menuColumns + `
		FROM menus
		WHERE vendor_id = $1
	`
	args := []interface{}{vendorID}

	if date != nil {
		query += ` AND date = $2`
		args = append(args, *date)
	}

	query += ` ORDER BY date DESC, name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []*Menu{}
	for rows.Next() {
		m := &Menu{}
		if err := rows.Scan(
			&m.ID, &m.VendorID, &m.Name, &m.Date, &m.FullDabbaPrice,
			&m.MaxDabbas, &m.DabbasSold, &m.IsVegOnly, &m.TodaysSpecial,
			&m.CookingStyle, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := LoadSelections(ctx, r.db, menus); err != nil {
		return nil, err
	}

	return menus, nil
}

// LoadSelections fills the bucket slices for every menu in one query. The
// listing read model hydrates the same way, so the join lives here alone.
func LoadSelections(ctx context.Context, db *pgxpool.Pool, menus []*Menu) error {
	if len(menus) == 0 {
		return nil
	}

	byID := make(map[int]*Menu, len(menus))
	ids := make([]int, 0, len(menus))
	for _, m := range menus {
		m.MainItems = []*catalog.FoodItem{}
		m.SideItems = []*catalog.FoodItem{}
		m.Extras = []*catalog.FoodItem{}
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}

	rows, err := db.Query(ctx, `
		SELECT
			s.menu_id,
			s.bucket,
			i.id, i.vendor_id, i.name, i.category, i.price,
			i.is_vegetarian, i.is_spicy, i.is_available_today,
			i.created_at, i.updated_at
		FROM menu_selections s
		JOIN menu_items i ON i.id = s.item_id
		WHERE s.menu_id = ANY($1)
		ORDER BY i.category, i.name
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var menuID int
		var bucket Bucket
		item := &catalog.FoodItem{}
		if err := rows.Scan(
			&menuID,
			&bucket,
			&item.ID, &item.VendorID, &item.Name, &item.Category, &item.Price,
			&item.IsVegetarian, &item.IsSpicy, &item.IsAvailableToday,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return err
		}
		item.CategoryDisplay = item.Category.Display()

		m := byID[menuID]
		switch bucket {
		case BucketMain:
			m.MainItems = append(m.MainItems, item)
		case BucketSide:
			m.SideItems = append(m.SideItems, item)
		case BucketExtra:
			m.Extras = append(m.Extras, item)
		}
	}

	return rows.Err()
}

// --------------------------------------------------
// REPLACE SELECTION (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) ReplaceSelection(
	ctx context.Context,
	menuID int,
	isVegOnly bool,
	rows []SelectionRow,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
		UPDATE menus
		SET is_veg_only = $1,
		    updated_at = now()
		WHERE id = $2
	`, isVegOnly, menuID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM menu_selections WHERE menu_id = $1
	`, menuID); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menu_selections (menu_id, item_id, bucket)
			VALUES ($1, $2, $3)
		`, menuID, row.ItemID, row.Bucket); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// ACTIVE FLAG
// --------------------------------------------------
func (r *PostgresRepository) SetActive(
	ctx context.Context,
	menuID int,
	vendorID int,
	active bool,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE menus
		SET is_active = $1,
		    updated_at = now()
		WHERE id = $2
		  AND vendor_id = $3
	`, active, menuID, vendorID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// CAPACITY COUNTERS
// --------------------------------------------------

// ReserveSlot relies on the database to arbitrate the race: the conditional
// UPDATE either claims a dabba or touches no row. An in-process lock would
// not survive multiple service instances.
func (r *PostgresRepository) ReserveSlot(ctx context.Context, menuID int) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menus
		SET dabbas_sold = dabbas_sold + 1,
		    updated_at = now()
		WHERE id = $1
		  AND dabbas_sold < max_dabbas
	`, menuID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		var exists int
		err := r.db.QueryRow(ctx, `
			SELECT 1 FROM menus WHERE id = $1
		`, menuID).Scan(&exists)
		if err != nil {
			return ErrNotFound
		}
		return ErrCapacityExceeded
	}

	return nil
}

func (r *PostgresRepository) ReleaseSlot(ctx context.Context, menuID int) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menus
		SET dabbas_sold = GREATEST(dabbas_sold - 1, 0),
		    updated_at = now()
		WHERE id = $1
	`, menuID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
