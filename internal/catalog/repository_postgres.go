package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *FoodItem) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			vendor_id,
			name,
			category,
			price,
			is_vegetarian,
			is_spicy,
			is_available_today
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`,
		item.VendorID,
		item.Name,
		item.Category,
		item.Price,
		item.IsVegetarian,
		item.IsSpicy,
		item.IsAvailableToday,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateName
	}
	return err
}

func (r *PostgresRepository) ListByVendor(
	ctx context.Context,
	vendorID int,
	availableOnly *bool,
) ([]*FoodItem, error) {

	query := `
		SELECT id, vendor_id, name, category, price,
		       is_vegetarian, is_spicy, is_available_today,
		       created_at, updated_at
		FROM menu_items
		WHERE vendor_id = $1
	`
	args := []interface{}{vendorID}

	if availableOnly != nil {
		query += ` AND is_available_today = $2`
		args = append(args, *availableOnly)
	}

	query += ` ORDER BY category, name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*FoodItem{}
	for rows.Next() {
		item := &FoodItem{}
		if err := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.IsVegetarian,
			&item.IsSpicy,
			&item.IsAvailableToday,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.CategoryDisplay = item.Category.Display()
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) SetAvailability(
	ctx context.Context,
	itemID int,
	vendorID int,
	available bool,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET is_available_today = $1,
		    updated_at = now()
		WHERE id = $2
		  AND vendor_id = $3
	`, available, itemID, vendorID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) FindByIDs(
	ctx context.Context,
	vendorID int,
	ids []int,
) (map[int]*FoodItem, error) {

	if len(ids) == 0 {
		return map[int]*FoodItem{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, vendor_id, name, category, price,
		       is_vegetarian, is_spicy, is_available_today,
		       created_at, updated_at
		FROM menu_items
		WHERE vendor_id = $1
		  AND id = ANY($2)
	`, vendorID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int]*FoodItem)
	for rows.Next() {
		item := &FoodItem{}
		if err := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.IsVegetarian,
			&item.IsSpicy,
			&item.IsAvailableToday,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.CategoryDisplay = item.Category.Display()
		items[item.ID] = item
	}

	return items, rows.Err()
}
