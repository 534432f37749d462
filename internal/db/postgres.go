package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CONSUMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// VENDORS
	// -------------------------------
	vendorTableSQL := `
		CREATE TABLE IF NOT EXISTS vendors (
			id SERIAL PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id),
			kitchen_name VARCHAR(200) NOT NULL,
			address TEXT NOT NULL,
			phone_number VARCHAR(15) NOT NULL,
			license_number VARCHAR(100) UNIQUE NOT NULL,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, vendorTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS (vendor's master list of dishes)
	// -------------------------------
	menuItemTableSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			vendor_id INT NOT NULL REFERENCES vendors(id),
			name VARCHAR(200) NOT NULL,
			category VARCHAR(20) NOT NULL,
			price NUMERIC(8,2) NOT NULL CHECK (price >= 0),
			is_vegetarian BOOLEAN NOT NULL DEFAULT TRUE,
			is_spicy BOOLEAN NOT NULL DEFAULT FALSE,
			is_available_today BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (vendor_id, name)
		)
	`
	if _, err := db.Exec(ctx, menuItemTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// DAILY MENUS
	// -------------------------------
	menuTableSQL := `
		CREATE TABLE IF NOT EXISTS menus (
			id SERIAL PRIMARY KEY,
			vendor_id INT NOT NULL REFERENCES vendors(id),
			name VARCHAR(200) NOT NULL,
			date DATE NOT NULL,
			full_dabba_price NUMERIC(10,2) NOT NULL CHECK (full_dabba_price >= 0),
			max_dabbas INT NOT NULL DEFAULT 30 CHECK (max_dabbas > 0),
			dabbas_sold INT NOT NULL DEFAULT 0 CHECK (dabbas_sold >= 0),
			is_veg_only BOOLEAN NOT NULL DEFAULT TRUE,
			todays_special TEXT NOT NULL DEFAULT '',
			cooking_style VARCHAR(100) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (vendor_id, date, name),
			CHECK (dabbas_sold <= max_dabbas)
		)
	`
	if _, err := db.Exec(ctx, menuTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU SELECTIONS (bucketed item references)
	// -------------------------------
	selectionTableSQL := `
		CREATE TABLE IF NOT EXISTS menu_selections (
			menu_id INT NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			item_id INT NOT NULL REFERENCES menu_items(id),
			bucket VARCHAR(10) NOT NULL,
			PRIMARY KEY (menu_id, item_id, bucket)
		)
	`
	if _, err := db.Exec(ctx, selectionTableSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
