package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open connects to the SQLite database at path, applies pragmas, creates
// the schema and seeds reference data. The pool is capped at a single
// physical connection; the store serializes every statement on top of it.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := conn.Exec(pragma); execErr != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if err := initSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := insertSampleData(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

func initSchema(conn *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS tables (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			table_number TEXT UNIQUE NOT NULL,
			table_name TEXT,
			seat_count INTEGER DEFAULT 4,
			table_type TEXT DEFAULT 'normal',
			status TEXT DEFAULT 'available',
			location TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS dishes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dish_code TEXT UNIQUE NOT NULL,
			dish_name TEXT NOT NULL,
			price REAL NOT NULL,
			original_price REAL,
			description TEXT,
			ingredients TEXT,
			taste_tags TEXT,
			image_url TEXT DEFAULT '',
			is_recommended BOOLEAN DEFAULT 0,
			is_signature BOOLEAN DEFAULT 0,
			is_available BOOLEAN DEFAULT 1,
			sales_count INTEGER DEFAULT 0,
			rating REAL DEFAULT 0.0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS ai_recommendations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT UNIQUE NOT NULL,
			table_id INTEGER,
			user_id TEXT,
			image_base64 TEXT,
			vision_result TEXT,
			recommendation_result TEXT,
			season TEXT,
			meal_time TEXT,
			people_count INTEGER,
			feedback_score INTEGER,
			feedback_comment TEXT,
			processing_time INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (table_id) REFERENCES tables(id)
		)`,
	}

	for _, ddl := range tables {
		if _, err := conn.Exec(ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// insertSampleData seeds tables and dishes so a fresh database can serve
// lookups immediately. INSERT OR IGNORE keeps reopens idempotent.
func insertSampleData(conn *sql.DB) error {
	seeds := []string{
		`INSERT OR IGNORE INTO tables (table_number, table_name, seat_count, table_type, status, location) VALUES
			('T001', 'Table 1', 4, 'normal', 'available', 'main hall'),
			('T002', 'Table 2', 6, 'vip', 'available', 'private room'),
			('T003', 'Table 3', 2, 'normal', 'occupied', 'window'),
			('T004', 'Table 4', 8, 'family', 'available', 'main hall'),
			('T005', 'Table 5', 4, 'normal', 'available', 'main hall')`,

		`INSERT OR IGNORE INTO dishes (dish_code, dish_name, price, original_price, description, ingredients, taste_tags, is_recommended, is_signature) VALUES
			('D001', 'Kung Pao Chicken', 28.0, 32.0, 'Classic Sichuan stir-fry, numbing and spicy', 'chicken, peanuts, dried chili', 'spicy,numbing', 1, 1),
			('D002', 'Braised Pork Belly', 35.0, 38.0, 'Traditional home-style braise, rich but not greasy', 'pork belly, rock sugar, soy sauce', 'sweet-savory,tender', 1, 0),
			('D003', 'Steamed Sea Bass', 48.0, 52.0, 'Fresh sea bass, light and delicate', 'sea bass, scallion, ginger', 'light,fresh', 1, 1),
			('D004', 'Mapo Tofu', 18.0, 22.0, 'Sichuan classic, silky and fiery', 'tofu, minced pork, bean paste', 'spicy,silky', 0, 0),
			('D005', 'Sweet and Sour Pork', 32.0, 36.0, 'Tangy and sweet, crispy outside', 'pork loin, tomato sauce, sugar', 'sweet-sour,crispy', 1, 0)`,
	}

	for _, seed := range seeds {
		if _, err := conn.Exec(seed); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}
	return nil
}
