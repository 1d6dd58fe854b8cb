package db

import (
	"path/filepath"
	"testing"
)

func TestOpen_CreatesSchemaAndSeeds(t *testing.T) {
	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	var tables int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM tables`).Scan(&tables); err != nil {
		t.Fatalf("tables table missing: %v", err)
	}
	if tables != 5 {
		t.Errorf("expected 5 seeded tables, got %d", tables)
	}

	var dishes int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM dishes`).Scan(&dishes); err != nil {
		t.Fatalf("dishes table missing: %v", err)
	}
	if dishes != 5 {
		t.Errorf("expected 5 seeded dishes, got %d", dishes)
	}

	var sessions int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ai_recommendations`).Scan(&sessions); err != nil {
		t.Fatalf("ai_recommendations table missing: %v", err)
	}
	if sessions != 0 {
		t.Errorf("expected empty session table, got %d rows", sessions)
	}
}

func TestOpen_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	var tables int
	if err := second.QueryRow(`SELECT COUNT(*) FROM tables`).Scan(&tables); err != nil {
		t.Fatal(err)
	}
	if tables != 5 {
		t.Errorf("seeding must not duplicate rows on reopen, got %d", tables)
	}
}

func TestOpen_SingleConnection(t *testing.T) {
	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("store relies on exactly one physical connection, got %d", got)
	}
}
