package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/framecraft/framepos/internal/db"
	"github.com/framecraft/framepos/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	for i := 0; i < 10; i++ {
		stats, err := Run(database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != 5 {
				t.Fatalf("expected 5 inserts in first run, got %d", stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM pricing_config WHERE id = 1`, nil, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM frames WHERE name = ?`, defaultFrameName, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM mats WHERE name = ?`, defaultMatName, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM glazing WHERE name = ?`, defaultGlazingName, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM special_services WHERE name = ?`, defaultServiceName, 1)

	var taxRate float64
	if err := database.QueryRow(`SELECT tax_rate_percent FROM pricing_config WHERE id = 1`).Scan(&taxRate); err != nil {
		t.Fatalf("query seeded tax rate: %v", err)
	}
	if taxRate != 8.25 {
		t.Fatalf("expected seeded tax rate 8.25, got %v", taxRate)
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, arg any, expected int) {
	t.Helper()

	var count int
	var err error
	if arg == nil {
		err = database.QueryRow(query).Scan(&count)
	} else {
		err = database.QueryRow(query, arg).Scan(&count)
	}
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
