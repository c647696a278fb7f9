package seed

import (
	"database/sql"
	"fmt"
)

const (
	defaultFrameName   = "Black Gallery 1.25in"
	defaultMatName     = "White Conservation"
	defaultGlazingName = "Regular Glass"
	defaultServiceName = "Fitting"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way: the pricing
// configuration singleton plus one workable entry per catalog table, so a
// fresh install can produce a quote immediately.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensurePricingConfig(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureFrame(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureMat(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureGlazing(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureService(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensurePricingConfig(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM pricing_config WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check pricing config existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO pricing_config (id, tax_rate_percent, backing_price_amount, backing_price_unit, currency)
		VALUES (1, ?, ?, ?, ?)
	`, 8.25, 0.01, "per_square_inch", "USD"); err != nil {
		return fmt.Errorf("insert pricing config singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureFrame(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM frames WHERE name = ? LIMIT 1)`, defaultFrameName).Scan(&exists); err != nil {
		return fmt.Errorf("check default frame existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO frames (name, vendor, sku, wholesale_per_foot, moulding_width, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, defaultFrameName, "", "", 1.50, 1.25, true); err != nil {
		return fmt.Errorf("insert default frame: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureMat(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM mats WHERE name = ? LIMIT 1)`, defaultMatName).Scan(&exists); err != nil {
		return fmt.Errorf("check default mat existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO mats (name, vendor, wholesale_per_square_inch, active)
		VALUES (?, ?, ?, ?)
	`, defaultMatName, "", 0.02, true); err != nil {
		return fmt.Errorf("insert default mat: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureGlazing(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM glazing WHERE name = ? LIMIT 1)`, defaultGlazingName).Scan(&exists); err != nil {
		return fmt.Errorf("check default glazing existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO glazing (name, price_amount, price_unit, active)
		VALUES (?, ?, ?, ?)
	`, defaultGlazingName, 0.03, "per_square_inch", true); err != nil {
		return fmt.Errorf("insert default glazing: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureService(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM special_services WHERE name = ? LIMIT 1)`, defaultServiceName).Scan(&exists); err != nil {
		return fmt.Errorf("check default service existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO special_services (name, price, active)
		VALUES (?, ?, ?)
	`, defaultServiceName, 15.00, true); err != nil {
		return fmt.Errorf("insert default service: %w", err)
	}
	stats.Inserts++
	return nil
}
