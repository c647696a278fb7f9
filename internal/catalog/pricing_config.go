package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/framecraft/framepos/internal/pricing"
)

// PricingConfig is the singleton row of shop-wide pricing parameters. The tax
// rate lives here and nowhere else; the engine receives it per call.
type PricingConfig struct {
	TaxRatePercent float64
	BackingPrice   pricing.UnitPrice
	Currency       string
}

// EnsurePricingConfig inserts the singleton with shop defaults if missing.
func (s *Store) EnsurePricingConfig() error {
	_, err := s.db.Exec(`
		INSERT INTO pricing_config (id, tax_rate_percent, backing_price_amount, backing_price_unit, currency)
		VALUES (1, 8.25, 0.01, ?, 'USD')
		ON CONFLICT(id) DO NOTHING
	`, string(pricing.PerSquareInch))
	if err != nil {
		return fmt.Errorf("insert default pricing_config: %w", err)
	}
	return nil
}

func (s *Store) GetPricingConfig() (PricingConfig, error) {
	var cfg PricingConfig
	var unit string
	err := s.db.QueryRow(`
		SELECT tax_rate_percent, backing_price_amount, backing_price_unit, currency
		FROM pricing_config
		WHERE id = 1
	`).Scan(&cfg.TaxRatePercent, &cfg.BackingPrice.Amount, &unit, &cfg.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return PricingConfig{}, fmt.Errorf("pricing_config singleton not found")
	}
	if err != nil {
		return PricingConfig{}, fmt.Errorf("query pricing_config: %w", err)
	}
	cfg.BackingPrice.Unit = pricing.PriceUnit(unit)
	return cfg, nil
}

func (s *Store) UpdatePricingConfig(cfg PricingConfig) error {
	_, err := s.db.Exec(`
		UPDATE pricing_config
		SET
			tax_rate_percent = ?,
			backing_price_amount = ?,
			backing_price_unit = ?,
			currency = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`, cfg.TaxRatePercent, cfg.BackingPrice.Amount, string(cfg.BackingPrice.Unit), cfg.Currency)
	if err != nil {
		return fmt.Errorf("update pricing_config: %w", err)
	}
	return nil
}
