package pricing

import "fmt"

// PriceUnit distinguishes the two area-pricing conventions used by vendor
// catalogs. Glass and backing prices arrive in either unit depending on the
// vendor; the tag makes the unit explicit instead of a bare number.
type PriceUnit string

const (
	PerSquareInch PriceUnit = "per_square_inch"
	PerSquareFoot PriceUnit = "per_square_foot"
)

// UnitPrice is a wholesale price tagged with its area unit.
type UnitPrice struct {
	Amount float64
	Unit   PriceUnit
}

// perSquareInch normalizes the price to dollars per square inch.
func (p UnitPrice) perSquareInch() (float64, error) {
	if p.Amount < 0 {
		return 0, &InvalidPriceError{Field: "unitPrice", Value: p.Amount}
	}
	switch p.Unit {
	case PerSquareInch:
		return p.Amount, nil
	case PerSquareFoot:
		return p.Amount / 144.0, nil
	default:
		return 0, &ConfigurationError{Reason: fmt.Sprintf("unknown price unit %q", p.Unit)}
	}
}
