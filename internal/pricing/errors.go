package pricing

import "fmt"

// InvalidDimensionError reports a width, height, or border measurement that is
// out of range for the calculation it was passed to.
type InvalidDimensionError struct {
	Field string
	Value float64
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %s=%g: must not be negative or zero", e.Field, e.Value)
}

// InvalidPriceError reports a negative wholesale unit price or charge amount.
type InvalidPriceError struct {
	Field string
	Value float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %s=%g: must not be negative", e.Field, e.Value)
}

// UnresolvableMarkupError reports a wholesale cost not covered by the markup
// bracket table. The table covers [0, ∞), so hitting this is a table bug.
type UnresolvableMarkupError struct {
	WholesaleCost float64
}

func (e *UnresolvableMarkupError) Error() string {
	return fmt.Sprintf("no markup bracket covers wholesale cost %g", e.WholesaleCost)
}

// ConfigurationError reports a missing or malformed pricing parameter, such as
// an unknown pricing method or a negative tax rate.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "pricing configuration: " + e.Reason
}
