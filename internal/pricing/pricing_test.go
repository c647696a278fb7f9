package pricing

import (
	"errors"
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestFramePrice_ChopGoldenValue(t *testing.T) {
	// 16x20 artwork with a 2" mat: the frame wraps 20x24. United inches 88,
	// 7.33 ft of moulding at $1.50/ft is $11.00 wholesale, bracket 2.8x.
	frame := FrameLayer{WholesalePerFoot: 1.50, Method: MethodChop}
	price, err := FramePrice(frame, Dimensions{Width: 20, Height: 24})
	if err != nil {
		t.Fatalf("FramePrice returned error: %v", err)
	}
	nearlyEqual(t, "frame price", price, 30.80)
}

func TestFramePrice_JoinIsExactly30PercentOverChop(t *testing.T) {
	// $11.00 and $14.30 wholesale share the 10-14.99 bracket, so the join
	// premium passes straight through to retail.
	dims := Dimensions{Width: 20, Height: 24}
	chop, err := FramePrice(FrameLayer{WholesalePerFoot: 1.50, Method: MethodChop}, dims)
	if err != nil {
		t.Fatalf("chop price returned error: %v", err)
	}
	join, err := FramePrice(FrameLayer{WholesalePerFoot: 1.50, Method: MethodJoin}, dims)
	if err != nil {
		t.Fatalf("join price returned error: %v", err)
	}
	nearlyEqual(t, "join/chop ratio", join/chop, 1.3)
}

func TestFramePrice_UnknownMethod(t *testing.T) {
	_, err := FramePrice(FrameLayer{WholesalePerFoot: 1.50, Method: "glue"}, Dimensions{Width: 10, Height: 10})
	if err == nil {
		t.Fatalf("expected error for unknown pricing method")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
}

func TestFramePrice_InvalidDimension(t *testing.T) {
	_, err := FramePrice(FrameLayer{WholesalePerFoot: 1.50, Method: MethodChop}, Dimensions{Width: 0, Height: 24})
	if err == nil {
		t.Fatalf("expected error for zero width")
	}
	var dimErr *InvalidDimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected InvalidDimensionError, got %T: %v", err, err)
	}
}

func TestMatPrice_GoldenValue(t *testing.T) {
	// 2" mat around 16x20: border area 480-320=160 sq-in at $0.02 is $3.20
	// wholesale, bracket 3.5x.
	mat := MatLayer{Width: 2, WholesalePerSquareInch: 0.02}
	price, err := MatPrice(mat, Dimensions{Width: 16, Height: 20})
	if err != nil {
		t.Fatalf("MatPrice returned error: %v", err)
	}
	nearlyEqual(t, "mat price", price, 11.20)
}

func TestMatPrice_ZeroWidthIsFreeNotAnError(t *testing.T) {
	price, err := MatPrice(MatLayer{Width: 0, WholesalePerSquareInch: 0.02}, Dimensions{Width: 16, Height: 20})
	if err != nil {
		t.Fatalf("MatPrice returned error: %v", err)
	}
	nearlyEqual(t, "zero-width mat price", price, 0)
}

func TestMatPrice_StrictlyIncreasingInWidth(t *testing.T) {
	dims := Dimensions{Width: 16, Height: 20}
	prev := -1.0
	for _, width := range []float64{0, 0.5, 1, 2, 3, 4, 6} {
		price, err := MatPrice(MatLayer{Width: width, WholesalePerSquareInch: 0.02}, dims)
		if err != nil {
			t.Fatalf("MatPrice(width=%v) returned error: %v", width, err)
		}
		if price <= prev {
			t.Fatalf("MatPrice(width=%v) = %v, not greater than %v", width, price, prev)
		}
		prev = price
	}
}

func TestMatPrice_RevealWidensBorder(t *testing.T) {
	dims := Dimensions{Width: 16, Height: 20}
	plain, err := MatPrice(MatLayer{Width: 2, WholesalePerSquareInch: 0.02}, dims)
	if err != nil {
		t.Fatalf("MatPrice returned error: %v", err)
	}
	withReveal, err := MatPrice(MatLayer{Width: 2, Reveal: 0.25, WholesalePerSquareInch: 0.02}, dims)
	if err != nil {
		t.Fatalf("MatPrice with reveal returned error: %v", err)
	}
	if withReveal <= plain {
		t.Fatalf("reveal should raise mat price: plain=%v withReveal=%v", plain, withReveal)
	}
}

func TestMatPrice_NegativePrice(t *testing.T) {
	_, err := MatPrice(MatLayer{Width: 2, WholesalePerSquareInch: -0.02}, Dimensions{Width: 16, Height: 20})
	if err == nil {
		t.Fatalf("expected error for negative wholesale price")
	}
	var priceErr *InvalidPriceError
	if !errors.As(err, &priceErr) {
		t.Fatalf("expected InvalidPriceError, got %T: %v", err, err)
	}
}

func TestGlassPrice_StandardMarkup(t *testing.T) {
	// 16x20 plus a 2" mat stack: 480 sq-in at $0.03 is $14.40 wholesale, 3x.
	glass := GlassSpec{Price: UnitPrice{Amount: 0.03, Unit: PerSquareInch}}
	price, err := GlassPrice(glass, Dimensions{Width: 16, Height: 20}, 2)
	if err != nil {
		t.Fatalf("GlassPrice returned error: %v", err)
	}
	nearlyEqual(t, "glass price", price, 43.20)
}

func TestGlassPrice_PerSquareFootMatchesPerSquareInch(t *testing.T) {
	dims := Dimensions{Width: 16, Height: 20}
	perInch, err := GlassPrice(GlassSpec{Price: UnitPrice{Amount: 0.03, Unit: PerSquareInch}}, dims, 2)
	if err != nil {
		t.Fatalf("per-square-inch price returned error: %v", err)
	}
	perFoot, err := GlassPrice(GlassSpec{Price: UnitPrice{Amount: 4.32, Unit: PerSquareFoot}}, dims, 2)
	if err != nil {
		t.Fatalf("per-square-foot price returned error: %v", err)
	}
	nearlyEqual(t, "unit-converted glass price", perFoot, perInch)
}

func TestGlassPrice_PremiumEscalation(t *testing.T) {
	// Conservation glazing at $0.50/sq-in crosses the premium threshold:
	// 480 * 0.50 * 3.0 * 1.5.
	glass := GlassSpec{Price: UnitPrice{Amount: 0.50, Unit: PerSquareInch}}
	price, err := GlassPrice(glass, Dimensions{Width: 16, Height: 20}, 2)
	if err != nil {
		t.Fatalf("GlassPrice returned error: %v", err)
	}
	nearlyEqual(t, "premium glass price", price, 1080)
}

func TestGlassPrice_UnknownUnit(t *testing.T) {
	_, err := GlassPrice(GlassSpec{Price: UnitPrice{Amount: 0.03, Unit: "per_meter"}}, Dimensions{Width: 16, Height: 20}, 0)
	if err == nil {
		t.Fatalf("expected error for unknown price unit")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
}

func TestBackingPrice_GoldenValue(t *testing.T) {
	// 480 sq-in at $0.01 stays under the 500 sq-in factor threshold.
	price, err := BackingPrice(Dimensions{Width: 16, Height: 20}, 2, UnitPrice{Amount: 0.01, Unit: PerSquareInch})
	if err != nil {
		t.Fatalf("BackingPrice returned error: %v", err)
	}
	nearlyEqual(t, "backing price", price, 14.40)
}

func TestBackingPrice_MinimumChargeFloor(t *testing.T) {
	// A 4x6 photo computes to $0.72; the shop minimum applies.
	price, err := BackingPrice(Dimensions{Width: 4, Height: 6}, 0, UnitPrice{Amount: 0.01, Unit: PerSquareInch})
	if err != nil {
		t.Fatalf("BackingPrice returned error: %v", err)
	}
	nearlyEqual(t, "backing minimum", price, 10.00)
}

func TestBackingPrice_AreaFactorShrinksMarkup(t *testing.T) {
	cases := []struct {
		name string
		dims Dimensions
		want float64
	}{
		// 600 sq-in: 600 * 0.01 * 0.9 * 3.
		{"over 500", Dimensions{Width: 20, Height: 30}, 16.20},
		// 1200 sq-in: 1200 * 0.01 * 0.85 * 3.
		{"over 1000", Dimensions{Width: 30, Height: 40}, 30.60},
		// 1600 sq-in: 1600 * 0.01 * 0.8 * 3.
		{"over 1500", Dimensions{Width: 40, Height: 40}, 38.40},
	}

	for _, tc := range cases {
		price, err := BackingPrice(tc.dims, 0, UnitPrice{Amount: 0.01, Unit: PerSquareInch})
		if err != nil {
			t.Fatalf("BackingPrice(%s) returned error: %v", tc.name, err)
		}
		nearlyEqual(t, "backing price "+tc.name, price, tc.want)
	}
}

func TestLaborPrice_Tiers(t *testing.T) {
	cases := []struct {
		dims Dimensions
		want float64
	}{
		{Dimensions{Width: 8, Height: 10}, 50},
		{Dimensions{Width: 16, Height: 24}, 50}, // exactly 40 united inches
		{Dimensions{Width: 20, Height: 24}, 60},
		{Dimensions{Width: 30, Height: 30}, 60}, // exactly 60
		{Dimensions{Width: 30, Height: 40}, 70},
		{Dimensions{Width: 40, Height: 50}, 85},
		{Dimensions{Width: 48, Height: 60}, 100},
	}

	for _, tc := range cases {
		got, err := LaborPrice(tc.dims)
		if err != nil {
			t.Fatalf("LaborPrice(%v) returned error: %v", tc.dims, err)
		}
		if got != tc.want {
			t.Fatalf("LaborPrice(%v) = %v, want %v", tc.dims, got, tc.want)
		}
	}
}
