package pricing

import (
	"errors"
	"reflect"
	"testing"
)

// The reference job used across the aggregation tests: 16x20 artwork, a 2"
// mat at $0.02/sq-in, $1.50/ft chop moulding, standard glass at $0.03/sq-in,
// backing at $0.01/sq-in, 8.25% tax.
func referenceOrder() OrderInput {
	return OrderInput{
		Artwork: Dimensions{Width: 16, Height: 20},
		Frames:  []FrameLayer{{WholesalePerFoot: 1.50, Method: MethodChop}},
		Mats:    []MatLayer{{Width: 2, WholesalePerSquareInch: 0.02}},
		Glass:   &GlassSpec{Price: UnitPrice{Amount: 0.03, Unit: PerSquareInch}},
		Backing: &UnitPrice{Amount: 0.01, Unit: PerSquareInch},
		TaxRate: 0.0825,
	}
}

func TestOrderTotal_GoldenBreakdown(t *testing.T) {
	bd, err := OrderTotal(referenceOrder())
	if err != nil {
		t.Fatalf("OrderTotal returned error: %v", err)
	}

	nearlyEqual(t, "frame total", bd.FrameTotal, 30.80)
	nearlyEqual(t, "mat total", bd.MatTotal, 11.20)
	nearlyEqual(t, "glass total", bd.GlassTotal, 43.20)
	nearlyEqual(t, "backing total", bd.BackingTotal, 14.40)
	nearlyEqual(t, "labor total", bd.LaborTotal, 60)
	nearlyEqual(t, "subtotal", bd.Subtotal, 159.60)
	nearlyEqual(t, "tax", bd.Tax, 13.167)
	nearlyEqual(t, "total", bd.Total, 172.767)

	// Audit detail for the admin wholesale display.
	if len(bd.Wholesale.Frames) != 1 || len(bd.Multipliers.Frames) != 1 {
		t.Fatalf("expected one frame wholesale/multiplier entry: %+v", bd)
	}
	nearlyEqual(t, "frame wholesale", bd.Wholesale.Frames[0], 11.00)
	nearlyEqual(t, "frame multiplier", bd.Multipliers.Frames[0], 2.8)
	nearlyEqual(t, "mat wholesale", bd.Wholesale.Mats[0], 3.20)
	nearlyEqual(t, "mat multiplier", bd.Multipliers.Mats[0], 3.5)
	nearlyEqual(t, "glass multiplier", bd.Multipliers.Glass, 3.0)
}

func TestOrderTotal_TotalEqualsSubtotalPlusTax(t *testing.T) {
	bd, err := OrderTotal(referenceOrder())
	if err != nil {
		t.Fatalf("OrderTotal returned error: %v", err)
	}
	if bd.Total != bd.Subtotal+bd.Tax {
		t.Fatalf("total %v != subtotal %v + tax %v", bd.Total, bd.Subtotal, bd.Tax)
	}
}

func TestOrderTotal_ServicesAddWithoutMarkup(t *testing.T) {
	base := referenceOrder()
	base.TaxRate = 0

	withServices := referenceOrder()
	withServices.TaxRate = 0
	withServices.Services = []SpecialService{
		{Name: "shadowbox fitting", Price: 35},
		{Name: "canvas stretching", Price: 20},
	}

	bdBase, err := OrderTotal(base)
	if err != nil {
		t.Fatalf("OrderTotal(base) returned error: %v", err)
	}
	bdServices, err := OrderTotal(withServices)
	if err != nil {
		t.Fatalf("OrderTotal(services) returned error: %v", err)
	}

	nearlyEqual(t, "services total", bdServices.ServicesTotal, 55)
	nearlyEqual(t, "total delta", bdServices.Total-bdBase.Total, 55)
}

func TestOrderTotal_MiscCharges(t *testing.T) {
	in := referenceOrder()
	in.Services = []SpecialService{{Name: "fitting", Price: 25}}
	in.MiscCharges = []MiscCharge{
		{Kind: ChargeFixed, Amount: 5},
		{Kind: ChargePercentage, Amount: 10},
	}

	bd, err := OrderTotal(in)
	if err != nil {
		t.Fatalf("OrderTotal returned error: %v", err)
	}

	// Percentage base excludes backing and labor: 30.80+11.20+43.20+25.
	nearlyEqual(t, "misc total", bd.MiscTotal, 5+11.02)
}

func TestOrderTotal_DiscountAppliedBeforeTax(t *testing.T) {
	in := referenceOrder()
	in.Discount = &Discount{Kind: ChargePercentage, Amount: 10}

	bd, err := OrderTotal(in)
	if err != nil {
		t.Fatalf("OrderTotal returned error: %v", err)
	}

	nearlyEqual(t, "discount amount", bd.DiscountAmount, 15.96)
	nearlyEqual(t, "discounted subtotal", bd.Subtotal, 143.64)
	nearlyEqual(t, "tax on discounted subtotal", bd.Tax, 143.64*0.0825)
}

func TestOrderTotal_OversizedDiscountClampsToZero(t *testing.T) {
	in := referenceOrder()
	in.Discount = &Discount{Kind: ChargeFixed, Amount: 10000}

	bd, err := OrderTotal(in)
	if err != nil {
		t.Fatalf("OrderTotal returned error: %v", err)
	}
	nearlyEqual(t, "clamped subtotal", bd.Subtotal, 0)
	nearlyEqual(t, "clamped total", bd.Total, 0)
}

func TestOrderTotal_DoubleMatAccumulation(t *testing.T) {
	in := OrderInput{
		Artwork: Dimensions{Width: 16, Height: 20},
		Mats: []MatLayer{
			{Width: 2, Reveal: 0.25, WholesalePerSquareInch: 0.02},
			{Width: 1, WholesalePerSquareInch: 0.03},
		},
		TaxRate: 0,
	}

	bd, err := OrderTotal(in)
	if err != nil {
		t.Fatalf("OrderTotal returned error: %v", err)
	}

	// Inner layer: 20.5x24.5 minus 16x20 is 182.25 sq-in, $3.645, 3.5x.
	// Outer layer: 22.5x26.5 minus 20.5x24.5 is 94 sq-in, $2.82, 3.5x.
	nearlyEqual(t, "inner mat wholesale", bd.Wholesale.Mats[0], 3.645)
	nearlyEqual(t, "outer mat wholesale", bd.Wholesale.Mats[1], 2.82)
	nearlyEqual(t, "mat total", bd.MatTotal, 3.645*3.5+2.82*3.5)

	// Finished piece is 22.5x26.5: 49 united inches lands in the $60 tier.
	nearlyEqual(t, "labor total", bd.LaborTotal, 60)
}

func TestOrderTotal_StackedFramesGrowOutward(t *testing.T) {
	in := OrderInput{
		Artwork: Dimensions{Width: 16, Height: 20},
		Frames: []FrameLayer{
			{WholesalePerFoot: 1.50, Method: MethodChop, MouldingWidth: 1},
			{WholesalePerFoot: 2.00, Method: MethodChop},
		},
		TaxRate: 0,
	}

	bd, err := OrderTotal(in)
	if err != nil {
		t.Fatalf("OrderTotal returned error: %v", err)
	}

	// Inner: 6 ft at $1.50 is $9.00 wholesale, 3.0x. Outer wraps 18x22:
	// 6.67 ft at $2.00 is $13.33 wholesale, 2.8x.
	nearlyEqual(t, "inner frame wholesale", bd.Wholesale.Frames[0], 9.00)
	nearlyEqual(t, "outer frame wholesale", bd.Wholesale.Frames[1], 80.0/12*2)
	nearlyEqual(t, "frame total", bd.FrameTotal, 9.00*3.0+80.0/12*2*2.8)
}

func TestOrderTotal_Idempotent(t *testing.T) {
	first, err := OrderTotal(referenceOrder())
	if err != nil {
		t.Fatalf("first OrderTotal returned error: %v", err)
	}
	second, err := OrderTotal(referenceOrder())
	if err != nil {
		t.Fatalf("second OrderTotal returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different breakdowns:\n%+v\n%+v", first, second)
	}
}

func TestOrderTotal_NegativeTaxRate(t *testing.T) {
	in := referenceOrder()
	in.TaxRate = -0.01

	_, err := OrderTotal(in)
	if err == nil {
		t.Fatalf("expected error for negative tax rate")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
}

func TestOrderTotal_NegativeServicePrice(t *testing.T) {
	in := referenceOrder()
	in.Services = []SpecialService{{Name: "refund", Price: -5}}

	_, err := OrderTotal(in)
	if err == nil {
		t.Fatalf("expected error for negative service price")
	}
	var priceErr *InvalidPriceError
	if !errors.As(err, &priceErr) {
		t.Fatalf("expected InvalidPriceError, got %T: %v", err, err)
	}
}

func TestOrderTotal_InvalidArtwork(t *testing.T) {
	in := referenceOrder()
	in.Artwork = Dimensions{Width: -16, Height: 20}

	_, err := OrderTotal(in)
	if err == nil {
		t.Fatalf("expected error for negative artwork width")
	}
	var dimErr *InvalidDimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected InvalidDimensionError, got %T: %v", err, err)
	}
}
