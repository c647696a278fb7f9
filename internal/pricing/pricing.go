// Package pricing converts wholesale catalog costs and artwork dimensions
// into retail framing prices. All functions are pure: no I/O, no shared
// state, safe to call concurrently and per keystroke from a live quote form.
package pricing

// Dimensions is a width/height pair in inches.
type Dimensions struct {
	Width  float64
	Height float64
}

func (d Dimensions) validate() error {
	if d.Width <= 0 {
		return &InvalidDimensionError{Field: "width", Value: d.Width}
	}
	if d.Height <= 0 {
		return &InvalidDimensionError{Field: "height", Value: d.Height}
	}
	return nil
}

// area returns the face area in square inches.
func (d Dimensions) area() float64 {
	return d.Width * d.Height
}

// unitedInches is the traditional framing sizing unit: width plus height.
func (d Dimensions) unitedInches() float64 {
	return d.Width + d.Height
}

// grow returns the dimensions expanded by a border on all four sides.
func (d Dimensions) grow(border float64) Dimensions {
	return Dimensions{Width: d.Width + 2*border, Height: d.Height + 2*border}
}

// PricingMethod selects the moulding fabrication method.
type PricingMethod string

const (
	MethodChop PricingMethod = "chop"
	MethodJoin PricingMethod = "join"
)

// joinPremium is the fixed surcharge for mitered, seamless corner
// construction over cut-and-assembled corners.
const joinPremium = 1.3

// FrameLayer is one moulding layer wrapped around the piece. MouldingWidth is
// the face width of the moulding itself; it only matters when stacking frames,
// where it grows the dimensions the next-outer layer wraps.
type FrameLayer struct {
	WholesalePerFoot float64
	Method           PricingMethod
	MouldingWidth    float64
}

func (f FrameLayer) validate() error {
	if f.WholesalePerFoot < 0 {
		return &InvalidPriceError{Field: "wholesalePerFoot", Value: f.WholesalePerFoot}
	}
	if f.MouldingWidth < 0 {
		return &InvalidDimensionError{Field: "mouldingWidth", Value: f.MouldingWidth}
	}
	switch f.Method {
	case MethodChop, MethodJoin:
		return nil
	default:
		return &ConfigurationError{Reason: "pricing method must be chop or join"}
	}
}

// MatLayer is one mat border. Reveal is the strip of this layer left visible
// beneath the next-outer layer in a double-mat composition; it widens the
// layer's effective border.
type MatLayer struct {
	Width                  float64
	WholesalePerSquareInch float64
	Reveal                 float64
}

func (m MatLayer) validate() error {
	if m.Width < 0 {
		return &InvalidDimensionError{Field: "matWidth", Value: m.Width}
	}
	if m.Reveal < 0 {
		return &InvalidDimensionError{Field: "matReveal", Value: m.Reveal}
	}
	if m.WholesalePerSquareInch < 0 {
		return &InvalidPriceError{Field: "wholesalePerSquareInch", Value: m.WholesalePerSquareInch}
	}
	return nil
}

// border is the layer's full contribution to the stack dimensions.
func (m MatLayer) border() float64 {
	return m.Width + m.Reveal
}

// GlassSpec describes the glazing covering the mat stack.
type GlassSpec struct {
	Price UnitPrice
}

// SpecialService is a flat add-on charge (fitting, shadowbox mounting,
// stretching). No markup is ever applied to services.
type SpecialService struct {
	Name  string
	Price float64
}

// ChargeKind selects how a miscellaneous charge or discount is applied.
type ChargeKind string

const (
	ChargeFixed      ChargeKind = "fixed"
	ChargePercentage ChargeKind = "percentage"
)

// MiscCharge is an ad-hoc line item. Percentage charges apply to the
// frame+mat+glass+services running subtotal.
type MiscCharge struct {
	Kind   ChargeKind
	Amount float64
}

// Discount is an order-level reduction applied to the subtotal before tax.
type Discount struct {
	Kind   ChargeKind
	Amount float64
}

const (
	glassMarkup           = 3.0
	glassPremiumMarkup    = 1.5
	glassPremiumThreshold = 0.45 // $/sq-in; conservation-grade glazing starts here

	backingMarkup        = 3.0
	backingMinimumCharge = 10.0
)

// laborTier maps a finished united-inch ceiling to a flat labor rate.
type laborTier struct {
	maxUnitedInches float64
	rate            float64
}

var laborTiers = []laborTier{
	{maxUnitedInches: 40, rate: 50},
	{maxUnitedInches: 60, rate: 60},
	{maxUnitedInches: 80, rate: 70},
	{maxUnitedInches: 100, rate: 85},
}

const laborTopRate = 100.0

// FramePrice computes the retail price of one frame layer wrapped around the
// given dimensions (artwork plus any mats already applied).
func FramePrice(frame FrameLayer, dims Dimensions) (float64, error) {
	_, _, retail, err := framePriceDetail(frame, dims)
	return retail, err
}

func framePriceDetail(frame FrameLayer, dims Dimensions) (wholesale, multiplier, retail float64, err error) {
	if err := dims.validate(); err != nil {
		return 0, 0, 0, err
	}
	if err := frame.validate(); err != nil {
		return 0, 0, 0, err
	}

	// Perimeter in united inches, converted to feet of moulding.
	perimeterFeet := 2 * dims.unitedInches() / 12
	wholesale = perimeterFeet * frame.WholesalePerFoot
	if frame.Method == MethodJoin {
		wholesale *= joinPremium
	}

	multiplier, err = Markup(wholesale)
	if err != nil {
		return 0, 0, 0, err
	}

	return wholesale, multiplier, wholesale * multiplier, nil
}

// MatPrice computes the retail price of one mat layer cut around the given
// dimensions. A zero-width layer prices to zero; it is not an error.
func MatPrice(mat MatLayer, dims Dimensions) (float64, error) {
	_, _, retail, err := matPriceDetail(mat, dims)
	return retail, err
}

func matPriceDetail(mat MatLayer, dims Dimensions) (wholesale, multiplier, retail float64, err error) {
	if err := dims.validate(); err != nil {
		return 0, 0, 0, err
	}
	if err := mat.validate(); err != nil {
		return 0, 0, 0, err
	}

	// Border-only area: the window opening is cut out and not charged.
	outer := dims.grow(mat.border())
	matArea := outer.area() - dims.area()
	wholesale = matArea * mat.WholesalePerSquareInch

	multiplier, err = Markup(wholesale)
	if err != nil {
		return 0, 0, 0, err
	}

	return wholesale, multiplier, wholesale * multiplier, nil
}

// GlassPrice computes the retail price of glazing covering the artwork plus
// the full mat stack. totalMatWidth is the combined border of all mat layers
// on one side, including reveals.
func GlassPrice(glass GlassSpec, dims Dimensions, totalMatWidth float64) (float64, error) {
	_, _, retail, err := glassPriceDetail(glass, dims, totalMatWidth)
	return retail, err
}

func glassPriceDetail(glass GlassSpec, dims Dimensions, totalMatWidth float64) (wholesale, multiplier, retail float64, err error) {
	if err := dims.validate(); err != nil {
		return 0, 0, 0, err
	}
	if totalMatWidth < 0 {
		return 0, 0, 0, &InvalidDimensionError{Field: "totalMatWidth", Value: totalMatWidth}
	}
	perInch, err := glass.Price.perSquareInch()
	if err != nil {
		return 0, 0, 0, err
	}

	area := dims.grow(totalMatWidth).area()
	wholesale = area * perInch

	multiplier = glassMarkup
	if perInch >= glassPremiumThreshold {
		// Museum and conservation glazing carries an extra escalation.
		multiplier *= glassPremiumMarkup
	}

	return wholesale, multiplier, wholesale * multiplier, nil
}

// BackingPrice computes the charge for the rigid backing board. The wholesale
// factor shrinks as the board grows, and the result never drops below the
// minimum shop charge.
func BackingPrice(dims Dimensions, totalMatWidth float64, price UnitPrice) (float64, error) {
	_, _, retail, err := backingPriceDetail(dims, totalMatWidth, price)
	return retail, err
}

func backingPriceDetail(dims Dimensions, totalMatWidth float64, price UnitPrice) (wholesale, multiplier, retail float64, err error) {
	if err := dims.validate(); err != nil {
		return 0, 0, 0, err
	}
	if totalMatWidth < 0 {
		return 0, 0, 0, &InvalidDimensionError{Field: "totalMatWidth", Value: totalMatWidth}
	}
	perInch, err := price.perSquareInch()
	if err != nil {
		return 0, 0, 0, err
	}

	area := dims.grow(totalMatWidth).area()
	wholesale = area * perInch * backingAreaFactor(area)

	multiplier = backingMarkup
	retail = wholesale * multiplier
	if retail < backingMinimumCharge {
		retail = backingMinimumCharge
	}

	return wholesale, multiplier, retail, nil
}

func backingAreaFactor(area float64) float64 {
	switch {
	case area > 1500:
		return 0.8
	case area > 1000:
		return 0.85
	case area > 500:
		return 0.9
	default:
		return 1.0
	}
}

// LaborPrice returns the flat labor rate for the finished piece (artwork plus
// all mats, before the frame). Rates step up by united-inch tier rather than
// scaling continuously.
func LaborPrice(dims Dimensions) (float64, error) {
	if err := dims.validate(); err != nil {
		return 0, err
	}

	ui := dims.unitedInches()
	for _, tier := range laborTiers {
		if ui <= tier.maxUnitedInches {
			return tier.rate, nil
		}
	}
	return laborTopRate, nil
}
