package pricing

// OrderInput carries everything needed to quote one framing job. Mats and
// Frames are ordered innermost first. Glass and Backing are optional; a nil
// pointer means the job has none. TaxRate is a fraction (0.0825 for 8.25%)
// and must be supplied by the caller's configuration, never defaulted here.
type OrderInput struct {
	Artwork     Dimensions
	Frames      []FrameLayer
	Mats        []MatLayer
	Glass       *GlassSpec
	Backing     *UnitPrice
	Services    []SpecialService
	MiscCharges []MiscCharge
	Discount    *Discount
	TaxRate     float64
}

// WholesaleDetail exposes the pre-markup costs behind a quote for the
// admin-only wholesale display.
type WholesaleDetail struct {
	Frames  []float64 `json:"frames,omitempty"`
	Mats    []float64 `json:"mats,omitempty"`
	Glass   float64   `json:"glass"`
	Backing float64   `json:"backing"`
}

// MultiplierDetail exposes the markup multipliers resolved for each
// component.
type MultiplierDetail struct {
	Frames  []float64 `json:"frames,omitempty"`
	Mats    []float64 `json:"mats,omitempty"`
	Glass   float64   `json:"glass"`
	Backing float64   `json:"backing"`
}

// Breakdown is the full result of pricing one order. Subtotal is the
// post-discount sum of the component totals and Total always equals
// Subtotal + Tax.
type Breakdown struct {
	FrameTotal    float64 `json:"frame_total"`
	MatTotal      float64 `json:"mat_total"`
	GlassTotal    float64 `json:"glass_total"`
	BackingTotal  float64 `json:"backing_total"`
	LaborTotal    float64 `json:"labor_total"`
	ServicesTotal float64 `json:"services_total"`
	MiscTotal     float64 `json:"misc_total"`

	DiscountAmount float64 `json:"discount_amount"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`

	Wholesale   WholesaleDetail  `json:"wholesale"`
	Multipliers MultiplierDetail `json:"multipliers"`
}

// OrderTotal prices a complete framing job. It fails fast on the first
// invalid input and never clamps inputs; the only clamps are the backing
// minimum charge and the zero floor after an oversized discount.
func OrderTotal(in OrderInput) (Breakdown, error) {
	if err := in.Artwork.validate(); err != nil {
		return Breakdown{}, err
	}
	if in.TaxRate < 0 {
		return Breakdown{}, &ConfigurationError{Reason: "tax rate must not be negative"}
	}

	var bd Breakdown

	// Mats accumulate outward from the artwork; each layer is priced on the
	// dimensions of everything inside it.
	dims := in.Artwork
	totalMatWidth := 0.0
	for _, mat := range in.Mats {
		wholesale, multiplier, retail, err := matPriceDetail(mat, dims)
		if err != nil {
			return Breakdown{}, err
		}
		bd.MatTotal += retail
		bd.Wholesale.Mats = append(bd.Wholesale.Mats, wholesale)
		bd.Multipliers.Mats = append(bd.Multipliers.Mats, multiplier)

		dims = dims.grow(mat.border())
		totalMatWidth += mat.border()
	}

	// Labor is tiered on the finished piece, mats included, frame excluded.
	labor, err := LaborPrice(dims)
	if err != nil {
		return Breakdown{}, err
	}
	bd.LaborTotal = labor

	if in.Glass != nil {
		wholesale, multiplier, retail, err := glassPriceDetail(*in.Glass, in.Artwork, totalMatWidth)
		if err != nil {
			return Breakdown{}, err
		}
		bd.GlassTotal = retail
		bd.Wholesale.Glass = wholesale
		bd.Multipliers.Glass = multiplier
	}

	if in.Backing != nil {
		wholesale, multiplier, retail, err := backingPriceDetail(in.Artwork, totalMatWidth, *in.Backing)
		if err != nil {
			return Breakdown{}, err
		}
		bd.BackingTotal = retail
		bd.Wholesale.Backing = wholesale
		bd.Multipliers.Backing = multiplier
	}

	// Frame layers stack outward from the mat package.
	frameDims := dims
	for _, frame := range in.Frames {
		wholesale, multiplier, retail, err := framePriceDetail(frame, frameDims)
		if err != nil {
			return Breakdown{}, err
		}
		bd.FrameTotal += retail
		bd.Wholesale.Frames = append(bd.Wholesale.Frames, wholesale)
		bd.Multipliers.Frames = append(bd.Multipliers.Frames, multiplier)

		frameDims = frameDims.grow(frame.MouldingWidth)
	}

	for _, svc := range in.Services {
		if svc.Price < 0 {
			return Breakdown{}, &InvalidPriceError{Field: "servicePrice", Value: svc.Price}
		}
		bd.ServicesTotal += svc.Price
	}

	// Percentage misc charges apply to marked-up materials and services only;
	// backing and labor stay out of the base.
	percentageBase := bd.FrameTotal + bd.MatTotal + bd.GlassTotal + bd.ServicesTotal
	for _, charge := range in.MiscCharges {
		if charge.Amount < 0 {
			return Breakdown{}, &InvalidPriceError{Field: "miscAmount", Value: charge.Amount}
		}
		switch charge.Kind {
		case ChargeFixed:
			bd.MiscTotal += charge.Amount
		case ChargePercentage:
			bd.MiscTotal += charge.Amount / 100 * percentageBase
		default:
			return Breakdown{}, &ConfigurationError{Reason: "misc charge kind must be fixed or percentage"}
		}
	}

	subtotal := bd.FrameTotal + bd.MatTotal + bd.GlassTotal + bd.BackingTotal +
		bd.LaborTotal + bd.ServicesTotal + bd.MiscTotal

	if in.Discount != nil {
		if in.Discount.Amount < 0 {
			return Breakdown{}, &InvalidPriceError{Field: "discountAmount", Value: in.Discount.Amount}
		}
		switch in.Discount.Kind {
		case ChargeFixed:
			bd.DiscountAmount = in.Discount.Amount
		case ChargePercentage:
			bd.DiscountAmount = in.Discount.Amount / 100 * subtotal
		default:
			return Breakdown{}, &ConfigurationError{Reason: "discount kind must be fixed or percentage"}
		}
		subtotal -= bd.DiscountAmount
		if subtotal < 0 {
			subtotal = 0
		}
	}

	bd.Subtotal = subtotal
	bd.Tax = subtotal * in.TaxRate
	bd.Total = bd.Subtotal + bd.Tax

	return bd, nil
}
