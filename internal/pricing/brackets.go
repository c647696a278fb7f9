package pricing

// markupBracket maps wholesale costs at or above min to a retail multiplier.
// Brackets are ordered by ascending min and cover [0, ∞) without gaps; the
// lower bound is inclusive, so a cost sitting exactly on a boundary takes the
// higher bracket's (smaller) multiplier.
type markupBracket struct {
	min        float64
	multiplier float64
}

// Sliding scale: cheaper mouldings and boards carry proportionally larger
// markup than expensive ones.
var markupBrackets = []markupBracket{
	{min: 0, multiplier: 4.0},
	{min: 2, multiplier: 3.5},
	{min: 4, multiplier: 3.2},
	{min: 6, multiplier: 3.0},
	{min: 10, multiplier: 2.8},
	{min: 15, multiplier: 2.6},
	{min: 25, multiplier: 2.4},
	{min: 40, multiplier: 2.2},
}

// Markup resolves the retail multiplier for a wholesale dollar cost. It is
// shared by the frame and mat calculations.
func Markup(wholesaleCost float64) (float64, error) {
	if wholesaleCost < 0 {
		return 0, &InvalidPriceError{Field: "wholesaleCost", Value: wholesaleCost}
	}

	multiplier := 0.0
	found := false
	for _, b := range markupBrackets {
		if wholesaleCost >= b.min {
			multiplier = b.multiplier
			found = true
		}
	}
	if !found {
		return 0, &UnresolvableMarkupError{WholesaleCost: wholesaleCost}
	}

	return multiplier, nil
}
