package pricing

// ApplyRounding maps an exact total to its display-rounded counterpart using
// tiered granularity. Approval and threshold decisions always use the exact
// total; the rounded figure only ever appears on rendered documents.
//
// Halves round away from zero at every tier. Totals here are non-negative,
// which makes this identical to the source system's half-toward-positive
// rounding.
func ApplyRounding(amount int64) int64 {
	switch {
	case amount >= 200000:
		return roundToNearest(amount, 1000)
	case amount >= 50000:
		return roundToNearest(amount, 100)
	default:
		return roundToNearest(amount, 10)
	}
}

func roundToNearest(amount, step int64) int64 {
	if amount < 0 {
		return -roundToNearest(-amount, step)
	}
	return (amount + step/2) / step * step
}
