package triangle

import "math"

// positiveCubicRoot finds the single positive root of
// a3·x³ + a2·x² + a1·x + a0 when a3 > 0 and a0 < 0. The polynomial is
// negative at zero and positive at the Cauchy bound, so bisection between
// the two always converges.
func positiveCubicRoot(a3, a2, a1, a0 float64) (float64, bool) {
	for _, c := range []float64{a3, a2, a1, a0} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return 0, false
		}
	}
	if a3 <= 0 || a0 >= 0 {
		return 0, false
	}

	f := func(x float64) float64 {
		return ((a3*x+a2)*x+a1)*x + a0
	}

	lo := 0.0
	hi := 1 + math.Max(math.Abs(a2), math.Max(math.Abs(a1), math.Abs(a0)))/a3
	for i := 0; i < 200; i++ {
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			break
		}
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2, true
}
