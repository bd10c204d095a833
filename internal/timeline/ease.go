package timeline

import "math"

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(p float64) float64

func Linear(p float64) float64 { return p }

// Power3Out decelerates to the end; same curve as a quartic ease-out.
func Power3Out(p float64) float64 {
	return 1 - math.Pow(1-p, 4)
}

// BounceOut drops onto the end value and bounces three times.
func BounceOut(p float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}
