package suspension

import "math"

const (
	diffStepRad = 1e-4
	denomEps    = 1e-10
)

// MotionRatio is wheel (axle) vertical travel per unit of shock travel,
// evaluated by central difference. Returns 0 when the compression difference
// degenerates (shock axis momentarily parallel to the mount velocity).
func MotionRatio(angle float64, p Params) float64 {
	_, yPlus := AxlePosition(angle+diffStepRad, p.SwingarmMM)
	_, yMinus := AxlePosition(angle-diffStepRad, p.SwingarmMM)
	dComp := ShockCompression(angle+diffStepRad, p) - ShockCompression(angle-diffStepRad, p)
	if math.Abs(dComp) < denomEps {
		return 0
	}
	return math.Abs((yPlus - yMinus) / dComp)
}

const goldenTolRad = 1e-8

// PerpendicularAngle finds the angle of minimum motion ratio within the
// travel range by golden-section search. Motion ratio is assumed unimodal
// across the range, which holds for physically sane single-pivot setups.
func PerpendicularAngle(p Params) float64 {
	ext := FullyExtendedAngle(p)
	comp := FullyCompressedAngle(p)
	a := math.Min(ext, comp)
	b := math.Max(ext, comp)

	phi := (math.Sqrt(5) + 1) / 2
	c := b - (b-a)/phi
	d := a + (b-a)/phi
	for b-a > goldenTolRad {
		if MotionRatio(c, p) < MotionRatio(d, p) {
			b = d
		} else {
			a = c
		}
		c = b - (b-a)/phi
		d = a + (b-a)/phi
	}
	return 0.5 * (a + b)
}
