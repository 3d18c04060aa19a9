package suspension

import "math"

// Swingarm angles for this geometry class live well inside this band.
const (
	searchLo = -math.Pi / 2
	searchHi = math.Pi / 4
)

const (
	lengthTolMM = 0.001
	maxBisect   = 100
)

// AngleForShockLength solves ShockLength(angle) = targetMM by bisection over
// [searchLo, searchHi]. If the target is not bracketed by the interval the
// nearer endpoint is returned; callers always get some angle back.
func AngleForShockLength(targetMM float64, p Params) float64 {
	lo, hi := searchLo, searchHi
	fLo := ShockLength(lo, p) - targetMM
	fHi := ShockLength(hi, p) - targetMM

	if fLo*fHi >= 0 {
		if math.Abs(fLo) <= math.Abs(fHi) {
			return lo
		}
		return hi
	}

	mid := 0.5 * (lo + hi)
	for i := 0; i < maxBisect; i++ {
		mid = 0.5 * (lo + hi)
		fMid := ShockLength(mid, p) - targetMM
		if math.Abs(fMid) < lengthTolMM {
			break
		}
		if fMid*fLo > 0 {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return mid
}

// FullyExtendedAngle is the angle at zero compression.
func FullyExtendedAngle(p Params) float64 {
	return AngleForShockLength(p.FreeLengthMM, p)
}

// FullyCompressedAngle is the angle at full stroke.
func FullyCompressedAngle(p Params) float64 {
	return AngleForShockLength(p.FreeLengthMM-p.StrokeMM, p)
}
