package suspension

import "math"

// All positions are pivot-centered, Y up positive. The swingarm angle is
// measured from horizontal; the lower shock mount rotates rigidly with the
// swingarm at the same angle.

func AxlePosition(angle, swingarmMM float64) (x, y float64) {
	return swingarmMM * math.Cos(angle), swingarmMM * math.Sin(angle)
}

func LowerMountPosition(angle, lowerMountMM float64) (x, y float64) {
	return lowerMountMM * math.Cos(angle), lowerMountMM * math.Sin(angle)
}

// ShockLength is the distance from the lower mount to the fixed upper mount.
func ShockLength(angle float64, p Params) float64 {
	mx, my := LowerMountPosition(angle, p.LowerMountMM)
	return math.Hypot(p.UpperXMM-mx, p.UpperYMM-my)
}

// ShockCompression is free length minus current length. Positive means
// compressed; negative (shock longer than free length) is not clamped here.
func ShockCompression(angle float64, p Params) float64 {
	return p.FreeLengthMM - ShockLength(angle, p)
}
