package suspension

const mmPerInch = 25.4

// SpringForce is Hooke's law over measured compression plus preload.
// A compression-only coil spring: negative net compression gives zero force.
func SpringForce(angle float64, p Params) float64 {
	compMM := ShockCompression(angle, p) + p.PreloadMM
	if compMM <= 0 {
		return 0
	}
	return compMM / mmPerInch * p.RateLbsIn
}

// WheelRate is the effective stiffness felt at the axle: rate / MR^2.
// Returns 0 at degenerate angles where the motion ratio vanishes.
func WheelRate(angle float64, p Params) float64 {
	mr := MotionRatio(angle, p)
	if mr < denomEps {
		return 0
	}
	return p.RateLbsIn / (mr * mr)
}
