package suspension

import "math"

type SagResult struct {
	AngleRad    float64 `json:"angle_rad"`
	SagMM       float64 `json:"sag_mm"`
	BottomedOut bool    `json:"bottomed_out"`
}

const (
	sagStepRad  = 0.0005
	sagMaxSteps = 200000
)

// ComputeSag marches the swingarm from full extension toward full
// compression until spring torque about the pivot balances load torque.
// Spring torque grows monotonically along the march while load torque stays
// near constant, so the first crossing is the equilibrium. If the range is
// exhausted the suspension cannot support the load and the fully-compressed
// state is returned with BottomedOut set.
func ComputeSag(p Params) SagResult {
	ext := FullyExtendedAngle(p)
	comp := FullyCompressedAngle(p)
	_, yExt := AxlePosition(ext, p.SwingarmMM)

	step := sagStepRad
	if comp < ext {
		step = -sagStepRad
	}

	angle := ext
	for i := 0; i < sagMaxSteps; i++ {
		if (step > 0 && angle > comp) || (step < 0 && angle < comp) {
			break
		}
		force := SpringForce(angle, p)
		if force <= 0 {
			// still extending, no spring resistance yet
			angle += step
			continue
		}

		mx, my := LowerMountPosition(angle, p.LowerMountMM)
		dx := p.UpperXMM - mx
		dy := p.UpperYMM - my
		dist := math.Hypot(dx, dy)
		if dist < denomEps {
			angle += step
			continue
		}
		ux, uy := dx/dist, dy/dist

		// perpendicular lever arm of the shock force line through the mount
		springTorque := math.Abs(mx*uy-my*ux) * force
		ax, ay := AxlePosition(angle, p.SwingarmMM)
		loadTorque := p.LoadLbs * math.Abs(ax)

		if springTorque >= loadTorque {
			return SagResult{AngleRad: angle, SagMM: ay - yExt}
		}
		angle += step
	}

	_, yComp := AxlePosition(comp, p.SwingarmMM)
	return SagResult{AngleRad: comp, SagMM: yComp - yExt, BottomedOut: true}
}
