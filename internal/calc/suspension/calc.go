package suspension

import (
	"fmt"
	"math"
)

type Result struct {
	ExtendedAngleRad    float64 `json:"extended_angle_rad"`
	CompressedAngleRad  float64 `json:"compressed_angle_rad"`
	PerpendicularRad    float64 `json:"perpendicular_angle_rad"`
	WheelTravelMM       float64 `json:"wheel_travel_mm"`
	SagAngleRad         float64 `json:"sag_angle_rad"`
	SagMM               float64 `json:"sag_mm"`
	BottomedOut         bool    `json:"bottomed_out"`
	MotionRatioAtSag    float64 `json:"motion_ratio_at_sag"`
	SpringForceAtSagLbs float64 `json:"spring_force_at_sag_lbs"`
	WheelRateAtSagLbsIn float64 `json:"wheel_rate_at_sag_lbs_in"`
	Notes               string  `json:"notes"`
}

func validate(p *Params) error {
	if p.SwingarmMM <= 0 || p.LowerMountMM <= 0 || p.FreeLengthMM <= 0 || p.StrokeMM <= 0 {
		return fmt.Errorf("invalid input")
	}
	if p.StrokeMM >= p.FreeLengthMM {
		return fmt.Errorf("stroke must be less than free length")
	}
	if p.LoadLbs < 0 || p.PreloadMM < 0 {
		return fmt.Errorf("invalid input")
	}
	if p.RateLbsIn <= 0 {
		p.RateLbsIn = 600
	}
	return nil
}

// Calculate runs the full static analysis: travel limits, perpendicular
// angle, sag equilibrium and the stiffness quantities at the sag point.
func Calculate(p Params) (Result, error) {
	if err := validate(&p); err != nil {
		return Result{}, err
	}

	ext := FullyExtendedAngle(p)
	comp := FullyCompressedAngle(p)
	_, yExt := AxlePosition(ext, p.SwingarmMM)
	_, yComp := AxlePosition(comp, p.SwingarmMM)
	sag := ComputeSag(p)

	return Result{
		ExtendedAngleRad:    ext,
		CompressedAngleRad:  comp,
		PerpendicularRad:    PerpendicularAngle(p),
		WheelTravelMM:       math.Abs(yComp - yExt),
		SagAngleRad:         sag.AngleRad,
		SagMM:               sag.SagMM,
		BottomedOut:         sag.BottomedOut,
		MotionRatioAtSag:    MotionRatio(sag.AngleRad, p),
		SpringForceAtSagLbs: SpringForce(sag.AngleRad, p),
		WheelRateAtSagLbsIn: WheelRate(sag.AngleRad, p),
		Notes:               "Static analysis of a single-pivot linkless rear suspension.",
	}, nil
}

type PointInput struct {
	Setup    Params  `json:"setup"`
	AngleRad float64 `json:"angle_rad"`
}

type PointResult struct {
	AxleXMM        float64 `json:"axle_x_mm"`
	AxleYMM        float64 `json:"axle_y_mm"`
	ShockLengthMM  float64 `json:"shock_length_mm"`
	CompressionMM  float64 `json:"compression_mm"`
	MotionRatio    float64 `json:"motion_ratio"`
	SpringForceLbs float64 `json:"spring_force_lbs"`
	WheelRateLbsIn float64 `json:"wheel_rate_lbs_in"`
}

// At evaluates the suspension at one swingarm angle.
func At(in PointInput) (PointResult, error) {
	if err := validate(&in.Setup); err != nil {
		return PointResult{}, err
	}
	p := in.Setup
	ax, ay := AxlePosition(in.AngleRad, p.SwingarmMM)
	return PointResult{
		AxleXMM:        ax,
		AxleYMM:        ay,
		ShockLengthMM:  ShockLength(in.AngleRad, p),
		CompressionMM:  ShockCompression(in.AngleRad, p),
		MotionRatio:    MotionRatio(in.AngleRad, p),
		SpringForceLbs: SpringForce(in.AngleRad, p),
		WheelRateLbsIn: WheelRate(in.AngleRad, p),
	}, nil
}

type TravelResult struct {
	ExtendedAngleRad   float64 `json:"extended_angle_rad"`
	CompressedAngleRad float64 `json:"compressed_angle_rad"`
	WheelTravelMM      float64 `json:"wheel_travel_mm"`
}

// Travel reports the travel limits and total vertical wheel travel.
func Travel(p Params) (TravelResult, error) {
	if err := validate(&p); err != nil {
		return TravelResult{}, err
	}
	ext := FullyExtendedAngle(p)
	comp := FullyCompressedAngle(p)
	_, yExt := AxlePosition(ext, p.SwingarmMM)
	_, yComp := AxlePosition(comp, p.SwingarmMM)
	return TravelResult{
		ExtendedAngleRad:   ext,
		CompressedAngleRad: comp,
		WheelTravelMM:      math.Abs(yComp - yExt),
	}, nil
}

type SweepInput struct {
	Setup  Params `json:"setup"`
	Points int    `json:"points"`
}

type SweepPoint struct {
	AngleRad       float64 `json:"angle_rad"`
	WheelTravelMM  float64 `json:"wheel_travel_mm"`
	CompressionMM  float64 `json:"compression_mm"`
	MotionRatio    float64 `json:"motion_ratio"`
	SpringForceLbs float64 `json:"spring_force_lbs"`
	WheelRateLbsIn float64 `json:"wheel_rate_lbs_in"`
}

type SweepResult struct {
	Points []SweepPoint `json:"points"`
}

// Sweep tabulates the suspension across the full travel range, extended to
// compressed, for plots and reports.
func Sweep(in SweepInput) (SweepResult, error) {
	if err := validate(&in.Setup); err != nil {
		return SweepResult{}, err
	}
	if in.Points < 2 {
		in.Points = 21
	}
	p := in.Setup

	ext := FullyExtendedAngle(p)
	comp := FullyCompressedAngle(p)
	_, yExt := AxlePosition(ext, p.SwingarmMM)

	out := SweepResult{Points: make([]SweepPoint, 0, in.Points)}
	for i := 0; i < in.Points; i++ {
		t := float64(i) / float64(in.Points-1)
		angle := ext + (comp-ext)*t
		_, ay := AxlePosition(angle, p.SwingarmMM)
		out.Points = append(out.Points, SweepPoint{
			AngleRad:       angle,
			WheelTravelMM:  ay - yExt,
			CompressionMM:  ShockCompression(angle, p),
			MotionRatio:    MotionRatio(angle, p),
			SpringForceLbs: SpringForce(angle, p),
			WheelRateLbsIn: WheelRate(angle, p),
		})
	}
	return out, nil
}
