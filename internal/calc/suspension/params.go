package suspension

// Params describes a single-pivot (linkless) rear suspension: a rigid
// swingarm rotating about a fixed pivot at the origin, with a coilover
// shock between a mount on the swingarm and a fixed frame mount.
// Linear units are millimeters, spring rate lbs/inch, load lbs.
type Params struct {
	SwingarmMM   float64 `json:"swingarm_mm"`    // pivot to axle
	LowerMountMM float64 `json:"lower_mount_mm"` // pivot to lower shock mount
	UpperXMM     float64 `json:"upper_x_mm"`     // fixed frame mount, pivot-centered
	UpperYMM     float64 `json:"upper_y_mm"`
	FreeLengthMM float64 `json:"free_length_mm"` // shock length at zero compression
	StrokeMM     float64 `json:"stroke_mm"`      // maximum shock compression
	RateLbsIn    float64 `json:"rate_lbs_in"`
	LoadLbs      float64 `json:"load_lbs"` // static vertical load at the axle
	PreloadMM    float64 `json:"preload_mm"`
}

// Defaults returns the reference setup used in docs and tests.
func Defaults() Params {
	return Params{
		SwingarmMM:   550,
		LowerMountMM: 250,
		UpperXMM:     160,
		UpperYMM:     240,
		FreeLengthMM: 280,
		StrokeMM:     55,
		RateLbsIn:    600,
		LoadLbs:      200,
		PreloadMM:    0,
	}
}
