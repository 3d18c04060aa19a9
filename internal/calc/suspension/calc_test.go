package suspension

import (
	"math"
	"testing"
)

func TestCalculateDefaults(t *testing.T) {
	res, err := Calculate(Defaults())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.WheelTravelMM <= 0 {
		t.Errorf("wheel travel = %v, want > 0", res.WheelTravelMM)
	}
	if res.BottomedOut {
		t.Error("default setup reported as bottomed out")
	}
	if res.SagMM <= 0 {
		t.Errorf("sag = %v, want > 0", res.SagMM)
	}
	if res.MotionRatioAtSag <= 0 || res.WheelRateAtSagLbsIn <= 0 || res.SpringForceAtSagLbs <= 0 {
		t.Errorf("non-positive quantities at sag: %+v", res)
	}

	mid := 0.5 * (res.ExtendedAngleRad + res.CompressedAngleRad)
	if mr := MotionRatio(mid, Defaults()); mr <= 0 {
		t.Errorf("motion ratio at mid travel = %v, want > 0", mr)
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"ZeroSwingarm", func(p *Params) { p.SwingarmMM = 0 }},
		{"ZeroLowerMount", func(p *Params) { p.LowerMountMM = 0 }},
		{"ZeroFreeLength", func(p *Params) { p.FreeLengthMM = 0 }},
		{"ZeroStroke", func(p *Params) { p.StrokeMM = 0 }},
		{"StrokeExceedsFreeLength", func(p *Params) { p.StrokeMM = p.FreeLengthMM }},
		{"NegativeLoad", func(p *Params) { p.LoadLbs = -1 }},
		{"NegativePreload", func(p *Params) { p.PreloadMM = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Defaults()
			tt.mutate(&p)
			if _, err := Calculate(p); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCalculateDefaultsSpringRate(t *testing.T) {
	p := Defaults()
	p.RateLbsIn = 0 // rate left blank defaults to 600
	got, err := Calculate(p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	want, _ := Calculate(Defaults())
	if math.Abs(got.SagMM-want.SagMM) > 1e-9 {
		t.Errorf("sag with defaulted rate = %v, want %v", got.SagMM, want.SagMM)
	}
}

func TestAt(t *testing.T) {
	res, err := At(PointInput{Setup: Defaults(), AngleRad: 0})
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if math.Abs(res.AxleXMM-550) > 1e-9 || math.Abs(res.AxleYMM) > 1e-9 {
		t.Errorf("axle at angle 0 = (%v, %v), want (550, 0)", res.AxleXMM, res.AxleYMM)
	}
	if math.Abs(res.CompressionMM-(Defaults().FreeLengthMM-res.ShockLengthMM)) > 1e-9 {
		t.Errorf("compression %v inconsistent with shock length %v", res.CompressionMM, res.ShockLengthMM)
	}

	if _, err := At(PointInput{Setup: Params{}, AngleRad: 0}); err == nil {
		t.Error("expected error for empty setup")
	}
}

func TestSweep(t *testing.T) {
	p := Defaults()

	res, err := Sweep(SweepInput{Setup: p})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(res.Points) != 21 {
		t.Fatalf("default sweep has %d points, want 21", len(res.Points))
	}

	first := res.Points[0]
	last := res.Points[len(res.Points)-1]
	if math.Abs(first.WheelTravelMM) > 1e-9 {
		t.Errorf("travel at full extension = %v, want 0", first.WheelTravelMM)
	}
	if math.Abs(first.CompressionMM) > 0.1 {
		t.Errorf("compression at full extension = %v, want ~0", first.CompressionMM)
	}
	if math.Abs(last.CompressionMM-p.StrokeMM) > 0.5 {
		t.Errorf("compression at full stroke = %v, want ~%v", last.CompressionMM, p.StrokeMM)
	}

	small, err := Sweep(SweepInput{Setup: p, Points: 5})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(small.Points) != 5 {
		t.Errorf("sweep has %d points, want 5", len(small.Points))
	}
}

// Full scenario with the documented defaults: stiffer springs settle less,
// heavier riders settle more.
func TestEndToEndScenario(t *testing.T) {
	p := Defaults()

	ext := FullyExtendedAngle(p)
	if c := ShockCompression(ext, p); math.Abs(c) > 0.1 {
		t.Errorf("compression at full extension = %v, want ~0", c)
	}

	prev := math.Inf(1)
	for _, rate := range []float64{400, 600, 800, 1000} {
		q := Defaults()
		q.RateLbsIn = rate
		sag := ComputeSag(q).SagMM
		if sag >= prev {
			t.Errorf("rate %v: sag %v did not decrease from %v", rate, sag, prev)
		}
		prev = sag
	}

	prev = math.Inf(-1)
	for _, load := range []float64{100, 150, 200, 250} {
		q := Defaults()
		q.LoadLbs = load
		sag := ComputeSag(q).SagMM
		if sag <= prev {
			t.Errorf("load %v: sag %v did not increase from %v", load, sag, prev)
		}
		prev = sag
	}
}
