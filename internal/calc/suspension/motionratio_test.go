package suspension

import (
	"math"
	"testing"
)

func TestMotionRatioPositiveInsideTravel(t *testing.T) {
	for _, p := range []Params{Defaults(), perpParams()} {
		ext := FullyExtendedAngle(p)
		comp := FullyCompressedAngle(p)
		a := math.Min(ext, comp)
		b := math.Max(ext, comp)
		for i := 1; i < 10; i++ {
			angle := a + (b-a)*float64(i)/10
			if mr := MotionRatio(angle, p); mr <= 0 {
				t.Errorf("MotionRatio(%v) = %v, want > 0", angle, mr)
			}
		}
	}
}

func TestMotionRatioDegenerate(t *testing.T) {
	// With the upper mount on the pivot the shock length never changes,
	// so the compression difference is exactly zero.
	p := Defaults()
	p.UpperXMM = 0
	p.UpperYMM = 0
	if mr := MotionRatio(0.1, p); mr != 0 {
		t.Errorf("MotionRatio with constant shock length = %v, want 0", mr)
	}
	if wr := WheelRate(0.1, p); wr != 0 {
		t.Errorf("WheelRate with constant shock length = %v, want 0", wr)
	}
}

func TestPerpendicularAngleUnimodality(t *testing.T) {
	const tol = 1e-6

	for _, tt := range []struct {
		name string
		p    Params
	}{
		{"Defaults", Defaults()},
		{"InteriorMinimum", perpParams()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			ext := FullyExtendedAngle(p)
			comp := FullyCompressedAngle(p)
			a := math.Min(ext, comp)
			b := math.Max(ext, comp)

			perp := PerpendicularAngle(p)
			if perp < a-1e-6 || perp > b+1e-6 {
				t.Fatalf("perpendicular angle %v outside travel range [%v, %v]", perp, a, b)
			}

			// Non-increasing approaching the minimum, non-decreasing after.
			prev := math.Inf(1)
			for i := 0; i <= 5; i++ {
				angle := a + (perp-a)*float64(i)/5
				mr := MotionRatio(angle, p)
				if mr > prev+tol {
					t.Errorf("MR not non-increasing before minimum: %v at %v after %v", mr, angle, prev)
				}
				prev = mr
			}
			prev = math.Inf(-1)
			for i := 0; i <= 5; i++ {
				angle := perp + (b-perp)*float64(i)/5
				mr := MotionRatio(angle, p)
				if mr < prev-tol {
					t.Errorf("MR not non-decreasing after minimum: %v at %v before %v", mr, angle, prev)
				}
				prev = mr
			}
		})
	}
}

func TestPerpendicularAngleInterior(t *testing.T) {
	p := perpParams()
	ext := FullyExtendedAngle(p)
	comp := FullyCompressedAngle(p)
	a := math.Min(ext, comp)
	b := math.Max(ext, comp)

	perp := PerpendicularAngle(p)
	if perp <= a+1e-4 || perp >= b-1e-4 {
		t.Errorf("expected interior minimum, got %v with range [%v, %v]", perp, a, b)
	}
	// The located minimum must not exceed the motion ratio anywhere nearby.
	for _, off := range []float64{-0.02, 0.02} {
		if MotionRatio(perp, p) > MotionRatio(perp+off, p)+1e-9 {
			t.Errorf("MR at perp %v larger than at offset %v", perp, off)
		}
	}
}
