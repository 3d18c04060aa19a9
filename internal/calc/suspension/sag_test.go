package suspension

import (
	"math"
	"testing"
)

func TestComputeSagDefaults(t *testing.T) {
	p := Defaults()
	res := ComputeSag(p)

	if res.BottomedOut {
		t.Fatal("default setup should not bottom out under 200 lbs")
	}
	if res.SagMM <= 0 {
		t.Errorf("sag = %v, want > 0 for the default geometry", res.SagMM)
	}

	ext := FullyExtendedAngle(p)
	comp := FullyCompressedAngle(p)
	lo := math.Min(ext, comp) - 1e-3
	hi := math.Max(ext, comp) + 1e-3
	if res.AngleRad < lo || res.AngleRad > hi {
		t.Errorf("sag angle %v outside travel band [%v, %v]", res.AngleRad, lo, hi)
	}
}

func TestSagDecreasesWithSpringRate(t *testing.T) {
	p := Defaults()
	prev := math.Inf(1)
	for _, rate := range []float64{400, 600, 800, 1000} {
		p.RateLbsIn = rate
		sag := ComputeSag(p).SagMM
		if sag >= prev {
			t.Errorf("rate %v: sag %v not below previous %v", rate, sag, prev)
		}
		prev = sag
	}
}

func TestSagIncreasesWithLoad(t *testing.T) {
	p := Defaults()
	prev := math.Inf(-1)
	for _, load := range []float64{100, 150, 200, 250} {
		p.LoadLbs = load
		sag := ComputeSag(p).SagMM
		if sag <= prev {
			t.Errorf("load %v: sag %v not above previous %v", load, sag, prev)
		}
		prev = sag
	}
}

func TestSagPreloadReducesSag(t *testing.T) {
	p := Defaults()
	base := ComputeSag(p).SagMM
	p.PreloadMM = 5
	if got := ComputeSag(p).SagMM; got >= base {
		t.Errorf("sag with preload = %v, want below %v", got, base)
	}
}

func TestComputeSagBottomsOut(t *testing.T) {
	p := Defaults()
	p.LoadLbs = 10000

	res := ComputeSag(p)
	if !res.BottomedOut {
		t.Fatal("expected bottomed-out result under excessive load")
	}
	comp := FullyCompressedAngle(p)
	if res.AngleRad != comp {
		t.Errorf("bottomed-out angle = %v, want fully-compressed %v", res.AngleRad, comp)
	}

	ext := FullyExtendedAngle(p)
	_, yExt := AxlePosition(ext, p.SwingarmMM)
	_, yComp := AxlePosition(comp, p.SwingarmMM)
	if math.Abs(res.SagMM-(yComp-yExt)) > 1e-9 {
		t.Errorf("bottomed-out sag = %v, want %v", res.SagMM, yComp-yExt)
	}
}
