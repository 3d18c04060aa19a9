package autodesign

import (
	"testing"

	suspension "Fulcrum/internal/calc/suspension"
)

func TestPreloadHitsTarget(t *testing.T) {
	base := suspension.ComputeSag(suspension.Defaults()).SagMM
	target := base * 0.75

	res, err := Preload(PreloadAutoInput{Setup: suspension.Defaults(), TargetSagMM: target})
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if res.PreloadMM <= 0 {
		t.Errorf("preload = %v, want > 0 to reduce sag below %v", res.PreloadMM, base)
	}
	if res.AchievedSagMM > target {
		t.Errorf("achieved sag %v exceeds target %v", res.AchievedSagMM, target)
	}
	if res.PreloadMM > suspension.Defaults().StrokeMM {
		t.Errorf("preload %v exceeds stroke", res.PreloadMM)
	}
}

func TestPreloadAlreadySatisfied(t *testing.T) {
	base := suspension.ComputeSag(suspension.Defaults()).SagMM

	res, err := Preload(PreloadAutoInput{Setup: suspension.Defaults(), TargetSagMM: base + 10})
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if res.PreloadMM != 0 {
		t.Errorf("preload = %v, want 0 when zero preload already meets the target", res.PreloadMM)
	}
}

func TestPreloadUnreachableTarget(t *testing.T) {
	p := suspension.Defaults()
	p.LoadLbs = 10000 // bottoms out regardless of preload

	res, err := Preload(PreloadAutoInput{Setup: p, TargetSagMM: 1})
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if !res.BottomedOut {
		t.Error("expected bottomed-out result under excessive load")
	}
	if res.AchievedSagMM <= 1 {
		t.Errorf("achieved sag = %v, expected target to be missed", res.AchievedSagMM)
	}
}

func TestPreloadInvalidInput(t *testing.T) {
	if _, err := Preload(PreloadAutoInput{Setup: suspension.Defaults(), TargetSagMM: 0}); err == nil {
		t.Error("expected error for zero target sag")
	}
	if _, err := Preload(PreloadAutoInput{TargetSagMM: 25}); err == nil {
		t.Error("expected error for empty setup")
	}
}
