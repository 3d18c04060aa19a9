package autodesign

import (
	"fmt"

	suspension "Fulcrum/internal/calc/suspension"
)

type PreloadAutoInput struct {
	Setup       suspension.Params `json:"setup"` // preload_mm is ignored
	TargetSagMM float64           `json:"target_sag_mm"`
}

type PreloadAutoResult struct {
	PreloadMM     float64 `json:"preload_mm"`
	AchievedSagMM float64 `json:"achieved_sag_mm"`
	BottomedOut   bool    `json:"bottomed_out"`
	Notes         string  `json:"notes"`
}

const preloadStepMM = 0.5

// Preload steps preload up from zero until static sag drops to the target.
// Preload is capped at the shock stroke; if the cap is reached the last
// result is returned as-is, mirroring how sag reports a bottomed-out state.
func Preload(in PreloadAutoInput) (PreloadAutoResult, error) {
	if in.TargetSagMM <= 0 {
		return PreloadAutoResult{}, fmt.Errorf("invalid target sag")
	}
	p := in.Setup
	p.PreloadMM = 0
	if _, err := suspension.Calculate(p); err != nil {
		return PreloadAutoResult{}, err
	}

	res := suspension.ComputeSag(p)
	for res.SagMM > in.TargetSagMM && p.PreloadMM+preloadStepMM <= p.StrokeMM {
		p.PreloadMM += preloadStepMM
		res = suspension.ComputeSag(p)
	}

	notes := "Preload selected for target static sag."
	if res.SagMM > in.TargetSagMM {
		notes = "Target sag not reachable within the stroke; maximum useful preload returned."
	}
	return PreloadAutoResult{
		PreloadMM:     p.PreloadMM,
		AchievedSagMM: res.SagMM,
		BottomedOut:   res.BottomedOut,
		Notes:         notes,
	}, nil
}
