package recommend

import (
	"fmt"

	suspension "Fulcrum/internal/calc/suspension"
)

type SpringRateInput struct {
	Setup       suspension.Params `json:"setup"` // rate_lbs_in is ignored
	TargetSagMM float64           `json:"target_sag_mm"`
}

type SpringRateResult struct {
	RateLbsIn     float64 `json:"rate_lbs_in"`
	AchievedSagMM float64 `json:"achieved_sag_mm"`
	Notes         string  `json:"notes"`
}

const (
	minRate = 50
	maxRate = 3000
)

// SpringRate finds the spring rate whose static sag matches the target.
// Sag decreases monotonically with rate, so the rate is bisected. Targets
// outside what the rate band can reach return the nearest band edge.
func SpringRate(in SpringRateInput) (SpringRateResult, error) {
	if in.TargetSagMM <= 0 {
		return SpringRateResult{}, fmt.Errorf("invalid target sag")
	}

	sagAt := func(rate float64) float64 {
		p := in.Setup
		p.RateLbsIn = rate
		return suspension.ComputeSag(p).SagMM
	}

	p := in.Setup
	p.RateLbsIn = minRate
	if _, err := suspension.Calculate(p); err != nil {
		return SpringRateResult{}, err
	}

	if sag := sagAt(minRate); sag < in.TargetSagMM {
		return SpringRateResult{
			RateLbsIn:     minRate,
			AchievedSagMM: sag,
			Notes:         "Target sag not reachable; softest supported rate returned.",
		}, nil
	}
	if sag := sagAt(maxRate); sag > in.TargetSagMM {
		return SpringRateResult{
			RateLbsIn:     maxRate,
			AchievedSagMM: sag,
			Notes:         "Target sag below reach of the stiffest supported rate.",
		}, nil
	}

	lo, hi := float64(minRate), float64(maxRate)
	for hi-lo > 0.5 {
		mid := 0.5 * (lo + hi)
		if sagAt(mid) > in.TargetSagMM {
			lo = mid
		} else {
			hi = mid
		}
	}
	rate := 0.5 * (lo + hi)

	return SpringRateResult{
		RateLbsIn:     rate,
		AchievedSagMM: sagAt(rate),
		Notes:         "Spring rate selected for target static sag.",
	}, nil
}
