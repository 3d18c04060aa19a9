package batch

import (
	"fmt"

	suspension "Fulcrum/internal/calc/suspension"
)

type SuspensionBatchInput struct {
	Items []suspension.Params `json:"items"`
}

type SuspensionBatchResult struct {
	Results []suspension.Result `json:"results"`
}

func CalculateSuspension(in SuspensionBatchInput) (SuspensionBatchResult, error) {
	if len(in.Items) == 0 {
		return SuspensionBatchResult{}, fmt.Errorf("no items")
	}
	out := SuspensionBatchResult{Results: make([]suspension.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := suspension.Calculate(item)
		if err != nil {
			return SuspensionBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
