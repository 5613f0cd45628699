package aero

import (
	"errors"
	"fmt"
)

// ErrNonPositiveArea is returned when a wing area is zero or negative
var ErrNonPositiveArea = errors.New("wing areas must be greater than zero")

// WingLoadingResult holds loading in lb/in² and lb/ft² for each wing panel
type WingLoadingResult struct {
	InnerPerIn2 float64
	OuterPerIn2 float64
	TotalPerIn2 float64

	InnerPerFt2 float64
	OuterPerFt2 float64
	TotalPerFt2 float64
}

// WingLoading computes panel and overall wing loading. Weights are in lb,
// areas in ft².
func WingLoading(totalWeight, innerWeight, outerWeight, innerArea, outerArea float64) (*WingLoadingResult, error) {
	if innerArea <= 0 || outerArea <= 0 {
		return nil, fmt.Errorf("%w (inner=%.4g ft², outer=%.4g ft²)", ErrNonPositiveArea, innerArea, outerArea)
	}

	innerIn2 := innerArea * 144
	outerIn2 := outerArea * 144

	return &WingLoadingResult{
		InnerPerIn2: innerWeight / innerIn2,
		OuterPerIn2: outerWeight / outerIn2,
		TotalPerIn2: totalWeight / (innerIn2 + outerIn2),
		InnerPerFt2: innerWeight / innerArea,
		OuterPerFt2: outerWeight / outerArea,
		TotalPerFt2: totalWeight / (innerArea + outerArea),
	}, nil
}
