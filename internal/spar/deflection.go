package spar

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowing/internal/integrate"
)

// BendResult is the elastic bending of a spar clamped at the root
type BendResult struct {
	Y          []float64 // m
	Slope      []float64 // rad
	Deflection []float64 // m, positive in the direction of lift

	Rigidity float64 // E·I (N·m²)
	Tip      float64 // m
	TipSlope float64 // rad
}

// Bend integrates the curvature M/(E·I) twice from the clamped root, where
// slope and deflection are zero. E·I is constant along the span.
func Bend(y, moment []float64, rigidity float64) (*BendResult, error) {
	if rigidity <= 0 || math.IsNaN(rigidity) {
		return nil, &ValidationError{msg: fmt.Sprintf("flexural rigidity must be positive, got %.4g N·m²", rigidity)}
	}
	curvature := make([]float64, len(moment))
	for i, m := range moment {
		curvature[i] = m / rigidity
	}
	slope, err := integrate.CumulativeFromRoot(y, curvature)
	if err != nil {
		return nil, err
	}
	deflection, err := integrate.CumulativeFromRoot(y, slope)
	if err != nil {
		return nil, err
	}
	n := len(y)
	return &BendResult{
		Y:          y,
		Slope:      slope,
		Deflection: deflection,
		Rigidity:   rigidity,
		Tip:        deflection[n-1],
		TipSlope:   slope[n-1],
	}, nil
}

// TwistResult is the elastic twist of a spar clamped at the root
type TwistResult struct {
	Y     []float64 // m
	Angle []float64 // rad

	Rigidity float64 // G·J (N·m²)
	Tip      float64 // rad
}

// Twist integrates the rate of twist T/(G·J) from the clamped root. torque
// is the internal torque carried at each station, i.e. the torque per unit
// span integrated from the tip.
func Twist(y, torque []float64, rigidity float64) (*TwistResult, error) {
	if rigidity <= 0 || math.IsNaN(rigidity) {
		return nil, &ValidationError{msg: fmt.Sprintf("torsional rigidity must be positive, got %.4g N·m²", rigidity)}
	}
	rate := make([]float64, len(torque))
	for i, t := range torque {
		rate[i] = t / rigidity
	}
	angle, err := integrate.CumulativeFromRoot(y, rate)
	if err != nil {
		return nil, err
	}
	return &TwistResult{
		Y:        y,
		Angle:    angle,
		Rigidity: rigidity,
		Tip:      angle[len(angle)-1],
	}, nil
}

// CantileverTip returns the tip deflection (m) of a cantilever of the given
// length under a uniform load whose root moment is M (N·m): M·L²/(4·E·I)
func CantileverTip(moment, length, rigidity float64) float64 {
	if rigidity <= 0 {
		return math.Inf(1)
	}
	return moment * length * length / (4 * rigidity)
}
