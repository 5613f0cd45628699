// Package integrate holds the discrete integration rules shared by the
// spanwise load, torsion and deflection calculations.
package integrate

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// ErrLength is returned when the sample arrays cannot be integrated
var ErrLength = errors.New("integrate: x and f must have the same length of at least 2")

// ErrUnsorted is returned when the abscissae are not in increasing order
var ErrUnsorted = errors.New("integrate: x must be sorted in increasing order")

func check(x, f []float64) error {
	if len(x) != len(f) || len(x) < 2 {
		return fmt.Errorf("%w (len(x)=%d, len(f)=%d)", ErrLength, len(x), len(f))
	}
	if !sort.Float64sAreSorted(x) {
		return ErrUnsorted
	}
	return nil
}

// Trapezoid integrates the samples f(x) with the trapezoidal rule.
// x must be ordered; spacing need not be uniform.
func Trapezoid(x, f []float64) (float64, error) {
	if err := check(x, f); err != nil {
		return 0, err
	}
	return integrate.Trapezoidal(x, f), nil
}

// CumulativeFromRoot returns, for each station i, the trapezoidal integral
// of f from x[0] to x[i]. The first value is always zero.
func CumulativeFromRoot(x, f []float64) ([]float64, error) {
	if err := check(x, f); err != nil {
		return nil, err
	}
	n := len(x)
	areas := make([]float64, n-1)
	for i := range areas {
		areas[i] = integrate.Trapezoidal(x[i:i+2], f[i:i+2])
	}
	out := make([]float64, n)
	floats.CumSum(out[1:], areas)
	return out, nil
}

// CumulativeFromTip returns, for each station i, the trapezoidal integral of
// f from x[i] to the last sample. The last value is always zero.
func CumulativeFromTip(x, f []float64) ([]float64, error) {
	fromRoot, err := CumulativeFromRoot(x, f)
	if err != nil {
		return nil, err
	}
	total := fromRoot[len(fromRoot)-1]
	out := make([]float64, len(fromRoot))
	for i, v := range fromRoot {
		out[i] = total - v
	}
	return out, nil
}
