package integrate

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_trapezoid01(tst *testing.T) {

	chk.PrintTitle("trapezoid01. linear profile")

	// f = x on [0, 2] -> 2
	x := []float64{0, 0.5, 1, 1.5, 2}
	f := []float64{0, 0.5, 1, 1.5, 2}
	res, err := Trapezoid(x, f)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "∫x dx", 1e-15, res, 2.0)

	// non-uniform spacing is exact for linear data too
	x = []float64{0, 0.1, 1.3, 2}
	f = []float64{1, 1.2, 3.6, 5}
	res, _ = Trapezoid(x, f)
	chk.Float64(tst, "∫(1+2x) dx", 1e-14, res, 6.0)
}

func Test_trapezoid02(tst *testing.T) {

	chk.PrintTitle("trapezoid02. bad input")

	if _, err := Trapezoid([]float64{0}, []float64{1}); !errors.Is(err, ErrLength) {
		tst.Errorf("expected ErrLength for a single sample, got %v", err)
	}
	if _, err := Trapezoid([]float64{0, 1}, []float64{1}); !errors.Is(err, ErrLength) {
		tst.Errorf("expected ErrLength for mismatched input, got %v", err)
	}
}

func Test_cumulative01(tst *testing.T) {

	chk.PrintTitle("cumulative01. integral from tip")

	x := []float64{0, 1, 2, 3}
	f := []float64{3, 2, 1, 0}
	res, err := CumulativeFromTip(x, f)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Array(tst, "F", 1e-15, res, []float64{4.5, 2, 0.5, 0})

	total, _ := Trapezoid(x, f)
	chk.Float64(tst, "F(root) = total", 1e-15, res[0], total)
}

func Test_cumulative02(tst *testing.T) {

	chk.PrintTitle("cumulative02. integral from root and ordering")

	// the trapezoid rule is exact for linear data: f = 2x -> F(x) = x²
	x := []float64{0, 0.25, 0.5, 1}
	f := []float64{0, 0.5, 1, 2}
	res, err := CumulativeFromRoot(x, f)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Array(tst, "F", 1e-15, res, []float64{0, 0.0625, 0.25, 1})

	tip, _ := CumulativeFromTip(x, f)
	for i := range x {
		chk.Float64(tst, "root + tip = total", 1e-15, res[i]+tip[i], 1)
	}

	if _, err := Trapezoid([]float64{0, 2, 1}, []float64{1, 1, 1}); !errors.Is(err, ErrUnsorted) {
		tst.Errorf("expected ErrUnsorted, got %v", err)
	}
	if _, err := CumulativeFromTip([]float64{0}, []float64{1}); !errors.Is(err, ErrLength) {
		tst.Errorf("expected ErrLength, got %v", err)
	}
}
