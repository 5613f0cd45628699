package loads

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gowing/internal/wing"
	"github.com/cpmech/gosl/chk"
)

func Test_lift01(tst *testing.T) {

	chk.PrintTitle("lift01. elliptical lift at root and tip")

	w := wing.New(32.8, 3.28, 3.28, 1.0, 0.0023769, 164.0)
	root := 4 * 1.0 * 0.0023769 * 164.0 * 164.0 * 3.28 / (math.Pi * 32.8)
	chk.Float64(tst, "L'(0)  ", 1e-12, LiftAt(w, 0), root)
	chk.Float64(tst, "L'(b/2)", 1e-15, LiftAt(w, 16.4), 0)

	// beyond the tip the radicand is clamped instead of producing NaN
	if v := LiftAt(w, 16.5); math.IsNaN(v) || v != 0 {
		tst.Errorf("lift past the tip should be 0, got %v", v)
	}
}

func Test_loads01(tst *testing.T) {

	chk.PrintTitle("loads01. hand computed three-station case")

	// span 2, constant chord 1, CL = ρ = V = 1 -> L'(y) = 2/π·sqrt(1-y²)
	w := wing.New(2, 1, 1, 1, 1, 1)
	d, err := Compute(w, []float64{0, 0.5, 1}, Options{SafetyFactor: 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	l0 := 2 / math.Pi
	l1 := 2 / math.Pi * math.Sqrt(0.75)
	chk.Array(tst, "lift  ", 1e-15, d.Lifts(), []float64{l0, l1, 0})

	load0, load1 := l0*0.5, l1*0.5
	chk.Array(tst, "shear ", 1e-15, d.Shears(), []float64{load0 + load1, load1, 0})
	chk.Array(tst, "moment", 1e-15, d.Moments(), []float64{load1 * 0.5, 0, 0})
	chk.Float64(tst, "total lift", 1e-15, d.TotalLift, 2*(load0+load1))
	chk.Float64(tst, "peak lift ", 1e-15, d.PeakLift, l0)
}

func Test_loads02(tst *testing.T) {

	chk.PrintTitle("loads02. boundary conditions at the tip")

	w := wing.New(32.8, 3.28, 1.64, 1.0, 0.0023769, 164.0)
	y, _ := w.Stations(100)
	for _, model := range []LiftModel{Elliptical, Schrenk} {
		d, err := Compute(w, y, Options{SafetyFactor: 1.3, Model: model})
		if err != nil {
			tst.Fatalf("%s: unexpected error: %v", model, err)
		}
		tip := d.Stations[len(d.Stations)-1]
		if tip.Lift != 0 || tip.Shear != 0 || tip.Moment != 0 {
			tst.Errorf("%s: tip must be unloaded, got lift=%v shear=%v moment=%v", model, tip.Lift, tip.Shear, tip.Moment)
		}
		for i := 1; i < len(d.Stations); i++ {
			if d.Stations[i].Shear > d.Stations[i-1].Shear {
				tst.Errorf("%s: shear must not grow towards the tip (station %d)", model, i)
				break
			}
		}
	}
}

func Test_loads03(tst *testing.T) {

	chk.PrintTitle("loads03. safety factor scaling")

	w := wing.New(10, 2, 1, 1.2, 1.225, 40)
	y, _ := w.Stations(41)
	base, err := Compute(w, y, Options{SafetyFactor: 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	factored, _ := Compute(w, y, DefaultOptions())
	for i := range y {
		b, f := base.Stations[i], factored.Stations[i]
		chk.Float64(tst, "load  ", 1e-9, f.Load, DefaultSafetyFactor*b.Load)
		chk.Float64(tst, "shear ", 1e-9, f.Shear, DefaultSafetyFactor*b.Shear)
		chk.Float64(tst, "moment", 1e-9, f.Moment, DefaultSafetyFactor*b.Moment)
		chk.Float64(tst, "lift  ", 1e-15, f.Lift, b.Lift)
	}
	chk.Float64(tst, "root shear = half lift", 1e-8, base.RootShear, base.TotalLift/2)

	// non-positive factor is treated as 1
	unit, _ := Compute(w, y, Options{SafetyFactor: 0})
	chk.Float64(tst, "sf<=0", 1e-15, unit.RootMoment, base.RootMoment)
}

func Test_loads04(tst *testing.T) {

	chk.PrintTitle("loads04. invalid input")

	w := wing.New(10, 2, 1, 1.2, 1.225, 40)
	if _, err := Compute(w, []float64{0}, DefaultOptions()); err == nil {
		tst.Errorf("single station must be rejected")
	}
	if _, err := Compute(w, []float64{0, 2, 1}, DefaultOptions()); err == nil {
		tst.Errorf("unordered stations must be rejected")
	}
	if _, err := Compute(wing.New(0, 2, 1, 1, 1, 1), []float64{0, 1}, DefaultOptions()); err == nil {
		tst.Errorf("invalid wing must be rejected")
	}
	if _, err := ParseLiftModel("vortex"); err == nil {
		tst.Errorf("unknown lift model must be rejected")
	}
	if m, _ := ParseLiftModel(" Schrenk "); m != Schrenk {
		tst.Errorf("expected schrenk, got %q", m)
	}
}

func Test_loads05(tst *testing.T) {

	chk.PrintTitle("loads05. negative lift keeps its peak")

	y := []float64{0, 0.5, 1}
	up, err := Compute(wing.New(2, 1, 1, 1, 1, 1), y, Options{SafetyFactor: 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	down, err := Compute(wing.New(2, 1, 1, -1, 1, 1), y, Options{SafetyFactor: 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "peak up  ", 1e-15, up.PeakLift, 2/math.Pi)
	chk.Float64(tst, "peak down", 1e-15, down.PeakLift, -2/math.Pi)
	chk.Float64(tst, "moment   ", 1e-15, down.RootMoment, -up.RootMoment)
}
