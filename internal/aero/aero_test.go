package aero

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gowing/internal/wing"
	"github.com/cpmech/gosl/chk"
)

func Test_wingloading01(tst *testing.T) {

	chk.PrintTitle("wingloading01. panel loading")

	r, err := WingLoading(40, 5.25, 3.25, 7.8333, 7.1667)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "total lb/ft²", 1e-12, r.TotalPerFt2, 40/15.0)
	chk.Float64(tst, "total lb/in²", 1e-12, r.TotalPerIn2, 40/(15.0*144))
	chk.Float64(tst, "inner lb/ft²", 1e-12, r.InnerPerFt2, 5.25/7.8333)
	chk.Float64(tst, "outer lb/in²", 1e-12, r.OuterPerIn2, 3.25/(7.1667*144))

	for _, areas := range [][2]float64{{0, 7}, {7, -1}} {
		if _, err := WingLoading(40, 5, 3, areas[0], areas[1]); !errors.Is(err, ErrNonPositiveArea) {
			tst.Errorf("areas %v: expected ErrNonPositiveArea, got %v", areas, err)
		}
	}
}

func Test_aileron01(tst *testing.T) {

	chk.PrintTitle("aileron01. Gudmundsson sizing")

	cld, err := ClDelta(15, 30, 0.9)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "cl_delta", 1e-12, cld, 2*math.Pi*0.9/7.5)

	in := AileronInput{
		Span: 15, Area: 30, RollRate: 0.274, Airspeed: 30,
		ClDelta: 2.78, Effectiveness: 0.9, TaperRatio: 0.333, RootChord: 3,
	}
	r, err := SizeAileron(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	adj := 2.78 * 1.333 / 2
	cm := 2 * 0.274 * 15 / (30 * adj)
	chk.Float64(tst, "cl_delta adj", 1e-12, r.ClDeltaAdjusted, adj)
	chk.Float64(tst, "area        ", 1e-12, r.Area, cm*30/(2*adj*0.9))
	chk.Float64(tst, "length      ", 1e-12, r.Length, 3)
	chk.Float64(tst, "chord       ", 1e-12, r.Chord, 0.25*(3+3*0.333)/2)
	if r.Capped {
		tst.Errorf("area should not be capped")
	}

	// a very slow aircraft needs more than the whole wing -> capped
	in.Airspeed = 0.01
	r, _ = SizeAileron(in)
	if !r.Capped {
		tst.Errorf("area should be capped")
	}
	chk.Float64(tst, "capped area", 1e-12, r.Area, 30*AileronAreaCap)
}

func Test_aileron02(tst *testing.T) {

	chk.PrintTitle("aileron02. hinge torque")

	a := Aileron{
		RootChord: 0.5, TipChord: 0.333, Span: 2.58333, HingeLine: 0.1,
		LiftCoefficient: 1.2, Density: 0.002377, Velocity: 38,
	}
	q := 0.5 * 0.002377 * 38 * 38
	lift := q * 1.2 * 0.4165 * 2.58333
	arm := 0.25*0.4165 - 0.1
	chk.Float64(tst, "lift  ", 1e-12, a.LiftForce(), lift)
	chk.Float64(tst, "arm   ", 1e-14, a.MomentArm(), arm)
	chk.Float64(tst, "torque", 1e-12, a.HingeTorque(), lift*arm*12)
}

func Test_pressure01(tst *testing.T) {

	chk.PrintTitle("pressure01. center of pressure and moment arms")

	a := Airfoil{Chord: 36, LiftCoefficient: 1.274, MomentCoefficient: -0.176, Density: 0.0023769, Velocity: 38}
	cp, err := a.CenterOfPressure()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "x_cp", 1e-12, cp, 9+(-0.176*36)/1.274)

	a.LiftCoefficient = 0
	if _, err := a.CenterOfPressure(); err == nil {
		tst.Errorf("zero lift must be rejected")
	}

	w := wing.New(180, 36, 12, 1, 1, 1)
	lift, drag := MomentArms(w, []float64{0, 45, 90})
	chk.Array(tst, "lift arms", 1e-12, lift, []float64{9, 6, 3})
	chk.Array(tst, "drag arms", 1e-12, drag, []float64{18, 12, 6})
}
