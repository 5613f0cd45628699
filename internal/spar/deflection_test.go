package spar

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func linspace(a, b float64, n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return y
}

func Test_bend01(tst *testing.T) {

	chk.PrintTitle("bend01. cantilever closed forms")

	// constant moment: slope M·y/EI, deflection M·y²/(2EI), exact for trapezoids
	L, m0, ei := 1.5, 120.0, 800.0
	y := linspace(0, L, 31)
	moment := make([]float64, len(y))
	for i := range moment {
		moment[i] = m0
	}
	b, err := Bend(y, moment, ei)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "tip slope ", 1e-12, b.TipSlope, m0*L/ei)
	chk.Float64(tst, "tip       ", 1e-12, b.Tip, m0*L*L/(2*ei))
	chk.Float64(tst, "root      ", 1e-15, b.Deflection[0], 0)
	chk.Float64(tst, "root slope", 1e-15, b.Slope[0], 0)

	// uniform load q: M(y) = q(L-y)²/2, tip deflection qL⁴/(8EI)
	L, q, ei := 2.0, 10.0, 1000.0
	y = linspace(0, L, 2001)
	moment = make([]float64, len(y))
	for i, yi := range y {
		moment[i] = q * (L - yi) * (L - yi) / 2
	}
	b, err = Bend(y, moment, ei)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "qL⁴/8EI   ", 1e-6, b.Tip, q*L*L*L*L/(8*ei))
	chk.Float64(tst, "qL³/6EI   ", 1e-6, b.TipSlope, q*L*L*L/(6*ei))
	chk.Float64(tst, "M·L²/4EI  ", 1e-6, CantileverTip(moment[0], L, ei), b.Tip)

	if _, err := Bend(y, moment, 0); err == nil {
		tst.Errorf("zero rigidity must be rejected")
	}
	if !math.IsInf(CantileverTip(1, 1, 0), 1) {
		tst.Errorf("zero rigidity must give an infinite tip deflection")
	}
}

func Test_twist01(tst *testing.T) {

	chk.PrintTitle("twist01. constant torque")

	L, t0, gj := 1.2, 15.0, 300.0
	y := linspace(0, L, 11)
	torque := make([]float64, len(y))
	for i := range torque {
		torque[i] = t0
	}
	tw, err := Twist(y, torque, gj)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "T·L/GJ", 1e-12, tw.Tip, t0*L/gj)
	chk.Float64(tst, "root  ", 1e-15, tw.Angle[0], 0)

	if _, err := Twist(y, torque, -1); err == nil {
		tst.Errorf("negative rigidity must be rejected")
	}
}

func Test_section02(tst *testing.T) {

	chk.PrintTitle("section02. bending and torsional rigidity")

	// 40 x 20 outer, 2 mm walls; midline 18 x 38
	s := Section{Height: 40, Width: 20, WebThickness: 2, FlangeThickness: 2}
	am := 18.0 * 38.0
	j := 4 * am * am / (2*18.0/2 + 2*38.0/2)
	chk.Float64(tst, "J ", 1e-9, s.TorsionConstant(), j)
	chk.Float64(tst, "EI", 1e-9, s.FlexuralRigidity(70), 70e9*s.SecondMoment()*1e-12)
	chk.Float64(tst, "GJ", 1e-9, s.TorsionalRigidity(26), 26e9*j*1e-12)

	res, err := Analyze(s, 276, 500)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "J reported", 1e-9, res.TorsionConstant, j)
	chk.Float64(tst, "tip", 1e-12, res.TipDeflection(70, 1.5), 500*1.5*1.5/(4*s.FlexuralRigidity(70)))
}

func Test_design04(tst *testing.T) {

	chk.PrintTitle("design04. deflection-limited search")

	// linearly decreasing moment over a 2 m half span
	m0, L, e := 850.0, 2.0, 68.9
	y := linspace(0, L, 41)
	moment := make([]float64, len(y))
	for i, yi := range y {
		moment[i] = m0 * (1 - yi/L)
	}
	limit := DeflectionLimit{Y: y, Moment: moment, ElasticModulus: e, MaxTip: 0.05}

	strength, err := Design(m0, 276, DefaultStart(), DefaultSteps())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	loose, err := Bend(y, moment, strength.Section.FlexuralRigidity(e))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if loose.Tip <= limit.MaxTip {
		tst.Fatalf("strength-sized spar must exceed the limit for this test, tip %g m", loose.Tip)
	}

	stiff, err := DesignStiff(m0, 276, DefaultStart(), DefaultSteps(), limit)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if stiff.Section.Height <= strength.Section.Height {
		tst.Errorf("stiff spar must be deeper: %s vs %s", stiff.Section, strength.Section)
	}
	if stiff.TipDeflection > limit.MaxTip || !stiff.IsAdequate {
		tst.Errorf("tip %g m exceeds limit %g m", stiff.TipDeflection, limit.MaxTip)
	}
	if stiff.GovernedBy != "deflection" {
		tst.Errorf("expected deflection to govern, got %q", stiff.GovernedBy)
	}
	check, _ := Bend(y, moment, stiff.Section.FlexuralRigidity(e))
	chk.Float64(tst, "tip", 1e-12, stiff.TipDeflection, check.Tip)

	prev := stiff.Section
	prev.Height -= DefaultSteps().Height
	prev.Width -= DefaultSteps().Width
	before, _ := Bend(y, moment, prev.FlexuralRigidity(e))
	if before.Tip <= limit.MaxTip {
		tst.Errorf("search overshot, previous step already within the limit")
	}

	// a generous limit leaves strength in charge
	limit.MaxTip = 10
	relaxed, err := DesignStiff(m0, 276, DefaultStart(), DefaultSteps(), limit)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "H", 1e-15, relaxed.Section.Height, strength.Section.Height)
	if relaxed.GovernedBy != "strength" {
		tst.Errorf("expected strength to govern, got %q", relaxed.GovernedBy)
	}

	limit.MaxTip = 0
	if _, err := DesignStiff(m0, 276, DefaultStart(), DefaultSteps(), limit); err == nil {
		tst.Errorf("a zero limit must be rejected")
	}
}
