package pipeline

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/loadcase"
	"github.com/alexiusacademia/gowing/internal/spar"
	"github.com/cpmech/gosl/chk"
)

func sampleCase() *config.Case {
	c := &config.Case{
		Name: "trainer",
		Wing: config.WingSpec{
			Span: 3, RootChord: 0.4, TipChord: 0.25,
			LiftCoefficient: 1.1, Density: 1.225, Velocity: 20,
		},
		Spar: config.SparSpec{Material: "6061-T6"},
	}
	c.ApplyDefaults(config.DefaultSettings())
	return c
}

func Test_run01(tst *testing.T) {

	chk.PrintTitle("run01. full pipeline")

	c := sampleCase()
	r, err := Run(c)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	n := len(r.Loads.Stations)
	chk.Int(tst, "stations", n, c.Analysis.Stations)
	tip := r.Loads.Stations[n-1]
	chk.Float64(tst, "tip lift  ", 1e-15, tip.Lift, 0)
	chk.Float64(tst, "tip shear ", 1e-15, tip.Shear, 0)
	chk.Float64(tst, "tip moment", 1e-15, tip.Moment, 0)

	chk.Float64(tst, "design moment", 1e-12, r.DesignMoment, r.Loads.RootMoment)
	chk.Float64(tst, "yield        ", 1e-15, r.Yield, 276)
	if r.Spar.Modulus < spar.RequiredModulus(r.DesignMoment, r.Yield) {
		tst.Errorf("spar modulus %.2f below required", r.Spar.Modulus)
	}
	if r.Torsion.Total <= 0 {
		tst.Errorf("positive lift behind the shear center must give positive torque, got %v", r.Torsion.Total)
	}
	// torsion fills the station records
	chk.Float64(tst, "root torque", 1e-15, r.Loads.Stations[0].Torque, r.Torsion.Torque[0])
	if r.SparMass <= 0 {
		tst.Errorf("spar mass must be positive, got %v", r.SparMass)
	}
}

func Test_run02(tst *testing.T) {

	chk.PrintTitle("run02. load factor and yield override")

	base, err := Run(sampleCase())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	c := sampleCase()
	c.Analysis.LoadFactor = 3.8
	c.Spar.YieldStrength = 200
	r, err := Run(c)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "n·M  ", 1e-9, r.DesignMoment, 3.8*base.Loads.RootMoment)
	chk.Float64(tst, "yield", 1e-15, r.Yield, 200)
	if r.Spar.Section.Height < base.Spar.Section.Height {
		tst.Errorf("a larger moment cannot give a smaller spar")
	}

	m, lc := base.Governing(loadcase.Cases)
	chk.Float64(tst, "governing", 1e-9, m, 3.8*1.5*base.Loads.RootMoment/1.3)
	if lc.LoadFactor != 3.8 {
		tst.Errorf("expected the positive limit maneuver to govern, got %+v", lc)
	}
}

func Test_run03(tst *testing.T) {

	chk.PrintTitle("run03. failures")

	c := sampleCase()
	c.Spar.Material = "unobtainium"
	if _, err := Run(c); err == nil {
		tst.Errorf("unknown material must be rejected")
	}

	c = sampleCase()
	c.Analysis.LiftModel = "panel"
	if _, err := Run(c); err == nil {
		tst.Errorf("unknown lift model must be rejected")
	}

	c = sampleCase()
	c.Spar.YieldStrength = 1
	c.Spar.Steps.MaxIterations = 1
	if _, err := Run(c); !errors.Is(err, spar.ErrNoConvergence) {
		tst.Errorf("expected ErrNoConvergence, got %v", err)
	}

	c = sampleCase()
	c.Wing.Velocity = 0
	if _, err := Run(c); err == nil {
		tst.Errorf("zero velocity must be rejected")
	}
}

func Test_run04(tst *testing.T) {

	chk.PrintTitle("run04. spar bending, twist and a deflection limit")

	base, err := Run(sampleCase())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	n := len(base.Bend.Deflection)
	chk.Float64(tst, "root deflection", 1e-15, base.Bend.Deflection[0], 0)
	chk.Float64(tst, "tip            ", 1e-15, base.Bend.Tip, base.Bend.Deflection[n-1])
	if base.Bend.Tip <= 0 {
		tst.Errorf("positive lift must bend the tip up, got %v", base.Bend.Tip)
	}
	ei := base.Spar.Section.FlexuralRigidity(base.Material.ElasticModulus)
	chk.Float64(tst, "EI", 1e-9, base.Bend.Rigidity, ei)
	if base.Twist == nil || base.Twist.Tip <= 0 {
		tst.Fatalf("positive torque must twist the tip, got %+v", base.Twist)
	}
	chk.Float64(tst, "GJ", 1e-9, base.Twist.Rigidity, base.Spar.Section.TorsionalRigidity(base.Material.ShearModulus))

	c := sampleCase()
	c.Spar.MaxTipDeflection = base.Bend.Tip / 2
	r, err := Run(c)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if r.Spar.Section.Height <= base.Spar.Section.Height {
		tst.Errorf("halving the tip deflection needs a deeper spar: %s vs %s", r.Spar.Section, base.Spar.Section)
	}
	if r.Bend.Tip > c.Spar.MaxTipDeflection {
		tst.Errorf("tip %g m exceeds the limit %g m", r.Bend.Tip, c.Spar.MaxTipDeflection)
	}
	chk.Float64(tst, "reported tip", 1e-12, r.Spar.TipDeflection, r.Bend.Tip)
	if r.Spar.GovernedBy != "deflection" {
		tst.Errorf("expected deflection to govern, got %q", r.Spar.GovernedBy)
	}
}
