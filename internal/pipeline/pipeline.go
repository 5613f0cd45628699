// Package pipeline chains the spanwise analysis of one half wing:
// stations, lift and load accumulation, spar sizing at the root and the
// torsional load, and the elastic bending and twist of the sized spar.
package pipeline

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/loadcase"
	"github.com/alexiusacademia/gowing/internal/loads"
	"github.com/alexiusacademia/gowing/internal/material"
	"github.com/alexiusacademia/gowing/internal/spar"
	"github.com/alexiusacademia/gowing/internal/torsion"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Result collects every stage of one run
type Result struct {
	Case     *config.Case
	Wing     *wing.Wing
	Material material.Material
	Yield    float64 // MPa actually used for sizing

	Loads   *loads.Distribution
	Spar    *spar.DesignResult
	Torsion *torsion.Result

	Bend  *spar.BendResult  // under the design moments
	Twist *spar.TwistResult // nil when the material has no shear modulus

	LoadFactor   float64
	DesignMoment float64 // root moment times the load factor (N·m)
	SparMass     float64 // kg, one half wing
}

// Run executes the analysis described by c. Unset case fields must have
// been filled with Case.ApplyDefaults.
func Run(c *config.Case) (*Result, error) {
	w, err := c.BuildWing()
	if err != nil {
		return nil, err
	}

	mat, err := material.Lookup(materialName(c.Spar.Material))
	if err != nil {
		return nil, err
	}
	yield := mat.YieldStrength
	if c.Spar.YieldStrength > 0 {
		yield = c.Spar.YieldStrength
	}

	model, err := loads.ParseLiftModel(c.Analysis.LiftModel)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"case":     c.Name,
		"span":     w.Span,
		"density":  w.Density,
		"velocity": w.Velocity,
		"model":    model,
	}).Debug("pipeline started")

	y, err := w.Stations(c.Analysis.Stations)
	if err != nil {
		return nil, err
	}

	dist, err := loads.Compute(w, y, loads.Options{SafetyFactor: c.Analysis.SafetyFactor, Model: model})
	if err != nil {
		return nil, fmt.Errorf("load distribution: %w", err)
	}
	log.WithFields(log.Fields{
		"stations":    len(y),
		"root_shear":  dist.RootShear,
		"root_moment": dist.RootMoment,
	}).Debug("loads accumulated")

	n := c.Analysis.LoadFactor
	if n == 0 {
		n = 1
	}
	moment := dist.RootMoment * n
	if moment < 0 {
		moment = -moment
	}

	// design moments along the span, signed
	moments := dist.Moments()
	for i := range moments {
		moments[i] *= n
	}

	var design *spar.DesignResult
	if c.Spar.MaxTipDeflection > 0 {
		design, err = spar.DesignStiff(moment, yield, c.Spar.Start, c.Spar.Steps, spar.DeflectionLimit{
			Y:              y,
			Moment:         moments,
			ElasticModulus: mat.ElasticModulus,
			MaxTip:         c.Spar.MaxTipDeflection,
		})
	} else {
		design, err = spar.Design(moment, yield, c.Spar.Start, c.Spar.Steps)
	}
	if err != nil {
		return nil, fmt.Errorf("spar sizing: %w", err)
	}

	bend, err := spar.Bend(y, moments, design.Section.FlexuralRigidity(mat.ElasticModulus))
	if err != nil {
		return nil, fmt.Errorf("spar bending: %w", err)
	}

	tor, err := torsion.Compute(w, dist, c.Torsion)
	if err != nil {
		return nil, fmt.Errorf("torsion: %w", err)
	}

	var twist *spar.TwistResult
	if gj := design.Section.TorsionalRigidity(mat.ShearModulus); gj > 0 {
		twist, err = spar.Twist(tor.Y, tor.Cumulative, gj)
		if err != nil {
			return nil, fmt.Errorf("spar twist: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"spar":   design.Section.String(),
		"torque": tor.Total,
		"tip":    bend.Tip,
	}).Debug("pipeline finished")

	return &Result{
		Case:         c,
		Wing:         w,
		Material:     mat,
		Yield:        yield,
		Loads:        dist,
		Spar:         design,
		Torsion:      tor,
		Bend:         bend,
		Twist:        twist,
		LoadFactor:   n,
		DesignMoment: moment,
		SparMass:     design.Section.MassPerLength(mat.Density) * w.SemiSpan(),
	}, nil
}

// Governing returns the 1 g root moment of r factored by the load case
// with the largest magnitude. The run's own safety factor is removed first.
func (r *Result) Governing(cases []loadcase.LoadCase) (float64, loadcase.LoadCase) {
	return loadcase.Governing(r.Loads.RootMoment/r.Loads.SafetyFactor, cases)
}

func materialName(name string) string {
	if name == "" {
		return material.Default
	}
	return name
}
