package spar

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// ErrNoConvergence is returned when the sizing search runs out of iterations
var ErrNoConvergence = errors.New("spar sizing did not reach the required section modulus")

// Steps are the fixed increments applied to the outer dimensions on each
// iteration of the sizing search
type Steps struct {
	Height        float64 `yaml:"height_step"` // mm
	Width         float64 `yaml:"width_step"`  // mm
	MaxIterations int     `yaml:"max_iterations"`
}

// DefaultStart is the smallest section the search starts from
func DefaultStart() Section {
	return Section{Height: 20, Width: 10, WebThickness: 1.5, FlangeThickness: 2}
}

// DefaultSteps grows the section 1 mm in depth and 0.5 mm in width per step
func DefaultSteps() Steps {
	return Steps{Height: 1, Width: 0.5, MaxIterations: 10000}
}

// RequiredModulus returns M/σy in mm³ for a moment in N·m and a yield
// strength in MPa
func RequiredModulus(moment, yield float64) float64 {
	return moment * 1e3 / yield
}

// DesignResult holds the outcome of the sizing search
type DesignResult struct {
	Section Section

	RequiredModulus float64 // mm³
	Modulus         float64 // achieved Z (mm³)
	SecondMoment    float64 // mm⁴
	Area            float64 // mm²

	Moment         float64 // design moment (N·m)
	MomentCapacity float64 // Z·σy (N·m)
	Stress         float64 // M/Z (MPa)
	MarginOfSafety float64 // capacity/M - 1
	Iterations     int

	// Set only when the search was bounded by a deflection limit
	TipDeflection float64 // m
	MaxTip        float64 // m
	GovernedBy    string  // "strength" or "deflection"

	IsAdequate bool
	Message    string
}

// DeflectionLimit bounds the tip deflection of the sized spar. Y and Moment
// are the spanwise stations (m) and bending moments (N·m) the spar carries.
type DeflectionLimit struct {
	Y              []float64
	Moment         []float64
	ElasticModulus float64 // GPa
	MaxTip         float64 // m
}

// Design grows a hollow rectangular section from start by the fixed steps
// until its section modulus meets M/σy. Wall thicknesses stay fixed.
func Design(moment, yield float64, start Section, steps Steps) (*DesignResult, error) {
	return search(moment, yield, start, steps, nil)
}

// DesignStiff runs the same search as Design but keeps growing the section
// until the tip deflection under limit.Moment is also within limit.MaxTip.
func DesignStiff(moment, yield float64, start Section, steps Steps, limit DeflectionLimit) (*DesignResult, error) {
	if limit.ElasticModulus <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("elastic modulus must be positive, got %.4g GPa", limit.ElasticModulus)}
	}
	if limit.MaxTip <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("tip deflection limit must be positive, got %.4g m", limit.MaxTip)}
	}
	// tip deflection scales with 1/EI for a constant section
	unit, err := Bend(limit.Y, limit.Moment, 1)
	if err != nil {
		return nil, err
	}
	return search(moment, yield, start, steps, &stiffness{
		modulus: limit.ElasticModulus,
		maxTip:  limit.MaxTip,
		unitTip: math.Abs(unit.Tip),
	})
}

type stiffness struct {
	modulus float64
	maxTip  float64
	unitTip float64 // tip deflection for EI = 1
}

func (s *stiffness) tip(sec Section) float64 {
	return s.unitTip / sec.FlexuralRigidity(s.modulus)
}

func search(moment, yield float64, start Section, steps Steps, stiff *stiffness) (*DesignResult, error) {
	if moment <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("design moment must be positive, got %.4g N·m", moment)}
	}
	if yield <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("yield strength must be positive, got %.4g MPa", yield)}
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if steps.Height < 0 || steps.Width < 0 || (steps.Height == 0 && steps.Width == 0) {
		return nil, &ValidationError{msg: fmt.Sprintf("size steps must be non-negative and not both zero: dH=%.2f, dB=%.2f", steps.Height, steps.Width)}
	}
	if steps.MaxIterations <= 0 {
		steps.MaxIterations = DefaultSteps().MaxIterations
	}

	zReq := RequiredModulus(moment, yield)
	strong := func(sec Section) bool { return sec.SectionModulus() >= zReq }
	stiffEnough := func(sec Section) bool { return stiff == nil || stiff.tip(sec) <= stiff.maxTip }

	sec := start
	iter := 0
	governing := "strength"
	for !strong(sec) || !stiffEnough(sec) {
		if iter >= steps.MaxIterations {
			return nil, fmt.Errorf("%w after %d iterations (Z=%.1f mm³, required %.1f mm³)",
				ErrNoConvergence, iter, sec.SectionModulus(), zReq)
		}
		if strong(sec) {
			governing = "deflection"
		}
		sec.Height += steps.Height
		sec.Width += steps.Width
		iter++
	}

	result := &DesignResult{
		Section:         sec,
		RequiredModulus: zReq,
		Modulus:         sec.SectionModulus(),
		SecondMoment:    sec.SecondMoment(),
		Area:            sec.Area(),
		Moment:          moment,
		Iterations:      iter,
	}
	result.MomentCapacity = result.Modulus * yield / 1e3
	result.Stress = moment * 1e3 / result.Modulus
	result.MarginOfSafety = result.MomentCapacity/moment - 1
	result.IsAdequate = result.Modulus >= zReq
	result.Message = fmt.Sprintf("Design OK - %s after %d step(s)", sec, iter)
	if stiff != nil {
		result.TipDeflection = stiff.tip(sec)
		result.MaxTip = stiff.maxTip
		result.GovernedBy = governing
		result.IsAdequate = result.IsAdequate && result.TipDeflection <= result.MaxTip
		result.Message = fmt.Sprintf("Design OK - %s after %d step(s), %s governs", sec, iter, governing)
	}

	log.WithFields(log.Fields{
		"moment":     moment,
		"yield":      yield,
		"required":   zReq,
		"achieved":   result.Modulus,
		"iterations": iter,
		"governs":    governing,
	}).Debug("spar sized")

	return result, nil
}

// AnalysisResult holds the capacity check of a given section
type AnalysisResult struct {
	Section Section

	Modulus         float64 // mm³
	SecondMoment    float64 // mm⁴
	TorsionConstant float64 // mm⁴
	Area            float64 // mm²

	Moment         float64 // N·m
	MomentCapacity float64 // N·m
	Stress         float64 // MPa
	Utilization    float64 // M / capacity
	MarginOfSafety float64

	IsAdequate bool
	Message    string
}

// Analyze checks a given section against a bending moment (N·m) for a
// yield strength in MPa
func Analyze(sec Section, yield, moment float64) (*AnalysisResult, error) {
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	if yield <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("yield strength must be positive, got %.4g MPa", yield)}
	}
	if moment < 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("bending moment must not be negative, got %.4g N·m", moment)}
	}

	result := &AnalysisResult{
		Section:      sec,
		Modulus:         sec.SectionModulus(),
		SecondMoment:    sec.SecondMoment(),
		TorsionConstant: sec.TorsionConstant(),
		Area:            sec.Area(),
		Moment:          moment,
	}
	result.MomentCapacity = result.Modulus * yield / 1e3
	result.Stress = moment * 1e3 / result.Modulus
	result.Utilization = moment / result.MomentCapacity
	result.IsAdequate = moment <= result.MomentCapacity
	if moment > 0 {
		result.MarginOfSafety = result.MomentCapacity/moment - 1
	}

	if result.IsAdequate {
		result.Message = fmt.Sprintf("Section OK - utilization %.1f%%", 100*result.Utilization)
	} else {
		result.Message = fmt.Sprintf("Section inadequate - stress %.1f MPa exceeds yield %.1f MPa", result.Stress, yield)
	}
	return result, nil
}

// TipDeflection estimates the tip deflection (m) of a cantilever of the given
// length carrying the analysed moment at its root under a uniform load, for
// an elastic modulus in GPa
func (r *AnalysisResult) TipDeflection(modulus, length float64) float64 {
	return CantileverTip(r.Moment, length, r.Section.FlexuralRigidity(modulus))
}
