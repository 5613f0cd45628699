package aero

import (
	"fmt"
	"math"
)

// Aileron placement and proportions used by the sizing estimate
const (
	AileronStart      = 0.70 // fraction of span
	AileronEnd        = 0.90 // fraction of span
	AileronChordRatio = 0.25 // aileron chord / average wing chord
	AileronAreaCap    = 0.12 // fraction of wing area used when the estimate exceeds the wing
)

// ClDelta returns the change in lift coefficient per radian of aileron
// deflection, 2π·e / AR
func ClDelta(span, area, effectiveness float64) (float64, error) {
	if area <= 0 || span <= 0 {
		return 0, fmt.Errorf("span and area must be positive: b=%.4g, S=%.4g", span, area)
	}
	ar := span * span / area
	return 2 * math.Pi * effectiveness / ar, nil
}

// AileronInput describes the roll requirement for the sizing estimate.
// Lengths in ft, airspeed in ft/s, roll rate in rad/s.
type AileronInput struct {
	Span          float64
	Area          float64
	RollRate      float64
	Airspeed      float64
	ClDelta       float64
	Effectiveness float64
	TaperRatio    float64
	RootChord     float64
}

// AileronResult holds the estimated aileron geometry
type AileronResult struct {
	ClDeltaAdjusted float64
	RollingMoment   float64 // rolling moment coefficient
	Area            float64 // ft²
	Length          float64 // ft
	Chord           float64 // ft
	Capped          bool    // area estimate exceeded the wing and was capped
}

// SizeAileron estimates the aileron area from the desired roll rate using
// Gudmundsson's relation, and places it between 70 % and 90 % of the span
func SizeAileron(in AileronInput) (*AileronResult, error) {
	if in.Span <= 0 || in.Area <= 0 || in.Airspeed <= 0 || in.RootChord <= 0 {
		return nil, fmt.Errorf("span, area, airspeed and root chord must be positive")
	}
	if in.ClDelta <= 0 || in.Effectiveness <= 0 {
		return nil, fmt.Errorf("cl_delta and effectiveness must be positive")
	}
	taper := in.TaperRatio
	if taper <= 0 {
		taper = 1
	}

	r := &AileronResult{}
	r.ClDeltaAdjusted = in.ClDelta * (1 + taper) / 2
	r.RollingMoment = 2 * in.RollRate * in.Span / (in.Airspeed * r.ClDeltaAdjusted)
	r.Area = r.RollingMoment * in.Area / (2 * r.ClDeltaAdjusted * in.Effectiveness)
	if r.Area > in.Area {
		r.Area = in.Area * AileronAreaCap
		r.Capped = true
	}

	r.Length = (AileronEnd - AileronStart) * in.Span
	avgChord := (in.RootChord + in.RootChord*taper) / 2
	r.Chord = AileronChordRatio * avgChord
	return r, nil
}

// Aileron describes a control surface for the hinge torque estimate.
// Lengths in ft, density in slug/ft³, velocity in ft/s.
type Aileron struct {
	RootChord       float64
	TipChord        float64
	Span            float64
	HingeLine       float64 // hinge position from the leading edge
	LiftCoefficient float64 // at full deflection
	Density         float64
	Velocity        float64
}

// AverageChord returns (c_r + c_t)/2
func (a Aileron) AverageChord() float64 {
	return (a.RootChord + a.TipChord) / 2
}

// LiftForce returns q·CL·c_avg·span (lb)
func (a Aileron) LiftForce() float64 {
	q := 0.5 * a.Density * a.Velocity * a.Velocity
	return q * a.LiftCoefficient * a.AverageChord() * a.Span
}

// MomentArm returns the distance from the hinge line to the quarter chord (ft)
func (a Aileron) MomentArm() float64 {
	return 0.25*a.AverageChord() - a.HingeLine
}

// HingeTorque returns the hinge moment in in·lb
func (a Aileron) HingeTorque() float64 {
	return a.LiftForce() * a.MomentArm() * 12
}
