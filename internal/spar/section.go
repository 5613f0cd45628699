package spar

import "fmt"

// Section represents a hollow rectangular spar section (box spar).
// All dimensions are in mm.
//
//	 <------ Width ------>
//	 +-------------------+  ---
//	 |###################|   | FlangeThickness
//	 |##+-------------+##|  ---
//	 |##|             |##|
//	 |##|             |##|   Height
//	 |##+-------------+##|
//	 |###################|
//	 +-------------------+  ---
//	  ^^ WebThickness
type Section struct {
	Height          float64 `yaml:"height"`           // outer depth H
	Width           float64 `yaml:"width"`            // outer width B
	WebThickness    float64 `yaml:"web_thickness"`    // tw - side walls
	FlangeThickness float64 `yaml:"flange_thickness"` // tf - top and bottom caps
}

// InnerWidth returns B - 2·tw
func (s Section) InnerWidth() float64 {
	return s.Width - 2*s.WebThickness
}

// InnerHeight returns H - 2·tf
func (s Section) InnerHeight() float64 {
	return s.Height - 2*s.FlangeThickness
}

// Validate checks that the walls leave a hollow core
func (s Section) Validate() error {
	if s.Height <= 0 || s.Width <= 0 {
		return &ValidationError{msg: fmt.Sprintf("spar outer dimensions must be positive: H=%.2f, B=%.2f", s.Height, s.Width)}
	}
	if s.WebThickness <= 0 || s.FlangeThickness <= 0 {
		return &ValidationError{msg: fmt.Sprintf("wall thicknesses must be positive: tw=%.2f, tf=%.2f", s.WebThickness, s.FlangeThickness)}
	}
	if s.InnerWidth() <= 0 || s.InnerHeight() <= 0 {
		return &ValidationError{msg: fmt.Sprintf("walls leave no hollow core: inner %.2f x %.2f mm", s.InnerWidth(), s.InnerHeight())}
	}
	return nil
}

// Area returns the net cross-sectional area (mm²)
func (s Section) Area() float64 {
	return s.Width*s.Height - s.InnerWidth()*s.InnerHeight()
}

// SecondMoment returns the moment of inertia about the horizontal
// centroidal axis (mm⁴): (B·H³ - b·h³)/12
func (s Section) SecondMoment() float64 {
	b, h := s.InnerWidth(), s.InnerHeight()
	return (s.Width*s.Height*s.Height*s.Height - b*h*h*h) / 12
}

// SectionModulus returns Z = I / (H/2) = (B·H³ - b·h³)/(6·H) in mm³
func (s Section) SectionModulus() float64 {
	if s.Height <= 0 {
		return 0
	}
	return 2 * s.SecondMoment() / s.Height
}

// FlexuralRigidity returns E·I in N·m² for an elastic modulus in GPa
func (s Section) FlexuralRigidity(modulus float64) float64 {
	return modulus * 1e9 * s.SecondMoment() * 1e-12
}

// TorsionConstant returns the thin-walled closed-section constant
// J = 4·Am² / ∮ds/t in mm⁴, with Am the area enclosed by the wall midline
func (s Section) TorsionConstant() float64 {
	bm := s.Width - s.WebThickness
	hm := s.Height - s.FlangeThickness
	if bm <= 0 || hm <= 0 {
		return 0
	}
	am := bm * hm
	return 4 * am * am / (2*bm/s.FlangeThickness + 2*hm/s.WebThickness)
}

// TorsionalRigidity returns G·J in N·m² for a shear modulus in GPa
func (s Section) TorsionalRigidity(modulus float64) float64 {
	return modulus * 1e9 * s.TorsionConstant() * 1e-12
}

// MassPerLength returns the spar mass per meter of span (kg/m) for a
// material density in kg/m³
func (s Section) MassPerLength(density float64) float64 {
	return s.Area() * 1e-6 * density
}

func (s Section) String() string {
	return fmt.Sprintf("%.1f x %.1f mm (tw=%.2f, tf=%.2f)", s.Height, s.Width, s.WebThickness, s.FlangeThickness)
}

// ValidationError represents an invalid spar input
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
