package material

import (
	"fmt"
	"sort"
	"strings"
)

// Material holds the properties used for spar sizing
type Material struct {
	Name        string
	Description string

	YieldStrength  float64 // σy (MPa)
	Density        float64 // kg/m³
	ElasticModulus float64 // E (GPa)
	ShearModulus   float64 // G (GPa)
}

// Library of common spar materials. Wood values are parallel to grain,
// composite values are for a unidirectional carbon/epoxy tube.
var Library = []Material{
	{Name: "6061-T6", Description: "Aluminium alloy 6061-T6", YieldStrength: 276, Density: 2700, ElasticModulus: 68.9, ShearModulus: 26},
	{Name: "7075-T6", Description: "Aluminium alloy 7075-T6", YieldStrength: 503, Density: 2810, ElasticModulus: 71.7, ShearModulus: 26.9},
	{Name: "2024-T3", Description: "Aluminium alloy 2024-T3", YieldStrength: 345, Density: 2780, ElasticModulus: 73.1, ShearModulus: 28},
	{Name: "spruce", Description: "Sitka spruce", YieldStrength: 65, Density: 450, ElasticModulus: 10.8, ShearModulus: 0.7},
	{Name: "balsa", Description: "Balsa, medium density", YieldStrength: 12, Density: 160, ElasticModulus: 3.4, ShearModulus: 0.2},
	{Name: "carbon", Description: "Carbon/epoxy pultruded tube", YieldStrength: 1100, Density: 1550, ElasticModulus: 120, ShearModulus: 5},
}

// Default is the material used when none is specified
const Default = "6061-T6"

// Lookup finds a material by name, ignoring case
func Lookup(name string) (Material, error) {
	for _, m := range Library {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("unknown material %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the library material names in sorted order
func Names() []string {
	names := make([]string, len(Library))
	for i, m := range Library {
		names[i] = m.Name
	}
	sort.Strings(names)
	return names
}
