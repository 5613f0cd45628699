package loadcase

import "math"

// LoadCase represents a flight load case applied to the 1 g spanwise loads.
// The ultimate multiplier is LoadFactor × SafetyFactor.
type LoadCase struct {
	ID           string
	Description  string
	LoadFactor   float64 // n - limit load factor
	SafetyFactor float64 // ultimate / limit
}

// Standard flight envelope corners for a light aircraft (normal category)
var Cases = []LoadCase{
	{
		ID:           "1",
		Description:  "Level flight (n = 1.0)",
		LoadFactor:   1.0,
		SafetyFactor: 1.5,
	},
	{
		ID:           "2",
		Description:  "Positive limit maneuver (n = +3.8)",
		LoadFactor:   3.8,
		SafetyFactor: 1.5,
	},
	{
		ID:           "3",
		Description:  "Negative limit maneuver (n = -1.52)",
		LoadFactor:   -1.52,
		SafetyFactor: 1.5,
	},
	{
		ID:           "4",
		Description:  "Positive gust (n = +3.0)",
		LoadFactor:   3.0,
		SafetyFactor: 1.5,
	},
	{
		ID:           "5",
		Description:  "Negative gust (n = -1.0)",
		LoadFactor:   -1.0,
		SafetyFactor: 1.5,
	},
}

// Simplified cases for quick checks of small unmanned aircraft, using the
// uniform 1.3 factor of the spanwise load calculation
var SimplifiedCases = []LoadCase{
	{
		ID:           "1",
		Description:  "Level flight (n = 1.0)",
		LoadFactor:   1.0,
		SafetyFactor: 1.3,
	},
	{
		ID:           "2",
		Description:  "Pull-up (n = +2.5)",
		LoadFactor:   2.5,
		SafetyFactor: 1.3,
	},
}

// Multiplier returns n × SF
func (lc LoadCase) Multiplier() float64 {
	sf := lc.SafetyFactor
	if sf <= 0 {
		sf = 1
	}
	return lc.LoadFactor * sf
}

// Factored scales an unfactored 1 g value by the case multiplier
func (lc LoadCase) Factored(value float64) float64 {
	return lc.Multiplier() * value
}

// Governing finds the case producing the largest factored magnitude
func Governing(value float64, cases []LoadCase) (float64, LoadCase) {
	var maxValue float64
	var governing LoadCase

	for _, lc := range cases {
		v := lc.Factored(value)
		if math.Abs(v) > math.Abs(maxValue) {
			maxValue = v
			governing = lc
		}
	}

	return maxValue, governing
}
