package atmos

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// International Standard Atmosphere (troposphere) constants
const (
	R          = 287.05   // specific gas constant for dry air, J/(kg·K)
	Rv         = 461.495  // specific gas constant for water vapor, J/(kg·K)
	G          = 9.80665  // gravitational acceleration, m/s²
	LapseRate  = 0.0065   // temperature lapse rate, K/m
	T0         = 288.15   // sea level temperature, K
	P0         = 101325.0 // sea level pressure, Pa
	Rho0       = 1.225    // sea level density, kg/m³
	Mu0        = 1.716e-5 // Sutherland reference viscosity, Pa·s
	TRef       = 273.15   // Sutherland reference temperature, K
	Sutherland = 110.4    // Sutherland constant for air, K
)

// ErrZeroViscosity is returned when a Reynolds number is requested for an inviscid fluid
var ErrZeroViscosity = errors.New("dynamic viscosity must be positive")

// Temperature returns the ISA temperature (K) at an altitude in meters
func Temperature(altitude float64) float64 {
	return T0 - LapseRate*altitude
}

// Pressure returns the ISA pressure (Pa) at an altitude in meters
func Pressure(altitude float64) float64 {
	return P0 * math.Pow(1-LapseRate*altitude/T0, G/(R*LapseRate))
}

// VaporPressure returns the partial pressure of water vapor (Pa) for a
// relative humidity in percent, using the Magnus formula
func VaporPressure(temperature, humidity float64) float64 {
	saturation := 6.1078 * math.Pow(10, 7.5*(temperature-273.15)/(temperature-35.85)) // hPa
	return humidity / 100 * saturation * 100
}

// Conditions is the state of the air at one altitude
type Conditions struct {
	Altitude      float64 // m
	Humidity      float64 // %
	Pressure      float64 // station pressure, Pa
	Temperature   float64 // K
	VaporPressure float64 // Pa
	Density       float64 // kg/m³
	Viscosity     float64 // Pa·s
}

// Density computes moist air density at an altitude for a relative
// humidity (0-100 %) and a barometric pressure in Pa. A pressure <= 0 uses
// the ISA pressure for the altitude.
func Density(altitude, humidity, pressure float64) (*Conditions, error) {
	if humidity < 0 || humidity > 100 {
		return nil, fmt.Errorf("humidity must be within 0..100 %%, got %.4g", humidity)
	}
	if altitude >= T0/LapseRate {
		return nil, fmt.Errorf("altitude %.0f m is outside the standard atmosphere model", altitude)
	}
	if pressure <= 0 {
		pressure = Pressure(altitude)
	}

	c := &Conditions{
		Altitude:    altitude,
		Humidity:    humidity,
		Pressure:    pressure,
		Temperature: Temperature(altitude),
	}
	c.VaporPressure = VaporPressure(c.Temperature, humidity)
	dry := pressure - c.VaporPressure
	c.Density = dry/(R*c.Temperature) + c.VaporPressure/(Rv*c.Temperature)
	c.Viscosity = Viscosity(c.Temperature)

	log.WithFields(log.Fields{
		"altitude":    altitude,
		"temperature": c.Temperature,
		"pressure":    pressure,
		"vapor":       c.VaporPressure,
		"density":     c.Density,
	}).Debug("air density")

	return c, nil
}

// Viscosity returns the dynamic viscosity of air (Pa·s) at a temperature
// in K using Sutherland's formula
func Viscosity(temperature float64) float64 {
	return Mu0 * math.Pow(temperature/TRef, 1.5) * (TRef + Sutherland) / (temperature + Sutherland)
}

// Reynolds returns ρ·V·L/μ
func Reynolds(density, velocity, length, viscosity float64) (float64, error) {
	if viscosity <= 0 {
		return 0, ErrZeroViscosity
	}
	return density * velocity * length / viscosity, nil
}
