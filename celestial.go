package tudat

import (
	"fmt"
	"math"
	"strings"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
)

// CelestialObject defines a celestial object.
// All quantities are in SI units.
type CelestialObject struct {
	Name   string
	Radius float64
	a      float64 // Semi major axis of its heliocentric orbit
	μ      float64
}

// NewCelestialObject returns a new celestial object.
// Use a negative semi major axis for objects which do not orbit the Sun.
func NewCelestialObject(name string, radius, a, μ float64) CelestialObject {
	return CelestialObject{name, radius, a, μ}
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// SemiMajorAxis returns the semi major axis of the heliocentric orbit of this object.
// This is -1 for the Sun.
func (c CelestialObject) SemiMajorAxis() float64 {
	return c.a
}

// Mass returns the mass of this object as derived from its gravitational parameter.
func (c CelestialObject) Mass() float64 {
	return c.μ / GravitationalConstant
}

// HelioPeriod returns the heliocentric orbital period in seconds, accounting for the mass of this object.
// The Sun has no such period and returns NaN.
func (c CelestialObject) HelioPeriod() float64 {
	if c.a <= 0 {
		return math.NaN()
	}
	return OrbitalPeriod(c.a, Sun.μ, c.Mass())
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ
}

// SynodicPeriodOf returns the synodic period in seconds of two objects orbiting the Sun.
func SynodicPeriodOf(b1, b2 CelestialObject) float64 {
	return SynodicPeriod(b1.HelioPeriod(), b2.HelioPeriod())
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined celestial object '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700e3, -1, 1.32712440017987e20}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6051.8e3, 108208601e3, 3.24858599e14}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.1363e3, 149598023e3, 3.98600433e14}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19e3, 227939282.5616e3, 4.28283100e13}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492.0e3, 778298361e3, 1.266865361e17}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 60268.0e3, 1429394133e3, 3.7931208e16}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", 25559.0e3, 2875038615e3, 5.7939513e15}

// Pluto is not a planet.
var Pluto = CelestialObject{"Pluto", 1151.0e3, 5915799000e3, 9e11}
