package tudat

import "math"

// GravitationalConstant is the Newtonian constant of gravitation in m^3 kg^-1 s^-2.
const GravitationalConstant = 6.67259e-11

/* Two-body Kepler relations.
All functions work in consistent SI units and do not validate their inputs: a
zero semi major axis or two equal periods yield Inf or NaN. */

// OrbitalPeriod returns the Kepler orbital period in seconds.
// The mass of the orbiting body is added to the gravitational parameter of the central body,
// so a zero mass yields the restricted two-body period.
func OrbitalPeriod(a, gm, mass float64) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(a, 3)/(GravitationalConstant*mass+gm))
}

// AngularMomentum returns the Kepler orbital angular momentum of the orbiting body.
func AngularMomentum(a, e, gm, mass float64) float64 {
	return mass * math.Sqrt(gm*a*(1-math.Pow(e, 2)))
}

// MeanMotion returns the Kepler mean motion in rad/s.
// NOTE: This is not derived from OrbitalPeriod, the two only agree within floating point error.
func MeanMotion(a, gm, mass float64) float64 {
	return math.Sqrt((GravitationalConstant*mass + gm) / math.Pow(a, 3))
}

// OrbitalEnergy returns the orbital energy of the orbiting body (i.e. its mass times the specific energy).
func OrbitalEnergy(a, gm, mass float64) float64 {
	return -mass * gm / (2 * a)
}

// SynodicPeriod returns the synodic period of two bodies given their orbital periods.
// The order of the periods does not matter. Equal periods return +Inf.
func SynodicPeriod(t1, t2 float64) float64 {
	return 1 / math.Abs(1/t1-1/t2)
}
