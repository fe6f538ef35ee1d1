package tudat

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5 // 0.00005
	// maxDurationSeconds is the longest period a time.Duration can hold (about 292 years).
	maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)
)

// TwoBody defines the parameters of an unperturbed two-body orbit.
// Mass is the mass of the orbiting body: leave it at zero for the restricted two-body problem.
type TwoBody struct {
	SemiMajorAxis float64         // in meters
	Eccentricity  float64         // in [0, 1) for most relations to make sense
	Mass          float64         // in kilograms
	Origin        CelestialObject // central body
}

// NewTwoBody returns a new TwoBody.
func NewTwoBody(a, e, mass float64, origin CelestialObject) *TwoBody {
	return &TwoBody{a, e, mass, origin}
}

// PeriodSeconds returns the orbital period in seconds.
func (o TwoBody) PeriodSeconds() float64 {
	return OrbitalPeriod(o.SemiMajorAxis, o.Origin.μ, o.Mass)
}

// Period returns the period of this orbit.
// Sub-nanosecond fractions are truncated. Periods too long for a time.Duration saturate at
// math.MaxInt64, and a NaN or negative period (e.g. from a negative semi major axis) returns 0.
// Use PeriodFitsDuration to tell these apart from a valid period.
func (o TwoBody) Period() time.Duration {
	seconds := o.PeriodSeconds()
	if math.IsNaN(seconds) || seconds < 0 {
		return 0
	}
	if seconds >= maxDurationSeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}

// PeriodFitsDuration returns whether Period is the actual period of this orbit.
func (o TwoBody) PeriodFitsDuration() bool {
	seconds := o.PeriodSeconds()
	return seconds >= 0 && seconds < maxDurationSeconds
}

// MeanMotion returns the mean motion in rad/s.
func (o TwoBody) MeanMotion() float64 {
	return MeanMotion(o.SemiMajorAxis, o.Origin.μ, o.Mass)
}

// AngularMomentum returns the norm of the angular momentum of the orbiting body.
func (o TwoBody) AngularMomentum() float64 {
	return AngularMomentum(o.SemiMajorAxis, o.Eccentricity, o.Origin.μ, o.Mass)
}

// Energy returns the orbital energy of the orbiting body.
func (o TwoBody) Energy() float64 {
	return OrbitalEnergy(o.SemiMajorAxis, o.Origin.μ, o.Mass)
}

// SpecificEnergy returns the specific mechanical energy ξ.
func (o TwoBody) SpecificEnergy() float64 {
	return -o.Origin.μ / (2 * o.SemiMajorAxis)
}

// SemiParameter returns the semi parameter.
func (o TwoBody) SemiParameter() float64 {
	return o.SemiMajorAxis * (1 - o.Eccentricity*o.Eccentricity)
}

// Apoapsis returns the apoapsis.
func (o TwoBody) Apoapsis() float64 {
	return o.SemiMajorAxis * (1 + o.Eccentricity)
}

// Periapsis returns the periapsis.
func (o TwoBody) Periapsis() float64 {
	return o.SemiMajorAxis * (1 - o.Eccentricity)
}

// IsCircular returns whether this orbit is circular within 5e-5.
func (o TwoBody) IsCircular() bool {
	return floats.EqualWithinAbs(o.Eccentricity, 0, eccentricityε)
}

// String implements the stringer interface (hence the value receiver)
func (o TwoBody) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f m=%.1f around %s (T=%.1f s)", o.SemiMajorAxis, o.Eccentricity, o.Mass, o.Origin.Name, o.PeriodSeconds())
}

// Radii2ae returns the semi major axis and the eccentricty from the radii.
func Radii2ae(rA, rP float64) (a, e float64, err error) {
	if rA < rP {
		return 0, 0, errors.New("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
