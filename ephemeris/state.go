package ephemeris

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// Indexes of the components of a CartesianState.
const (
	XPosition = iota
	YPosition
	ZPosition
	XVelocity
	YVelocity
	ZVelocity
)

// CartesianState is a position and velocity vector stored as [x, y, z, vx, vy, vz].
type CartesianState [6]float64

// Position returns a copy of the position vector.
func (s CartesianState) Position() []float64 {
	return []float64{s[XPosition], s[YPosition], s[ZPosition]}
}

// Velocity returns a copy of the velocity vector.
func (s CartesianState) Velocity() []float64 {
	return []float64{s[XVelocity], s[YVelocity], s[ZVelocity]}
}

// Vector returns the state as a new 6x1 mat64 vector.
func (s CartesianState) Vector() *mat64.Vector {
	data := make([]float64, len(s))
	copy(data, s[:])
	return mat64.NewVector(len(data), data)
}

// RadiusNorm returns the norm of the position vector.
func (s CartesianState) RadiusNorm() float64 {
	return mat64.Norm(mat64.NewVector(3, s.Position()), 2)
}

// SpeedNorm returns the norm of the velocity vector.
func (s CartesianState) SpeedNorm() float64 {
	return mat64.Norm(mat64.NewVector(3, s.Velocity()), 2)
}

// String implements the stringer interface.
func (s CartesianState) String() string {
	return fmt.Sprintf("R=[%g %g %g] V=[%g %g %g]", s[XPosition], s[YPosition], s[ZPosition], s[XVelocity], s[YVelocity], s[ZVelocity])
}
