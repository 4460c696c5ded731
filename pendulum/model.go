// Package pendulum integrates the motion of a simple gravity pendulum and maps
// the resulting angles onto bob positions for playback.
//
// The pivot sits at the origin. Theta is measured from the downward vertical,
// counter-clockwise positive, and is never wrapped: large swings produce large
// angles, which is harmless because only sin(theta) feeds the dynamics.
package pendulum

import "math"

// Params holds the physical constants of one run.
type Params struct {
	Gravity float64 // gravitational acceleration (m/s²)
	Length  float64 // arm length (m), must be positive
}

// State is the instantaneous angle (rad) and angular velocity (rad/s).
type State struct {
	Theta float64
	Omega float64
}

// Derivative evaluates the equation of motion at y = [theta, omega] and writes
// [dtheta/dt, domega/dt] into dy. The system is autonomous so t is unused.
func (p Params) Derivative(t float64, y, dy []float64) {
	dy[0] = y[1]
	dy[1] = -(p.Gravity / p.Length) * math.Sin(y[0])
}

// Energy returns the mechanical energy per unit mass, zero at rest at the bottom.
func (p Params) Energy(s State) float64 {
	v := p.Length * s.Omega
	return 0.5*v*v + p.Gravity*p.Length*(1-math.Cos(s.Theta))
}

// SmallAnglePeriod is 2π·sqrt(L/g) corrected for amplitude to second order.
func (p Params) SmallAnglePeriod(amplitude float64) float64 {
	return 2 * math.Pi * math.Sqrt(p.Length/p.Gravity) * (1 + amplitude*amplitude/16)
}

func (s State) finite() bool {
	return isFinite(s.Theta) && isFinite(s.Omega)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
