package pendulum

import "math"

// Position is a bob location in metres relative to the pivot.
type Position struct {
	X float64
	Y float64
}

// BobPosition maps an angle onto the circle of radius length around the pivot.
// Theta 0 hangs straight down at (0, -length).
func BobPosition(theta, length float64) Position {
	sin, cos := math.Sincos(theta)
	return Position{X: length * sin, Y: -length * cos}
}

// Positions maps every state onto its bob position.
func Positions(states []State, length float64) []Position {
	out := make([]Position, len(states))
	for i, s := range states {
		out[i] = BobPosition(s.Theta, length)
	}
	return out
}

// Bounds is an axis-aligned rectangle in world coordinates.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ViewBounds returns a rectangle containing every reachable bob position,
// [-L, L] × [-L, 0], grown by margin on each side.
func ViewBounds(length, margin float64) Bounds {
	return Bounds{
		MinX: -length - margin,
		MaxX: length + margin,
		MinY: -length - margin,
		MaxY: margin,
	}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
