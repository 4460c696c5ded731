package pendulum

// TimeGrid is an ordered, evenly spaced list of sample times starting at 0.
type TimeGrid []float64

// NewTimeGrid returns n points spanning [0, duration]. The last point is
// exactly duration.
func NewTimeGrid(duration float64, n int) (TimeGrid, error) {
	if !isFinite(duration) || duration <= 0 {
		return nil, invalidf("duration must be positive, got %g", duration)
	}
	if n < 2 {
		return nil, invalidf("need at least 2 samples, got %d", n)
	}
	g := make(TimeGrid, n)
	last := float64(n - 1)
	for i := range g {
		g[i] = duration * float64(i) / last
	}
	g[n-1] = duration
	return g, nil
}

// Spacing returns the distance between consecutive points.
func (g TimeGrid) Spacing() float64 {
	if len(g) < 2 {
		return 0
	}
	return (g[len(g)-1] - g[0]) / float64(len(g)-1)
}

// checkIncreasing reports an error unless ts has at least one point and is
// strictly increasing and finite.
func checkIncreasing(ts []float64) error {
	if len(ts) == 0 {
		return invalidf("empty time grid")
	}
	for i, t := range ts {
		if !isFinite(t) {
			return invalidf("time grid point %d is not finite", i)
		}
		if i > 0 && t <= ts[i-1] {
			return invalidf("time grid not strictly increasing at %d (%g <= %g)", i, t, ts[i-1])
		}
	}
	return nil
}
