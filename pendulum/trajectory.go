package pendulum

import (
	"iter"
	"math"
)

// Trajectory is the sampled solution of one run. Row i of every slice
// corresponds to Times[i].
type Trajectory struct {
	Params    Params
	Times     TimeGrid
	States    []State
	Positions []Position
	Stats     Stats
}

// Generator integrates the equation of motion over a fixed time grid.
type Generator struct {
	conf   Config
	grid   TimeGrid
	solver *Solver
}

// NewGenerator validates conf and prepares the time grid and solver.
func NewGenerator(conf Config) (*Generator, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewTimeGrid(conf.Duration, conf.Samples)
	if err != nil {
		return nil, err
	}
	solver := NewSolver(conf.Tolerance)
	solver.MaxStep = conf.MaxStep
	solver.MaxSteps = conf.MaxSteps
	return &Generator{conf: conf, grid: grid, solver: solver}, nil
}

// Grid returns the sample times.
func (g *Generator) Grid() TimeGrid { return g.grid }

// Solver returns the underlying integrator so its limits can be tuned.
func (g *Generator) Solver() *Solver { return g.solver }

// Generate integrates from the initial state and returns the full trajectory.
func (g *Generator) Generate() (*Trajectory, error) {
	p := g.conf.Params()
	start := g.conf.Initial()
	rows, stats, err := g.solver.Solve(p.Derivative, []float64{start.Theta, start.Omega}, g.grid)
	if err != nil {
		return nil, err
	}

	states := make([]State, len(rows))
	for i, r := range rows {
		states[i] = State{Theta: r[0], Omega: r[1]}
		if !states[i].finite() {
			return nil, &IntegrationError{Step: stats.Accepted, Time: g.grid[i], State: r, Err: ErrNonFinite}
		}
	}
	states[0] = start

	return &Trajectory{
		Params:    p,
		Times:     g.grid,
		States:    states,
		Positions: Positions(states, p.Length),
		Stats:     stats,
	}, nil
}

// Len returns the number of samples.
func (t *Trajectory) Len() int { return len(t.States) }

// All yields the bob positions in time order.
func (t *Trajectory) All() iter.Seq2[int, Position] {
	return func(yield func(int, Position) bool) {
		for i, p := range t.Positions {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Energies returns the mechanical energy per unit mass at every sample.
func (t *Trajectory) Energies() []float64 {
	out := make([]float64, len(t.States))
	for i, s := range t.States {
		out[i] = t.Params.Energy(s)
	}
	return out
}

// EnergyDrift returns the largest deviation of the energy from its initial
// value, relative to that value. For a zero initial energy it is absolute.
func (t *Trajectory) EnergyDrift() float64 {
	if len(t.States) == 0 {
		return 0
	}
	e := t.Energies()
	var drift float64
	for _, v := range e[1:] {
		drift = math.Max(drift, math.Abs(v-e[0]))
	}
	if e[0] != 0 {
		drift /= math.Abs(e[0])
	}
	return drift
}

// Period estimates the oscillation period from the trajectory.
func (t *Trajectory) Period() (float64, bool) {
	return EstimatePeriod(t.Times, t.States)
}

// EstimatePeriod locates strict sign changes of omega by linear interpolation
// and returns twice their mean spacing. It needs at least two of them.
func EstimatePeriod(times []float64, states []State) (float64, bool) {
	var crossings []float64
	for i := 1; i < len(states) && i < len(times); i++ {
		a, b := states[i-1].Omega, states[i].Omega
		if a*b >= 0 {
			continue
		}
		crossings = append(crossings, times[i-1]+(times[i]-times[i-1])*a/(a-b))
	}
	if len(crossings) < 2 {
		return 0, false
	}
	half := (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1)
	return 2 * half, true
}
