package pendulum

import (
	"errors"
	"math"
	"testing"
)

func linspace(a, b float64, n int) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	ts[n-1] = b
	return ts
}

func TestSolveExponentialDecay(t *testing.T) {
	s := NewSolver(Tolerance{Abs: 1e-12, Rel: 1e-10})
	ts := linspace(0, 5, 11)
	rows, st, err := s.Solve(func(_ float64, y, dy []float64) { dy[0] = -y[0] }, []float64{1}, ts)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(ts) {
		t.Fatalf("got %d rows, want %d", len(rows), len(ts))
	}
	for i, r := range rows {
		if want := math.Exp(-ts[i]); math.Abs(r[0]-want) > 1e-8 {
			t.Errorf("y(%g) = %.12g, want %.12g", ts[i], r[0], want)
		}
	}
	// one evaluation at t0, one for the initial step guess, six per attempted step
	if st.Accepted == 0 || st.Evaluations != 2+6*(st.Accepted+st.Rejected) {
		t.Errorf("stats = %+v", st)
	}
}

func TestSolveHarmonicDenseOutput(t *testing.T) {
	s := NewSolver(Tolerance{Abs: 1e-10, Rel: 1e-10})
	// far more output points than internal steps, so most rows are interpolated
	ts := linspace(0, 2*math.Pi, 500)
	f := func(_ float64, y, dy []float64) {
		dy[0] = y[1]
		dy[1] = -y[0]
	}
	rows, st, err := s.Solve(f, []float64{1, 0}, ts)
	if err != nil {
		t.Fatal(err)
	}
	if st.Accepted >= len(ts) {
		t.Fatalf("accepted %d steps for %d outputs; output spacing should not drive the step", st.Accepted, len(ts))
	}
	for i, r := range rows {
		if math.Abs(r[0]-math.Cos(ts[i])) > 1e-7 || math.Abs(r[1]+math.Sin(ts[i])) > 1e-7 {
			t.Fatalf("y(%g) = %v, want [%g %g]", ts[i], r, math.Cos(ts[i]), -math.Sin(ts[i]))
		}
	}
}

func TestSolveIrregularGrid(t *testing.T) {
	s := NewSolver(Tolerance{Abs: 1e-10, Rel: 1e-10})
	ts := []float64{0, 0.001, 0.0015, 0.9, 3}
	rows, _, err := s.Solve(func(_ float64, _, dy []float64) { dy[0] = 2 }, []float64{1}, ts)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range rows {
		if want := 1 + 2*ts[i]; math.Abs(r[0]-want) > 1e-12 {
			t.Errorf("y(%g) = %g, want %g", ts[i], r[0], want)
		}
	}
}

func TestSolveCopiesInitialState(t *testing.T) {
	s := NewSolver(Tolerance{Abs: 1e-9, Rel: 1e-9})
	y0 := []float64{3, -1}
	rows, _, err := s.Solve(func(_ float64, y, dy []float64) { dy[0], dy[1] = y[1], -y[0] }, y0, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if rows[0][0] != 3 || rows[0][1] != -1 {
		t.Fatalf("row 0 = %v, want %v", rows[0], y0)
	}
	if y0[0] != 3 || y0[1] != -1 {
		t.Fatalf("y0 modified: %v", y0)
	}

	rows, _, err = s.Solve(func(_ float64, _, dy []float64) { dy[0] = 1 }, []float64{7}, []float64{2})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0][0] != 7 {
		t.Fatalf("single point solve = %v", rows)
	}
}

func TestSolveMaxStep(t *testing.T) {
	s := NewSolver(Tolerance{Abs: 1e-6, Rel: 1e-6})
	s.MaxStep = 0.01
	_, st, err := s.Solve(func(_ float64, _, dy []float64) { dy[0] = 0 }, []float64{0}, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if st.Accepted < 99 {
		t.Fatalf("accepted %d steps, want at least 99 with MaxStep 0.01", st.Accepted)
	}
}

func TestSolveInvalidInput(t *testing.T) {
	f := func(_ float64, _, dy []float64) { dy[0] = 0 }
	tests := []struct {
		name string
		tol  Tolerance
		y0   []float64
		ts   []float64
	}{
		{"decreasing grid", Tolerance{Abs: 1e-9}, []float64{0}, []float64{0, 2, 1}},
		{"empty grid", Tolerance{Abs: 1e-9}, []float64{0}, nil},
		{"empty state", Tolerance{Abs: 1e-9}, nil, []float64{0, 1}},
		{"zero tolerance", Tolerance{}, []float64{0}, []float64{0, 1}},
		{"negative tolerance", Tolerance{Abs: -1, Rel: 1e-6}, []float64{0}, []float64{0, 1}},
		{"relative tolerance only", Tolerance{Rel: 1e-9}, []float64{0}, []float64{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewSolver(tt.tol).Solve(f, tt.y0, tt.ts)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestSolveShortFinalStep(t *testing.T) {
	// Steps of 0.4 from y=1 leave a final 0.2 to reach t=1, below MinStep.
	s := NewSolver(Tolerance{Abs: 1, Rel: 1})
	s.MaxStep = 0.4
	s.MinStep = 0.3
	rows, st, err := s.Solve(func(_ float64, _, dy []float64) { dy[0] = 1 }, []float64{1}, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rows[1][0]-2) > 1e-12 {
		t.Errorf("y(1) = %.15g, want 2", rows[1][0])
	}
	if st.Accepted != 3 || st.Rejected != 0 {
		t.Errorf("stats = %+v, want 3 accepted steps", st)
	}
}

func TestSolveNonFiniteDerivative(t *testing.T) {
	s := NewSolver(Tolerance{Abs: 1e-9, Rel: 1e-9})
	_, _, err := s.Solve(func(_ float64, _, dy []float64) { dy[0] = math.NaN() }, []float64{1}, []float64{0, 1})
	if !errors.Is(err, ErrIntegrationFailure) {
		t.Fatalf("err = %v, want ErrIntegrationFailure", err)
	}
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("err = %v, want cause ErrNonFinite", err)
	}
	var ie *IntegrationError
	if !errors.As(err, &ie) || ie.Time != 0 {
		t.Fatalf("err = %#v, want *IntegrationError at t=0", err)
	}
}

func TestSolveBlowUp(t *testing.T) {
	// y' = y² with y(0) = 1 has the solution 1/(1-t), singular at t = 1.
	s := NewSolver(Tolerance{Abs: 1e-9, Rel: 1e-9})
	_, _, err := s.Solve(func(_ float64, y, dy []float64) { dy[0] = y[0] * y[0] }, []float64{1}, []float64{0, 0.5, 2})
	if !errors.Is(err, ErrIntegrationFailure) {
		t.Fatalf("err = %v, want ErrIntegrationFailure", err)
	}
	var ie *IntegrationError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %#v, want *IntegrationError", err)
	}
	if ie.Time < 0.5 {
		t.Fatalf("failed at t=%g, before the singularity region", ie.Time)
	}
}

func TestSolveStepBudget(t *testing.T) {
	s := NewSolver(Tolerance{Abs: 1e-12, Rel: 1e-12})
	s.MaxSteps = 3
	_, _, err := s.Solve(func(_ float64, y, dy []float64) { dy[0], dy[1] = y[1], -y[0] }, []float64{1, 0}, []float64{0, 100})
	if !errors.Is(err, ErrTooManySteps) || !errors.Is(err, ErrIntegrationFailure) {
		t.Fatalf("err = %v, want ErrTooManySteps", err)
	}
}
