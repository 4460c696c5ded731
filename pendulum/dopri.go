package pendulum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func evaluates dy/dt = f(t, y) into dy. It must not retain y or dy.
type Func func(t float64, y, dy []float64)

// Stats counts the work done by one Solve call.
type Stats struct {
	Accepted    int // accepted steps
	Rejected    int // steps retried with a smaller size
	Evaluations int // calls to the derivative function
}

// Solver is an adaptive Dormand-Prince 5(4) integrator with dense output.
// The zero value is not usable; start from NewSolver.
type Solver struct {
	Tolerance Tolerance

	// MaxStep caps the internal step size; 0 leaves it unbounded.
	MaxStep float64
	// MinStep is the smallest step tried before giving up.
	MinStep float64
	// MaxSteps bounds accepted plus rejected steps; 0 means unlimited.
	MaxSteps int
}

// step controller constants
const (
	safety    = 0.9
	minFactor = 0.2
	maxFactor = 10.0
)

// NewSolver returns a solver with the given tolerance and default step limits.
func NewSolver(tol Tolerance) *Solver {
	return &Solver{
		Tolerance: tol,
		MinStep:   1e-12,
		MaxSteps:  100000,
	}
}

// Dormand-Prince tableau. Row i of dopriA holds the coefficients of stage i+1;
// the last row is the 5th-order solution, whose derivative is reused as the
// first stage of the next step.
var (
	dopriC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dopriA = [6][]float64{
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	// difference between the 5th- and 4th-order weights
	dopriE = [7]float64{71.0 / 57600, 0, -71.0 / 16695, 71.0 / 1920, -17253.0 / 339200, 22.0 / 525, -1.0 / 40}
	// continuous extension (Hairer, Nørsett & Wanner, contd5)
	dopriD = [7]float64{
		-12715105075.0 / 11282082432, 0, 87487479700.0 / 32700410799, -10690763975.0 / 1880347072,
		701980252875.0 / 199316789632, -1453857185.0 / 822651844, 69997945.0 / 29380423,
	}
)

// Solve integrates f from (ts[0], y0) and returns the solution at every
// element of ts, which must be strictly increasing. Row 0 is a copy of y0.
// Internal steps are chosen by error control alone; rows that fall inside a
// step are filled from the continuous extension of that step.
func (s *Solver) Solve(f Func, y0 []float64, ts []float64) ([][]float64, Stats, error) {
	var st Stats
	if err := checkIncreasing(ts); err != nil {
		return nil, st, err
	}
	if len(y0) == 0 {
		return nil, st, invalidf("empty initial state")
	}
	if !(s.Tolerance.Abs > 0) || !(s.Tolerance.Rel >= 0) {
		return nil, st, invalidf("need abs > 0 and rel >= 0, got abs=%g rel=%g", s.Tolerance.Abs, s.Tolerance.Rel)
	}

	n := len(y0)
	out := make([][]float64, len(ts))
	out[0] = append([]float64(nil), y0...)
	if len(ts) == 1 {
		return out, st, nil
	}

	var k [7][]float64
	for i := range k {
		k[i] = make([]float64, n)
	}
	y := append([]float64(nil), y0...)
	yNew := make([]float64, n)
	tmp := make([]float64, n)
	t, tEnd := ts[0], ts[len(ts)-1]

	fail := func(cause error) ([][]float64, Stats, error) {
		return nil, st, &IntegrationError{Step: st.Accepted + st.Rejected, Time: t, State: append([]float64(nil), y...), Err: cause}
	}

	f(t, y, k[0])
	st.Evaluations++
	if !allFinite(k[0]) {
		return fail(ErrNonFinite)
	}

	h := s.initialStep(f, t, y, k[0], tEnd-t, tmp, yNew, &st)
	next := 1
	rejectedLast := false
	var cause error
	for next < len(ts) {
		if s.MaxSteps > 0 && st.Accepted+st.Rejected >= s.MaxSteps {
			return fail(ErrTooManySteps)
		}
		last := false
		if t+h >= tEnd {
			h = tEnd - t
			last = true
		}
		// The step clamped to tEnd may be any size; it always lands exactly.
		if !last && (h < s.MinStep || t+h == t) {
			if cause == nil {
				cause = ErrStepTooSmall
			}
			return fail(cause)
		}

		for i := 1; i < 7; i++ {
			dst := tmp
			if i == 6 {
				dst = yNew
			}
			copy(dst, y)
			for j, a := range dopriA[i-1] {
				if a != 0 {
					floats.AddScaled(dst, h*a, k[j])
				}
			}
			f(t+dopriC[i]*h, dst, k[i])
		}
		st.Evaluations += 6

		errNorm := s.errorNorm(h, y, yNew, &k, tmp)
		if math.IsNaN(errNorm) || math.IsInf(errNorm, 0) || !allFinite(yNew) || !allFinite(k[6]) {
			cause = ErrNonFinite
			st.Rejected++
			rejectedLast = true
			h *= minFactor
			continue
		}
		if errNorm > 1 {
			cause = nil
			st.Rejected++
			rejectedLast = true
			h *= math.Max(minFactor, safety*math.Pow(errNorm, -0.2))
			continue
		}

		cause = nil
		st.Accepted++
		tNew := t + h
		if last {
			tNew = tEnd
		}
		for next < len(ts) && ts[next] <= tNew {
			row := make([]float64, n)
			if ts[next] == tNew {
				copy(row, yNew)
			} else {
				interpolate(row, (ts[next]-t)/h, h, y, yNew, &k)
			}
			out[next] = row
			next++
		}

		factor := maxFactor
		if errNorm > 0 {
			factor = math.Min(maxFactor, math.Max(minFactor, safety*math.Pow(errNorm, -0.2)))
		}
		if rejectedLast {
			factor = math.Min(factor, 1)
		}
		rejectedLast = false

		t = tNew
		y, yNew = yNew, y
		k[0], k[6] = k[6], k[0]
		h *= factor
		if s.MaxStep > 0 && h > s.MaxStep {
			h = s.MaxStep
		}
	}
	return out, st, nil
}

// errorNorm returns the RMS of the embedded error estimate scaled by the
// tolerance. It uses scratch as working storage.
func (s *Solver) errorNorm(h float64, y, yNew []float64, k *[7][]float64, scratch []float64) float64 {
	for i := range scratch {
		scratch[i] = 0
	}
	for j, e := range dopriE {
		if e != 0 {
			floats.AddScaled(scratch, h*e, k[j])
		}
	}
	for i := range scratch {
		scratch[i] /= s.scale(y[i], yNew[i])
	}
	return floats.Norm(scratch, 2) / math.Sqrt(float64(len(scratch)))
}

func (s *Solver) scale(a, b float64) float64 {
	return s.Tolerance.Abs + s.Tolerance.Rel*math.Max(math.Abs(a), math.Abs(b))
}

// initialStep picks the first step size from the local behavior of f
// (Hairer, Nørsett & Wanner, section II.4).
func (s *Solver) initialStep(f Func, t float64, y, f0 []float64, span float64, y1, f1 []float64, st *Stats) float64 {
	n := float64(len(y))
	var d0, d1 float64
	for i := range y {
		sc := s.scale(y[i], y[i])
		d0 += (y[i] / sc) * (y[i] / sc)
		d1 += (f0[i] / sc) * (f0[i] / sc)
	}
	d0, d1 = math.Sqrt(d0/n), math.Sqrt(d1/n)

	h0 := 1e-6
	if d0 >= 1e-5 && d1 >= 1e-5 {
		h0 = 0.01 * d0 / d1
	}
	h0 = math.Min(h0, span)

	floats.AddScaledTo(y1, y, h0, f0)
	f(t+h0, y1, f1)
	st.Evaluations++
	var d2 float64
	for i := range y {
		sc := s.scale(y[i], y[i])
		d := (f1[i] - f0[i]) / sc
		d2 += d * d
	}
	d2 = math.Sqrt(d2/n) / h0

	var h1 float64
	if m := math.Max(d1, d2); m <= 1e-15 || math.IsNaN(m) {
		h1 = math.Max(1e-6, h0*1e-3)
	} else {
		h1 = math.Pow(0.01/m, 1.0/5)
	}
	h := math.Min(100*h0, h1)
	h = math.Min(h, span)
	if s.MaxStep > 0 {
		h = math.Min(h, s.MaxStep)
	}
	return h
}

// interpolate evaluates the continuous extension of the step from y (at
// theta=0) to yNew (at theta=1) into dst.
func interpolate(dst []float64, theta, h float64, y, yNew []float64, k *[7][]float64) {
	theta1 := 1 - theta
	for i := range dst {
		diff := yNew[i] - y[i]
		bspl := h*k[0][i] - diff
		r4 := diff - h*k[6][i] - bspl
		var r5 float64
		for j, d := range dopriD {
			r5 += d * k[j][i]
		}
		r5 *= h
		dst[i] = y[i] + theta*(diff+theta1*(bspl+theta*(r4+theta1*r5)))
	}
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}
	return true
}
