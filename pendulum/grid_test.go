package pendulum

import (
	"errors"
	"math"
	"testing"
)

func TestNewTimeGrid(t *testing.T) {
	g, err := NewTimeGrid(5, 250)
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 250 {
		t.Fatalf("len = %d, want 250", len(g))
	}
	if g[0] != 0 || g[len(g)-1] != 5 {
		t.Fatalf("endpoints = %g, %g, want 0, 5", g[0], g[len(g)-1])
	}
	step := 5.0 / 249
	if math.Abs(g.Spacing()-step) > 1e-15 {
		t.Fatalf("Spacing = %g, want %g", g.Spacing(), step)
	}
	for i := 1; i < len(g); i++ {
		if d := g[i] - g[i-1]; math.Abs(d-step) > 1e-12 {
			t.Fatalf("spacing at %d = %g, want %g", i, d, step)
		}
	}
}

func TestNewTimeGridInvalid(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		n        int
	}{
		{"one sample", 5, 1},
		{"no samples", 5, 0},
		{"negative samples", 5, -3},
		{"zero duration", 0, 10},
		{"negative duration", -1, 10},
		{"nan duration", math.NaN(), 10},
		{"inf duration", math.Inf(1), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTimeGrid(tt.duration, tt.n); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestCheckIncreasing(t *testing.T) {
	tests := []struct {
		name string
		ts   []float64
		ok   bool
	}{
		{"single", []float64{0}, true},
		{"increasing", []float64{0, 0.1, 0.5, 3}, true},
		{"empty", nil, false},
		{"repeated", []float64{0, 1, 1}, false},
		{"decreasing", []float64{0, 2, 1}, false},
		{"nan", []float64{0, math.NaN()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkIncreasing(tt.ts)
			if tt.ok != (err == nil) {
				t.Fatalf("checkIncreasing(%v) = %v", tt.ts, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
