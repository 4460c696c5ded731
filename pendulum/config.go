package pendulum

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Tolerance bounds the local error of each accepted step: component i must
// satisfy |err_i| <= Abs + Rel*|y_i| in the RMS sense. Abs must be positive
// so components that pass through zero still have a finite scale.
type Tolerance struct {
	Abs float64 `toml:"abs"`
	Rel float64 `toml:"rel"`
}

// Config holds everything needed to produce and play back one trajectory.
type Config struct {
	Gravity float64 `toml:"gravity"` // unit: m/s²
	Length  float64 `toml:"length"`  // unit: m
	Theta0  float64 `toml:"theta0"`  // unit: rad
	Omega0  float64 `toml:"omega0"`  // unit: rad/s

	Duration float64 `toml:"duration"` // unit: s, simulated window [0, Duration]
	Samples  int     `toml:"samples"`  // number of grid points, also the frame count

	Tolerance Tolerance `toml:"tolerance"`
	MaxStep   float64   `toml:"max_step"`  // unit: s, 0 means no limit
	MaxSteps  int       `toml:"max_steps"` // accepted plus rejected steps

	FrameInterval time.Duration `toml:"frame_interval"` // wall-clock delay between frames
	Loop          bool          `toml:"loop"`           // restart playback after the last frame
}

// DefaultConfig returns the reference scenario: a 1 m pendulum released from
// 45° at rest, sampled 250 times over 5 s and played at one frame per 40 ms.
func DefaultConfig() Config {
	return Config{
		Gravity:       9.81,
		Length:        1.0,
		Theta0:        45 * math.Pi / 180,
		Omega0:        0,
		Duration:      5,
		Samples:       250,
		Tolerance:     Tolerance{Abs: 1e-9, Rel: 1e-9},
		MaxSteps:      100000,
		FrameInterval: 40 * time.Millisecond,
		Loop:          true,
	}
}

// LoadConfig parses the TOML file at path on top of DefaultConfig.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return conf, conf.Validate()
}

// Params returns the physical constants of the configuration.
func (c Config) Params() Params {
	return Params{Gravity: c.Gravity, Length: c.Length}
}

// Initial returns the initial state of the configuration.
func (c Config) Initial() State {
	return State{Theta: c.Theta0, Omega: c.Omega0}
}

// Validate checks the preconditions the generator and the player rely on.
func (c Config) Validate() error {
	switch {
	case !isFinite(c.Length) || c.Length <= 0:
		return invalidf("length must be positive, got %g", c.Length)
	case !isFinite(c.Gravity):
		return invalidf("gravity must be finite, got %g", c.Gravity)
	case !c.Initial().finite():
		return invalidf("initial state must be finite, got theta=%g omega=%g", c.Theta0, c.Omega0)
	case !isFinite(c.Duration) || c.Duration <= 0:
		return invalidf("duration must be positive, got %g", c.Duration)
	case c.Samples < 2:
		return invalidf("need at least 2 samples, got %d", c.Samples)
	case !isFinite(c.Tolerance.Abs) || !isFinite(c.Tolerance.Rel) || c.Tolerance.Abs < 0 || c.Tolerance.Rel < 0:
		return invalidf("tolerances must be non-negative, got abs=%g rel=%g", c.Tolerance.Abs, c.Tolerance.Rel)
	case c.Tolerance.Abs == 0:
		return invalidf("absolute tolerance must be positive")
	case !isFinite(c.MaxStep) || c.MaxStep < 0:
		return invalidf("max step must be non-negative, got %g", c.MaxStep)
	case c.MaxSteps < 0:
		return invalidf("max steps must be non-negative, got %d", c.MaxSteps)
	case c.FrameInterval <= 0:
		return invalidf("frame interval must be positive, got %v", c.FrameInterval)
	}
	return nil
}
