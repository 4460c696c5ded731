package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pendulumviz/pendulum"
	"pendulumviz/report"
)

func main() {
	flag.Parse()

	conf, err := loadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	log.Printf("Pendulum: L=%g m, g=%g m/s^2, theta0=%.6f rad, omega0=%g rad/s, %d samples over %g s",
		conf.Length, conf.Gravity, conf.Theta0, conf.Omega0, conf.Samples, conf.Duration)

	traj, err := buildTrajectory(conf)
	if err != nil {
		log.Fatalf("Trajectory generation failed: %v", err)
	}
	log.Printf("Solver: %d steps accepted, %d rejected, %d evaluations, energy drift %.3e",
		traj.Stats.Accepted, traj.Stats.Rejected, traj.Stats.Evaluations, traj.EnergyDrift())

	if *headlessFlag {
		fmt.Print(report.Summary(conf, traj))
		return
	}

	g, err := newGame(conf, traj, *scaleFlag)
	if err != nil {
		log.Fatalf("Playback setup failed: %v", err)
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}
}

// loadConfig returns the built-in scenario or the -config file, with flag
// overrides applied.
func loadConfig() (pendulum.Config, error) {
	conf := pendulum.DefaultConfig()
	if *configPathFlag != "" {
		var err error
		if conf, err = pendulum.LoadConfig(*configPathFlag); err != nil {
			return conf, err
		}
	}
	if *noLoopFlag {
		conf.Loop = false
	}
	return conf, conf.Validate()
}

// buildTrajectory computes the whole trajectory before any window opens,
// profiling the run when -cpuprofile is set.
func buildTrajectory(conf pendulum.Config) (*pendulum.Trajectory, error) {
	gen, err := pendulum.NewGenerator(conf)
	if err != nil {
		return nil, err
	}
	if *cpuProfileFlag == "" {
		return gen.Generate()
	}
	var traj *pendulum.Trajectory
	err = withCPUProfile(*cpuProfileFlag, func() error {
		var err error
		traj, err = gen.Generate()
		return err
	})
	if err == nil {
		log.Printf("CPU profile written to %s", *cpuProfileFlag)
	}
	return traj, err
}
