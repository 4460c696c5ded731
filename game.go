package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"pendulumviz/pendulum"
	"pendulumviz/report"
)

// Game plays a precomputed trajectory back at the configured frame interval.
type Game struct {
	conf   pendulum.Config
	traj   *pendulum.Trajectory
	player *pendulum.Player

	bounds        pendulum.Bounds
	scale         float64
	width, height int

	phase     *ebiten.Image
	showDebug bool

	// peakOmega normalizes the audio level; zero when the bob never moves.
	peakOmega float64

	audioCtx    *audio.Context
	audioStream *swingAudioStream
	audioPlayer *audio.Player
}

// newGame prepares playback of traj. scale is in pixels per metre.
func newGame(conf pendulum.Config, traj *pendulum.Trajectory, scale float64) (*Game, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale must be positive, got %g", pendulum.ErrInvalidParameter, scale)
	}
	player, err := pendulum.NewPlayer(traj.Positions, conf.FrameInterval, conf.Loop)
	if err != nil {
		return nil, err
	}
	bounds := pendulum.ViewBounds(conf.Length, viewMargin)
	g := &Game{
		conf:      conf,
		traj:      traj,
		player:    player,
		bounds:    bounds,
		scale:     scale,
		width:     int(math.Ceil(bounds.Width() * scale)),
		height:    int(math.Ceil(bounds.Height() * scale)),
		showDebug: *debugFlag,
	}
	g.peakOmega = peakOmega(traj.States)

	if *phaseFlag {
		if img, err := report.PhasePortrait(traj, phaseInsetWidth, phaseInsetHeight); err != nil {
			log.Printf("Phase portrait unavailable: %v", err)
		} else {
			g.phase = ebiten.NewImageFromImage(img)
		}
	}

	if *enableAudioFlag {
		ctx := audio.NewContext(audioSampleRate)
		g.audioCtx = ctx
		stream := newSwingAudioStream(audioSampleRate, toneFrequency)
		g.audioStream = stream
		if p, err := ctx.NewPlayer(stream); err != nil {
			log.Printf("Audio player creation failed: %v", err)
		} else {
			g.audioPlayer = p
			g.audioPlayer.SetBufferSize(audioBufferDuration)
			g.audioPlayer.Play()
		}
	}
	return g, nil
}

// Update advances playback by one tick of wall time.
func (g *Game) Update() error {
	if g.handleInput() {
		return ebiten.Termination
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	g.player.Tick(time.Second / time.Duration(tps))

	if g.audioStream != nil {
		g.audioStream.SetLevel(g.swingLevel())
	}
	return nil
}

func peakOmega(states []pendulum.State) float64 {
	var peak float64
	for _, s := range states {
		peak = math.Max(peak, math.Abs(s.Omega))
	}
	return peak
}

// swingLevel is the angular speed of the frame on screen relative to the
// fastest frame, or zero once playback has stopped.
func (g *Game) swingLevel() float32 {
	if g.peakOmega == 0 || g.player.Done() {
		return 0
	}
	i, _ := g.player.Frame()
	return float32(math.Abs(g.traj.States[i].Omega) / g.peakOmega)
}
