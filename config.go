package main

import (
	"image/color"
	"time"
)

// Rendering and playback constants. Physical parameters and the frame interval
// live in pendulum.Config; these only shape the window.
const (
	windowTitle         = "Gravity Pendulum"
	defaultTPS          = 60
	defaultScale        = 200.0 // pixels per metre
	viewMargin          = 0.1   // metres around the swept region
	gridStep            = 0.25  // metres between grid lines
	rodWidth            = 2
	bobRadius           = 7
	pivotRadius         = 3
	phaseInsetWidth     = 240
	phaseInsetHeight    = 180
	audioSampleRate     = 48000
	audioBufferDuration = 80 * time.Millisecond
	toneFrequency       = 220.0
	toneSmoothing       = 0.002
	pcm16MaxValue       = 32767
)

var (
	backgroundColor = color.RGBA{250, 250, 250, 255}
	gridColor       = color.RGBA{220, 220, 220, 255}
	axisColor       = color.RGBA{170, 170, 170, 255}
	rodColor        = color.RGBA{31, 119, 180, 255}
	bobColor        = color.RGBA{0, 128, 0, 255}
	pivotColor      = color.RGBA{60, 60, 60, 255}
)
