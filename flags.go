package main

import "flag"

// Command-line flags. With none set the program plays the built-in scenario.
var (
	// configPathFlag points at a TOML scenario overriding the defaults.
	configPathFlag = flag.String("config", "", "path to a TOML scenario file (built-in scenario when empty)")

	// headlessFlag prints a summary instead of opening a window.
	headlessFlag = flag.Bool("headless", false, "print a trajectory summary to stdout instead of opening a window")

	// debugFlag starts with the state overlay visible; F1 toggles it.
	debugFlag = flag.Bool("debug", false, "show frame, state and TPS overlay")

	noLoopFlag = flag.Bool("no-loop", false, "hold the last frame instead of restarting playback")

	// phaseFlag draws the phase portrait in the top-right corner.
	phaseFlag = flag.Bool("phase", false, "overlay the phase portrait (omega against theta)")

	// enableAudioFlag plays a tone whose loudness follows the angular speed.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a tone that follows the angular speed")

	scaleFlag = flag.Float64("scale", defaultScale, "pixels per metre")

	// cpuProfileFlag captures a CPU profile of trajectory generation.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile of trajectory generation to this file")
)
