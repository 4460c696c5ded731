package main

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// withCPUProfile runs work while recording a CPU profile to path. The profile
// is flushed even when work fails.
func withCPUProfile(path string, work func() error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cpu profile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cpu profile: %w", cerr)
		}
	}()
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("cpu profile: %w", err)
	}
	defer pprof.StopCPUProfile()
	return work()
}
