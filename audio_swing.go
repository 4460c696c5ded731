package main

import (
	"math"
	"sync"
)

// swingAudioStream is an endless 16-bit stereo sine tone for ebiten's audio
// player. Its loudness follows the level set from the game loop.
type swingAudioStream struct {
	mu    sync.Mutex
	level float32 // target loudness in [0, 1]
	gain  float32 // loudness actually applied, eased toward level
	phase float64
	step  float64 // phase increment per frame
}

func newSwingAudioStream(sampleRate int, frequency float64) *swingAudioStream {
	return &swingAudioStream{step: 2 * math.Pi * frequency / float64(sampleRate)}
}

// SetLevel sets the target loudness, clamped to [0, 1].
func (s *swingAudioStream) SetLevel(v float32) {
	if v > 1 {
		v = 1
	} else if v < 0 || math.IsNaN(float64(v)) {
		v = 0
	}
	s.mu.Lock()
	s.level = v
	s.mu.Unlock()
}

func (s *swingAudioStream) Read(p []byte) (int, error) {
	// Only whole stereo frames (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < frameBytes; i += 4 {
		// Ease the gain so level changes between frames do not click.
		s.gain += (s.level - s.gain) * toneSmoothing
		v := int16(float64(s.gain) * 0.5 * math.Sin(s.phase) * pcm16MaxValue)
		s.phase += s.step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *swingAudioStream) Close() error {
	return nil
}
