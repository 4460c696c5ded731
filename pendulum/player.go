package pendulum

import "time"

// Player hands out one position per fixed frame interval. The renderer drives
// it by reporting elapsed wall-clock time; leftover time is carried over so the
// average frame rate matches the interval whatever the caller's tick rate.
type Player struct {
	frames   []Position
	interval time.Duration
	loop     bool

	index   int
	elapsed time.Duration
	done    bool
}

// NewPlayer returns a player positioned on the first frame.
func NewPlayer(frames []Position, interval time.Duration, loop bool) (*Player, error) {
	if len(frames) == 0 {
		return nil, invalidf("no frames to play")
	}
	if interval <= 0 {
		return nil, invalidf("frame interval must be positive, got %v", interval)
	}
	return &Player{frames: frames, interval: interval, loop: loop}, nil
}

// Tick adds dt to the clock and advances by every whole interval that has
// passed. It returns the number of frames advanced.
func (p *Player) Tick(dt time.Duration) int {
	if p.done || dt <= 0 {
		return 0
	}
	p.elapsed += dt
	advanced := 0
	for p.elapsed >= p.interval {
		p.elapsed -= p.interval
		if p.index == len(p.frames)-1 {
			if !p.loop {
				p.done = true
				p.elapsed = 0
				break
			}
			p.index = 0
		} else {
			p.index++
		}
		advanced++
	}
	return advanced
}

// Frame returns the current frame index and position.
func (p *Player) Frame() (int, Position) {
	return p.index, p.frames[p.index]
}

// Done reports whether a non-looping player has shown its last frame for a
// full interval.
func (p *Player) Done() bool { return p.done }

// Reset rewinds to the first frame.
func (p *Player) Reset() {
	p.index = 0
	p.elapsed = 0
	p.done = false
}

// Len returns the number of frames.
func (p *Player) Len() int { return len(p.frames) }

// Interval returns the delay between frames.
func (p *Player) Interval() time.Duration { return p.interval }
