package aml

import "time"

// TickFunc is invoked once per display frame with the scheduler's clock.
type TickFunc func(now time.Duration)

// Scheduler is the periodic callback slot the engine drives playback from.
// The engine arms it while at least one binding is playing and disarms it
// when all have finished. Implementations call the armed function at most
// once per frame and never concurrently with itself.
type Scheduler interface {
	// Now returns the current scheduler time.
	Now() time.Duration
	// Arm installs fn, replacing any previously armed function.
	Arm(fn TickFunc)
	// Disarm removes the armed function.
	Disarm()
}

// DefaultTPS is the frame rate used when none is configured.
const DefaultTPS = 60

// FrameScheduler is a fixed-step Scheduler. Its clock only moves when
// Advance or Set is called, which makes playback deterministic: the
// Ebitengine Game advances it once per Update, and tests set it directly.
type FrameScheduler struct {
	now  time.Duration
	step time.Duration
	fn   TickFunc
}

// NewFrameScheduler returns a scheduler advancing 1/tps seconds per frame.
// A non-positive tps uses DefaultTPS.
func NewFrameScheduler(tps int) *FrameScheduler {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &FrameScheduler{step: time.Second / time.Duration(tps)}
}

// Now implements Scheduler.
func (s *FrameScheduler) Now() time.Duration { return s.now }

// Arm implements Scheduler.
func (s *FrameScheduler) Arm(fn TickFunc) { s.fn = fn }

// Disarm implements Scheduler.
func (s *FrameScheduler) Disarm() { s.fn = nil }

// Armed reports whether a function is installed.
func (s *FrameScheduler) Armed() bool { return s.fn != nil }

// Step returns the frame length.
func (s *FrameScheduler) Step() time.Duration { return s.step }

// Advance moves the clock forward one frame and fires the armed function.
func (s *FrameScheduler) Advance() {
	s.Set(s.now + s.step)
}

// Set moves the clock to now and fires the armed function. Moving the clock
// backwards is allowed; playback then holds until it catches up.
func (s *FrameScheduler) Set(now time.Duration) {
	s.now = now
	if fn := s.fn; fn != nil {
		fn(now)
	}
}
