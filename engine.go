package aml

import (
	"fmt"
	"time"
)

// Engine owns the loaded document and the bindings, and plays them from its
// scheduler. It is not safe for concurrent use; all calls, including the
// scheduler's tick, must come from the same goroutine.
type Engine struct {
	doc     *Document
	reg     registry
	sched   Scheduler
	applier Applier
	log     Logger

	debug       bool
	perspective float64

	armed          bool
	ticking        bool
	destroyPending bool
	destroyed      bool
}

// NewEngine creates an engine with no document and no bindings.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		sched:       cfg.Scheduler,
		applier:     cfg.Applier,
		log:         cfg.logger(),
		debug:       cfg.Debug,
		perspective: cfg.Perspective,
	}
	if e.sched == nil {
		e.sched = NewFrameScheduler(cfg.TPS)
	}
	if e.applier == nil {
		e.applier = NodeApplier{}
	}
	return e
}

// Scheduler returns the scheduler driving the engine.
func (e *Engine) Scheduler() Scheduler {
	return e.sched
}

// Document returns the loaded document, or nil.
func (e *Engine) Document() *Document {
	return e.doc
}

// SetDebugMode enables or disables per-tick stats logging.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// install replaces the document. Bindings keep playing the animations they
// were bound to.
func (e *Engine) install(doc *Document) error {
	if e.destroyed {
		return ErrDestroyed
	}
	for _, title := range doc.duplicates {
		e.log.Warn("duplicate animation title; first one wins", "animation", title)
	}
	e.doc = doc
	e.log.Debug("document loaded", "animations", doc.Len())
	return nil
}

// Bind associates target with the animation titled title. The target's
// current Bounds become the OBJECT reference for every scene. Playback
// starts at the next Run. onComplete may be nil.
func (e *Engine) Bind(target Target, title string, onComplete CompleteFunc, data any) (Handle, error) {
	if e.destroyed {
		return Handle{}, ErrDestroyed
	}
	if target == nil {
		return Handle{}, fmt.Errorf("aml: bind %q: nil target", title)
	}
	anim, ok := e.doc.Lookup(title)
	if !ok {
		return Handle{}, fmt.Errorf("%w: %q", ErrUnknownAnimation, title)
	}
	b := &binding{
		target:     target,
		anim:       anim,
		onComplete: onComplete,
		data:       data,
	}
	b.pb.object = basisFromBounds(target.Bounds())
	b.pb.current = b.pb.object
	b.pb.values = b.pb.object
	h := e.reg.add(b)
	e.log.Debug("bound", "animation", title, "slot", h.slot)
	return h, nil
}

// Unbind flags the binding for removal. It stops playing at once and is
// removed after the current tick, so it is safe to call from a completion
// callback. It reports false for unknown or already unbound handles.
func (e *Engine) Unbind(h Handle) bool {
	if e.destroyed {
		return false
	}
	if !e.reg.markRemoval(h) {
		return false
	}
	if !e.ticking {
		e.sweep()
	}
	return true
}

// Run starts every binding at the first scene of its animation and arms the
// scheduler. Bindings already playing restart.
func (e *Engine) Run() {
	if e.destroyed {
		return
	}
	now := e.sched.Now()
	started := 0
	e.reg.visit(func(b *binding) {
		b.pb.start(b.anim, now)
		started++
	})
	if started > 0 {
		e.arm()
	}
}

// Tick advances every playing binding to now. The scheduler calls it once
// per frame; it may also be called directly. Reentrant calls are ignored.
func (e *Engine) Tick(now time.Duration) {
	if e.destroyed || e.ticking {
		return
	}
	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.ticking = true
	e.reg.each(func(_ Handle, b *binding) {
		e.stepBinding(b, now, &stats)
	})
	e.ticking = false

	stats.swept = e.sweep()
	if e.destroyPending {
		e.teardown()
		return
	}

	stats.activeAfter = e.active()
	if stats.activeAfter == 0 {
		e.disarm()
	}
	if e.debug {
		stats.tickTime = time.Since(t0)
		e.debugLog(stats)
	}
}

// stepBinding runs one tick of one binding: resolve the state transition,
// push the frame, then report completion.
func (e *Engine) stepBinding(b *binding, now time.Duration, stats *debugStats) {
	switch b.pb.state {
	case StateIdle:
		return
	case StateChainComplete:
		e.release(b)
		b.pb.setState(StateIdle)
		return
	}
	if d, ok := b.target.(disposable); ok && d.IsDisposed() {
		b.pb.engaged = false
		b.pb.setState(StateIdle)
		e.log.Debug("target disposed; binding stopped", "animation", b.anim.Title)
		return
	}

	stats.stepped++
	res := b.pb.step(b.anim, now)
	if res.degenerate {
		e.log.Warn("degenerate scene skipped",
			"animation", b.anim.Title,
			"scene", res.scene.Title,
			"start", res.scene.Start,
			"end", res.scene.End,
			"error", ErrDegenerateScene,
		)
	}
	if res.scene != nil {
		e.applier.Apply(b.target, composeTransform(res.values, b.pb.object, res.scene.Center, e.perspective))
		e.applier.ApplyColor(b.target, composeColor(res.values))
		b.pb.engaged = true
	}
	if res.chained {
		stats.chained++
	}
	if res.completed {
		stats.completed++
		if b.onComplete != nil {
			b.onComplete(b.data, b.target)
		}
	}
}

// release takes the target out of transform mode if the sink still has it.
func (e *Engine) release(b *binding) {
	if !b.pb.engaged {
		return
	}
	b.pb.engaged = false
	e.applier.Release(b.target)
}

// Sweep removes bindings flagged by Unbind and returns how many were
// removed. The engine sweeps after every tick; calling Sweep during a tick
// does nothing.
func (e *Engine) Sweep() int {
	if e.destroyed {
		return 0
	}
	if e.ticking {
		e.log.Warn("sweep requested during tick; deferred")
		return 0
	}
	return e.sweep()
}

func (e *Engine) sweep() int {
	n := e.reg.sweep(e.release)
	if n < 0 {
		return 0
	}
	return n
}

// active counts bindings that still need ticks.
func (e *Engine) active() int {
	n := 0
	e.reg.visit(func(b *binding) {
		if b.pb.state != StateIdle {
			n++
		}
	})
	return n
}

func (e *Engine) arm() {
	if e.armed {
		return
	}
	e.sched.Arm(e.Tick)
	e.armed = true
}

func (e *Engine) disarm() {
	if !e.armed {
		return
	}
	e.sched.Disarm()
	e.armed = false
}

// Destroy disarms the scheduler, releases every target still in transform
// mode and drops the document and all bindings. Called during a tick, it
// takes effect when the tick ends.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	if e.ticking {
		e.destroyPending = true
		return
	}
	e.teardown()
}

func (e *Engine) teardown() {
	e.disarm()
	e.reg.clear(e.release)
	e.doc = nil
	e.destroyPending = false
	e.destroyed = true
	e.log.Debug("engine destroyed")
}

// State returns the playback state of a binding.
func (e *Engine) State(h Handle) (PlayState, bool) {
	b := e.reg.get(h)
	if b == nil {
		return StateIdle, false
	}
	return b.pb.state, true
}

// Values returns the frame last handed to the sink for a binding. Before
// the first tick it reports the bind-time placement.
func (e *Engine) Values(h Handle) (Frame, bool) {
	b := e.reg.get(h)
	if b == nil {
		return Frame{}, false
	}
	center := DefaultScene().Center
	if s := b.pb.applied; s != nil {
		center = s.Center
	}
	return Frame{
		Transform: composeTransform(b.pb.values, b.pb.object, center, e.perspective),
		Color:     composeColor(b.pb.values),
	}, true
}

// Len returns the number of bindings, including those awaiting removal.
func (e *Engine) Len() int {
	return e.reg.len()
}
