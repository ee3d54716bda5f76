package aml

// Handle identifies a binding. Handles stay valid until the binding is
// swept; a swept handle never matches a later binding that reuses its slot.
// The zero Handle is never valid.
type Handle struct {
	slot uint32
	gen  uint32
}

// Valid reports whether h was ever returned by Bind.
func (h Handle) Valid() bool {
	return h.gen != 0
}

// CompleteFunc is called once when a binding finishes its last scene. It may
// call Unbind, Bind or Run on the engine.
type CompleteFunc func(data any, target Target)

// binding is one live target/animation association.
type binding struct {
	target         Target
	anim           *Animation
	onComplete     CompleteFunc
	data           any
	pendingRemoval bool
	pb             playback
}

type registrySlot struct {
	gen uint32
	b   *binding
}

// registry is an arena of bindings. Removal is two-phase: markRemoval flags
// a binding, and sweep frees flagged slots once no iteration is running.
type registry struct {
	slots     []registrySlot
	free      []uint32
	live      int
	iterating bool
}

func (r *registry) add(b *binding) Handle {
	var idx uint32
	if n := len(r.free); n > 0 && !r.iterating {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, registrySlot{gen: 1})
		idx = uint32(len(r.slots) - 1)
	}
	r.slots[idx].b = b
	r.live++
	return Handle{slot: idx, gen: r.slots[idx].gen}
}

// get returns the binding for h, including bindings flagged for removal.
func (r *registry) get(h Handle) *binding {
	if !h.Valid() || int(h.slot) >= len(r.slots) {
		return nil
	}
	s := r.slots[h.slot]
	if s.gen != h.gen {
		return nil
	}
	return s.b
}

// markRemoval flags the binding. It reports false for unknown handles and
// bindings already flagged.
func (r *registry) markRemoval(h Handle) bool {
	b := r.get(h)
	if b == nil || b.pendingRemoval {
		return false
	}
	b.pendingRemoval = true
	return true
}

// each calls fn for every binding not flagged for removal. Bindings added
// during the pass are not visited; bindings flagged during the pass are
// skipped if not yet visited. Nested calls are ignored.
func (r *registry) each(fn func(h Handle, b *binding)) {
	if r.iterating {
		return
	}
	r.iterating = true
	defer func() { r.iterating = false }()
	n := len(r.slots)
	for i := 0; i < n; i++ {
		s := r.slots[i]
		if s.b == nil || s.b.pendingRemoval {
			continue
		}
		fn(Handle{slot: uint32(i), gen: s.gen}, s.b)
	}
}

// visit is like each but also runs inside an iteration. Used by Run, which
// may be called from a completion callback.
func (r *registry) visit(fn func(b *binding)) {
	for i := range r.slots {
		if b := r.slots[i].b; b != nil && !b.pendingRemoval {
			fn(b)
		}
	}
}

// sweep frees every flagged binding, calling release first. It returns the
// number removed, or -1 if an iteration is in progress.
func (r *registry) sweep(release func(b *binding)) int {
	if r.iterating {
		return -1
	}
	removed := 0
	for i := range r.slots {
		s := &r.slots[i]
		if s.b == nil || !s.b.pendingRemoval {
			continue
		}
		if release != nil {
			release(s.b)
		}
		r.freeSlot(uint32(i))
		removed++
	}
	return removed
}

// clear frees every binding.
func (r *registry) clear(release func(b *binding)) {
	for i := range r.slots {
		if r.slots[i].b == nil {
			continue
		}
		if release != nil {
			release(r.slots[i].b)
		}
		r.freeSlot(uint32(i))
	}
}

func (r *registry) freeSlot(i uint32) {
	r.slots[i].b = nil
	r.slots[i].gen++
	if r.slots[i].gen == 0 {
		r.slots[i].gen = 1
	}
	r.free = append(r.free, i)
	r.live--
}

// len returns the number of bindings, flagged ones included.
func (r *registry) len() int {
	return r.live
}
