package rainbow

import "github.com/vovakirdan/rainbow-breaker/internal/core"

// Ball is a moving projectile that destroys blocks on contact.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Color  core.RGB
}

// Debris is a falling remnant of a destroyed block.
type Debris struct {
	Col, Row int // Grid cell the block was removed from
	X, Y     float64
	VX, VY   float64
	Color    core.RGB
}

// ID identifies an entity within a Set. IDs are never reused: the low 32
// bits hold the slot index and the high 32 bits its generation.
type ID uint64

func makeID(index int, gen uint32) ID {
	return ID(uint64(gen)<<32 | uint64(uint32(index))) //#nosec G115 -- slot index fits in 32 bits
}

func (id ID) index() int {
	return int(uint32(id)) //#nosec G115 -- low 32 bits
}

func (id ID) gen() uint32 {
	return uint32(id >> 32) //#nosec G115 -- high 32 bits
}

// slot is one arena entry.
type slot[T any] struct {
	value   T
	gen     uint32
	live    bool
	marked  bool
	pending bool // Added during Each; not visited until the pass ends
}

// Set is an index-stable arena of entities.
// Removal is two-phase: Mark during iteration, Sweep afterwards, so a pass
// never skips or repeats an entity.
type Set[T any] struct {
	slots     []slot[T]
	free      []int
	count     int
	iterating int
}

// NewSet creates an empty set with room for capacity entities.
func NewSet[T any](capacity int) *Set[T] {
	return &Set[T]{slots: make([]slot[T], 0, max(capacity, 0))}
}

// Len returns the number of live entities, marked ones included.
func (s *Set[T]) Len() int {
	return s.count
}

// Add inserts v and returns its ID.
func (s *Set[T]) Add(v T) ID {
	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot[T]{gen: 1})
		idx = len(s.slots) - 1
	}

	sl := &s.slots[idx]
	sl.value = v
	sl.live = true
	sl.marked = false
	sl.pending = s.iterating > 0
	s.count++

	return makeID(idx, sl.gen)
}

// Get returns a pointer to the entity with the given ID.
func (s *Set[T]) Get(id ID) (*T, bool) {
	sl := s.lookup(id)
	if sl == nil {
		return nil, false
	}
	return &sl.value, true
}

// Contains reports whether id refers to a live entity.
func (s *Set[T]) Contains(id ID) bool {
	return s.lookup(id) != nil
}

// Each calls fn for every live entity in slot order.
// Entities added by fn are not visited in the same pass.
func (s *Set[T]) Each(fn func(ID, *T)) {
	s.iterating++
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live || sl.pending {
			continue
		}
		fn(makeID(i, sl.gen), &sl.value)
	}
	s.iterating--

	if s.iterating == 0 {
		for i := range s.slots {
			s.slots[i].pending = false
		}
	}
}

// Mark schedules the entity for removal by the next Sweep.
// Marking twice, or marking an unknown ID, is a no-op.
func (s *Set[T]) Mark(id ID) {
	if sl := s.lookup(id); sl != nil {
		sl.marked = true
	}
}

// Marked reports whether the entity is scheduled for removal.
func (s *Set[T]) Marked(id ID) bool {
	sl := s.lookup(id)
	return sl != nil && sl.marked
}

// Sweep removes all marked entities and returns how many were removed.
func (s *Set[T]) Sweep() int {
	removed := 0
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live || !sl.marked {
			continue
		}
		var zero T
		sl.value = zero
		sl.live = false
		sl.marked = false
		sl.gen++
		s.free = append(s.free, i)
		s.count--
		removed++
	}
	return removed
}

// Clear removes every entity.
func (s *Set[T]) Clear() {
	for i := range s.slots {
		if s.slots[i].live {
			s.slots[i].marked = true
		}
	}
	s.Sweep()
}

func (s *Set[T]) lookup(id ID) *slot[T] {
	idx := id.index()
	if idx < 0 || idx >= len(s.slots) {
		return nil
	}
	sl := &s.slots[idx]
	if !sl.live || sl.gen != id.gen() {
		return nil
	}
	return sl
}
