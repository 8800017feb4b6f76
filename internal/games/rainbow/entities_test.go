package rainbow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddGet(t *testing.T) {
	s := NewSet[Ball](0)

	a := s.Add(Ball{X: 1})
	b := s.Add(Ball{X: 2})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, s.Len())

	got, ok := s.Get(b)
	require.True(t, ok)
	assert.Equal(t, 2.0, got.X)

	// Pointers are live views
	got.X = 5
	again, _ := s.Get(b)
	assert.Equal(t, 5.0, again.X)
}

func TestSetMarkSweep(t *testing.T) {
	s := NewSet[Ball](4)
	ids := []ID{s.Add(Ball{X: 0}), s.Add(Ball{X: 1}), s.Add(Ball{X: 2})}

	s.Mark(ids[1])
	s.Mark(ids[1])
	assert.True(t, s.Marked(ids[1]))
	assert.Equal(t, 3, s.Len(), "marking does not remove")

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(ids[1]))
	assert.Equal(t, 0, s.Sweep(), "nothing left to sweep")

	// Unknown and stale IDs are ignored
	s.Mark(ids[1])
	s.Mark(ID(1 << 40))
	assert.Equal(t, 0, s.Sweep())
}

func TestSetStaleIDAfterReuse(t *testing.T) {
	s := NewSet[Ball](1)
	old := s.Add(Ball{X: 1})
	s.Mark(old)
	s.Sweep()

	fresh := s.Add(Ball{X: 2})
	assert.NotEqual(t, old, fresh, "slot reuse yields a new ID")

	_, ok := s.Get(old)
	assert.False(t, ok)
	s.Mark(old)
	assert.False(t, s.Marked(fresh), "stale ID must not mark the new occupant")
}

func TestSetEachMarkingVisitsEveryEntityOnce(t *testing.T) {
	s := NewSet[Debris](0)
	for i := range 10 {
		s.Add(Debris{X: float64(i)})
	}

	visits := make(map[ID]int)
	s.Each(func(id ID, d *Debris) {
		visits[id]++
		if int(d.X)%3 == 0 {
			s.Mark(id)
		}
	})

	assert.Len(t, visits, 10)
	for id, n := range visits {
		assert.Equal(t, 1, n, "id %d", id)
	}

	assert.Equal(t, 4, s.Sweep()) // 0, 3, 6, 9
	assert.Equal(t, 6, s.Len())
}

func TestSetAddDuringEachIsDeferred(t *testing.T) {
	s := NewSet[Ball](0)
	first := s.Add(Ball{X: 1})
	s.Mark(first)
	s.Sweep() // leaves a free slot at index 0
	s.Add(Ball{X: 2})

	visited := 0
	s.Each(func(_ ID, b *Ball) {
		visited++
		s.Add(Ball{X: b.X + 10})
	})
	assert.Equal(t, 1, visited)
	assert.Equal(t, 2, s.Len())

	visited = 0
	s.Each(func(ID, *Ball) { visited++ })
	assert.Equal(t, 2, visited, "entities added in a pass are visited next pass")
}

func TestSetClear(t *testing.T) {
	s := NewSet[Ball](0)
	id := s.Add(Ball{})
	s.Add(Ball{})

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(id))

	next := s.Add(Ball{})
	assert.NotEqual(t, id, next)
}
