package ecs

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// -------------------------------------------------------------------------------------------------
// Model-based fuzzing
//
// Applies the same random sequence of assign/free/get operations to a Pool and to a Go map and
// checks that they agree after every step. Also checks that the dense storage never grows past
// the peak number of stored values, i.e. freed slots are always reused.
// -------------------------------------------------------------------------------------------------

func TestPool_ModelBasedFuzz(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(1, 2))

	impl := NewPool[int](0)
	model := make(map[uint32]int)

	const (
		opsMax = 1 << 14
		maxKey = 2_000
	)

	peak := 0
	for range opsMax {
		e := Entity{index: uint32(prng.IntN(maxKey))}

		switch op := prng.IntN(100); {
		case op < 55:
			value := prng.Int()
			got := impl.Assign(e, value)
			model[e.index] = value
			peak = max(peak, len(model))

			assert.Equal(t, value, *got, "assign(%d) returned wrong value", e.index)

		case op < 90:
			impl.Free(e)
			delete(model, e.index)

			assert.Nil(t, impl.Get(e), "free(%d) then get should be absent", e.index)

		default:
			want, ok := model[e.index]
			got := impl.Get(e)
			assert.Equal(t, ok, got != nil, "get(%d) existence mismatch", e.index)
			if ok && got != nil {
				assert.Equal(t, want, *got, "get(%d) value mismatch", e.index)
			}
		}

		assert.Equal(t, len(model), impl.Len())
		assert.Equal(t, int(impl.nextIndex), impl.Len()+impl.FreeLen())
		assert.LessOrEqual(t, int(impl.nextIndex), peak)
	}

	for key, want := range model {
		got := impl.Get(Entity{index: key})
		if assert.NotNil(t, got, "key %d should exist", key) {
			assert.Equal(t, want, *got)
		}
	}
}

func TestPoolFreeZeroesValue(t *testing.T) {
	pool := NewPool[*int](0)
	e := Entity{index: 3}

	v := 5
	slot := pool.Assign(e, &v)
	pool.Free(e)

	assert.Nil(t, *slot, "freed slot should not keep references alive")
}
