package staticvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Access(t *testing.T) {
	t.Run("at returns elements inside the live range", func(t *testing.T) {
		v := Of(10, 20, 30)

		got, err := v.At(1)

		require.NoError(t, err)
		assert.Equal(t, 20, got)
	})

	t.Run("at rejects indexes outside the live range", func(t *testing.T) {
		v := Of(10, 20, 30)

		for _, idx := range []int{-1, 3, 100} {
			_, err := v.At(idx)
			assert.ErrorIs(t, err, ErrOutOfRange, "index %d", idx)
		}

		_, err := v.At(3)
		var idxErr *IndexError
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, 3, idxErr.Index)
		assert.Equal(t, 3, idxErr.Size)
	})

	t.Run("at never reads dead slots", func(t *testing.T) {
		v := New[int](5)
		require.NoError(t, v.PushBack(1))

		// Slots 1..4 exist in storage but hold no live elements.
		_, err := v.At(1)

		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("set replaces and destroys the old value", func(t *testing.T) {
		rec := &dropRecorder{}
		v, err := FromSlice(2, []string{"old", "keep"}, WithDrop(rec.hook()))
		require.NoError(t, err)

		require.NoError(t, v.Set(0, "new"))

		assert.Equal(t, []string{"new", "keep"}, v.Data())
		assert.Equal(t, []string{"old"}, rec.order)
	})

	t.Run("set rejects indexes outside the live range", func(t *testing.T) {
		v := Of(1)

		assert.ErrorIs(t, v.Set(1, 9), ErrOutOfRange)
	})

	t.Run("get panics outside the live range", func(t *testing.T) {
		v := Of(1, 2)

		assert.Equal(t, 2, v.Get(1))
		assert.Panics(t, func() { v.Get(2) })
		assert.Panics(t, func() { v.Get(-1) })
	})

	t.Run("front and back", func(t *testing.T) {
		v := Of(1, 2, 3)

		assert.Equal(t, 1, v.Front())
		assert.Equal(t, 3, v.Back())
	})

	t.Run("front and back panic on empty", func(t *testing.T) {
		v := New[int](3)

		assert.Panics(t, func() { v.Front() })
		assert.Panics(t, func() { v.Back() })
	})
}

func TestVector_Data(t *testing.T) {
	t.Run("data shares the vector storage", func(t *testing.T) {
		v := Of(1, 2, 3)

		d := v.Data()
		d[0] = 99

		assert.Equal(t, 99, v.Get(0))
	})

	t.Run("data cannot append into dead slots", func(t *testing.T) {
		v := New[int](5)
		require.NoError(t, v.PushBack(1))

		d := v.Data()
		assert.Equal(t, 1, len(d))
		assert.Equal(t, 1, cap(d), "full-slice expression pins the capacity")

		// An append reallocates instead of writing slot 1.
		d = append(d, 42)
		assert.Equal(t, 1, v.Len())
		_, err := v.At(1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestVector_Iteration(t *testing.T) {
	t.Run("all walks forward with indexes", func(t *testing.T) {
		v := Of("a", "b", "c")

		var idxs []int
		var vals []string
		for i, s := range v.All() {
			idxs = append(idxs, i)
			vals = append(vals, s)
		}

		assert.Equal(t, []int{0, 1, 2}, idxs)
		assert.Equal(t, []string{"a", "b", "c"}, vals)
	})

	t.Run("values walks forward", func(t *testing.T) {
		v := Of(1, 2, 3)

		var got []int
		for n := range v.Values() {
			got = append(got, n)
		}

		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("backward walks in reverse", func(t *testing.T) {
		v := Of("a", "b", "c")

		var idxs []int
		var vals []string
		for i, s := range v.Backward() {
			idxs = append(idxs, i)
			vals = append(vals, s)
		}

		assert.Equal(t, []int{2, 1, 0}, idxs)
		assert.Equal(t, []string{"c", "b", "a"}, vals)
	})

	t.Run("iteration stops on break", func(t *testing.T) {
		v := Of(1, 2, 3, 4)

		seen := 0
		for range v.Values() {
			seen++
			if seen == 2 {
				break
			}
		}

		assert.Equal(t, 2, seen)
	})

	t.Run("empty vector yields nothing", func(t *testing.T) {
		v := New[int](3)

		for range v.All() {
			t.Fatal("unexpected element")
		}
		for range v.Backward() {
			t.Fatal("unexpected element")
		}
	})
}
