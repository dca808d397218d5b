package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/chrono/internal/lib/interval"
)

func TestConcur(t *testing.T) {
	t.Run("returns the overlap of overlapping intervals", func(t *testing.T) {
		x := mustInterval(t, day(1), day(3))
		y := mustInterval(t, day(2), day(4))

		overlap, ok, err := interval.Concur(x, y)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, overlap.Equal(mustInterval(t, day(2), day(3))))
	})

	t.Run("returns none for meeting intervals", func(t *testing.T) {
		x := mustInterval(t, day(1), day(2))
		y := mustInterval(t, day(2), day(3))

		rel, err := interval.Relation(x, y)
		assert.NoError(t, err)
		assert.Equal(t, interval.Meets, rel)

		_, ok, err := interval.Concur(x, y)
		assert.NoError(t, err)
		assert.False(t, ok)

		disjoint, err := interval.IsDisjoint(x, y)
		assert.NoError(t, err)
		assert.True(t, disjoint)
	})

	t.Run("returns the contained interval for containment", func(t *testing.T) {
		x := mustInterval(t, day(1), day(4))
		y := mustInterval(t, day(2), day(3))

		rel, err := interval.Relation(x, y)
		assert.NoError(t, err)
		assert.Equal(t, interval.Contains, rel)

		overlap, ok, err := interval.Concur(x, y)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, overlap.Equal(y))
	})

	t.Run("an interval concurs with itself entirely", func(t *testing.T) {
		for d1 := 1; d1 <= 4; d1++ {
			for d2 := d1 + 1; d2 <= 5; d2++ {
				x := mustInterval(t, day(d1), day(d2))
				overlap, ok, err := interval.Concur(x, x)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.True(t, overlap.Equal(x))
			}
		}
	})

	t.Run("agrees with the concurrent general relation on every pair", func(t *testing.T) {
		for x1 := 1; x1 <= 5; x1++ {
			for x2 := x1 + 1; x2 <= 5; x2++ {
				for y1 := 1; y1 <= 5; y1++ {
					for y2 := y1 + 1; y2 <= 5; y2++ {
						x := mustInterval(t, day(x1), day(x2))
						y := mustInterval(t, day(y1), day(y2))

						_, ok, err := interval.Concur(x, y)
						assert.NoError(t, err)
						concurrent, err := interval.IsConcurrent(x, y)
						assert.NoError(t, err)
						assert.Equal(t, concurrent, ok)
					}
				}
			}
		}
	})

	t.Run("keeps the tag of the interval the overlap derives from", func(t *testing.T) {
		x, err := interval.NewTagged(day(1), day(3), "x")
		assert.NoError(t, err)
		y, err := interval.NewTagged(day(2), day(4), "y")
		assert.NoError(t, err)

		overlap, ok, err := interval.Concur(x, y)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "x", overlap.Tag())

		contained, err := interval.NewTagged(day(1), day(2), "inner")
		assert.NoError(t, err)
		container, err := interval.NewTagged(day(1), day(4), "outer")
		assert.NoError(t, err)

		overlap, ok, err = interval.Concur(container, contained)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "inner", overlap.Tag())
	})

	t.Run("returns error for invalid input", func(t *testing.T) {
		x := mustInterval(t, day(1), day(2))
		_, _, err := interval.Concur(x, interval.Interval{})
		assert.Error(t, err)
	})
}
