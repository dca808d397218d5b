package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/chrono/internal/errors"
	"github.com/goto/chrono/internal/lib/interval"
)

func TestGeneralRelation(t *testing.T) {
	t.Run("Evaluate", func(t *testing.T) {
		t.Run("returns the member relation that holds", func(t *testing.T) {
			x := mustInterval(t, day(1), day(2))
			y := mustInterval(t, day(2), day(3))

			rel, ok, err := interval.Evaluate(interval.Disjoint, x, y)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, interval.Meets, rel)
		})
		t.Run("returns false when the holding relation is not a member", func(t *testing.T) {
			x := mustInterval(t, day(1), day(3))
			y := mustInterval(t, day(2), day(4))

			_, ok, err := interval.Evaluate(interval.Disjoint, x, y)
			assert.NoError(t, err)
			assert.False(t, ok)
		})
		t.Run("returns error for invalid intervals", func(t *testing.T) {
			x := mustInterval(t, day(1), day(3))
			_, _, err := interval.Evaluate(interval.Disjoint, x, interval.Interval{})
			assert.Error(t, err)
		})
	})

	t.Run("Converse", func(t *testing.T) {
		t.Run("maps every member to its partner", func(t *testing.T) {
			before := interval.NewGeneralRelation("before", interval.Precedes, interval.Meets)
			after := interval.Converse(before)
			assert.ElementsMatch(t,
				[]interval.BasicRelation{interval.PrecededBy, interval.MetBy},
				after.Members())
		})
		t.Run("disjoint is its own converse", func(t *testing.T) {
			assert.ElementsMatch(t, interval.Disjoint.Members(), interval.Converse(interval.Disjoint).Members())
		})
	})

	t.Run("Complement", func(t *testing.T) {
		t.Run("contains the other nine relations for disjoint", func(t *testing.T) {
			complement := interval.Complement(interval.Disjoint)
			assert.Len(t, complement.Members(), 9)
			for _, member := range complement.Members() {
				assert.False(t, interval.Disjoint.Contains(member))
			}
		})
		t.Run("complement of the complement is the original", func(t *testing.T) {
			roundTrip := interval.Complement(interval.Complement(interval.Disjoint))
			assert.ElementsMatch(t, interval.Disjoint.Members(), roundTrip.Members())
		})
	})

	t.Run("disjoint and concurrent partition all pairs", func(t *testing.T) {
		for x1 := 1; x1 <= 5; x1++ {
			for x2 := x1 + 1; x2 <= 5; x2++ {
				for y1 := 1; y1 <= 5; y1++ {
					for y2 := y1 + 1; y2 <= 5; y2++ {
						x := mustInterval(t, day(x1), day(x2))
						y := mustInterval(t, day(y1), day(y2))

						disjoint, err := interval.IsDisjoint(x, y)
						require.NoError(t, err)
						concurrent, err := interval.IsConcurrent(x, y)
						require.NoError(t, err)
						assert.NotEqual(t, disjoint, concurrent, "pair %s %s", x, y)
					}
				}
			}
		}
	})

	t.Run("Compose", func(t *testing.T) {
		t.Run("fails loudly", func(t *testing.T) {
			_, err := interval.Compose(interval.Disjoint, interval.Concurrent)
			assert.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrUnimplemented))
		})
	})

	t.Run("IntersectRelations", func(t *testing.T) {
		t.Run("fails loudly", func(t *testing.T) {
			_, err := interval.IntersectRelations(interval.Disjoint, interval.Concurrent)
			assert.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrUnimplemented))
		})
	})
}
