package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/chrono/client/local/model"
	"github.com/goto/chrono/internal/lib/interval"
)

func TestSetSpec(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		t.Run("accepts a well formed document", func(t *testing.T) {
			spec := model.SetSpec{
				Intervals: []model.IntervalSpec{
					{Start: "2023-09-01", End: "2023-09-03"},
					{Start: "2023-09-04T10:00:00Z", End: "2023-09-04T12:00:00Z"},
				},
			}
			assert.NoError(t, spec.Validate())
		})
		t.Run("rejects an empty document", func(t *testing.T) {
			assert.Error(t, model.SetSpec{}.Validate())
		})
		t.Run("rejects a missing endpoint", func(t *testing.T) {
			spec := model.SetSpec{
				Intervals: []model.IntervalSpec{{Start: "2023-09-01"}},
			}
			assert.Error(t, spec.Validate())
		})
		t.Run("rejects unparseable endpoint text", func(t *testing.T) {
			spec := model.SetSpec{
				Intervals: []model.IntervalSpec{{Start: "whenever", End: "2023-09-03"}},
			}
			assert.Error(t, spec.Validate())
		})
	})

	t.Run("ToSet", func(t *testing.T) {
		t.Run("builds an ordered disjoint set with tags", func(t *testing.T) {
			spec := model.SetSpec{
				Intervals: []model.IntervalSpec{
					{Start: "2023-09-01", End: "2023-09-03", Tag: "oncall"},
					{Start: "2023-09-03", End: "2023-09-05"},
				},
			}

			set, err := spec.ToSet()
			assert.NoError(t, err)
			require.Len(t, set, 2)
			assert.Equal(t, "oncall", set[0].Tag())
			assert.Nil(t, set[1].Tag())
			assert.True(t, set.IsOrderedDisjoint())
		})
		t.Run("uses the beginning of a civil unit as the endpoint", func(t *testing.T) {
			spec := model.SetSpec{
				Intervals: []model.IntervalSpec{{Start: "2023-09-01", End: "2023-09-02"}},
			}

			set, err := spec.ToSet()
			assert.NoError(t, err)
			require.Len(t, set, 1)
			assert.Equal(t, 24*time.Hour, set[0].Duration())
		})
		t.Run("returns error for overlapping members", func(t *testing.T) {
			spec := model.SetSpec{
				Intervals: []model.IntervalSpec{
					{Start: "2023-09-01", End: "2023-09-04"},
					{Start: "2023-09-02", End: "2023-09-05"},
				},
			}
			_, err := spec.ToSet()
			assert.Error(t, err)
		})
		t.Run("returns error for mixed locality endpoints", func(t *testing.T) {
			spec := model.SetSpec{
				Intervals: []model.IntervalSpec{
					{Start: "2023-09-01", End: "2023-09-02T10:00:00Z"},
				},
			}
			_, err := spec.ToSet()
			assert.Error(t, err)
			assert.ErrorContains(t, err, "mixed localities")
		})
	})

	t.Run("FromSet", func(t *testing.T) {
		t.Run("renders endpoints and tags", func(t *testing.T) {
			iv, err := interval.NewTagged(
				interval.AbsoluteInstant(time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)),
				interval.AbsoluteInstant(time.Date(2023, time.September, 2, 0, 0, 0, 0, time.UTC)),
				"oncall",
			)
			require.NoError(t, err)
			set, err := interval.NewSet(iv)
			require.NoError(t, err)

			spec := model.FromSet(set)
			require.Len(t, spec.Intervals, 1)
			assert.Equal(t, "2023-09-01T00:00:00Z", spec.Intervals[0].Start)
			assert.Equal(t, "2023-09-02T00:00:00Z", spec.Intervals[0].End)
			assert.Equal(t, "oncall", spec.Intervals[0].Tag)
		})
	})
}
