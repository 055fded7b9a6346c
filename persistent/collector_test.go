package persistent_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"lazyseq/persistent"
)

func TestCollectors_PreserveOrderInBothModes(t *testing.T) {
	collectors := map[string]persistent.Collector[int]{
		"stack":  persistent.StackCollector[int]{},
		"vector": persistent.VectorCollector[int]{},
	}
	inputs := [][]int{{}, {1}, {1, 2, 3}, rangeInts(100), rangeInts(1057)}

	for name, c := range collectors {
		for _, in := range inputs {
			for _, efficient := range []bool{true, false} {
				got := c.Collect(slices.Values(in), efficient)
				assert.Equal(t, in, persistent.ToSlice[int](got), "%s efficient=%v len=%d", name, efficient, len(in))
			}
		}
		assert.Equal(t, 0, c.Zero().Len())
	}
}

func TestCollectorFor(t *testing.T) {
	assert.Equal(t, persistent.ShapeStack, persistent.CollectorFor[int](persistent.ShapeStack).Shape())
	assert.Equal(t, persistent.ShapeVector, persistent.CollectorFor[int](persistent.ShapeVector).Shape())
	assert.Equal(t, persistent.Front, persistent.StackCollector[int]{}.Zero().Home())
	assert.Equal(t, persistent.Back, persistent.VectorCollector[int]{}.Zero().Home())
	assert.Equal(t, "stack", persistent.ShapeStack.String())
}
