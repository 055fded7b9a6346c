package pipeline_test

import (
	"cmp"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/persistent"
	"lazyseq/pipeline"
	"lazyseq/seqs"
	"lazyseq/sliceutil"
)

func ints(vs ...int) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

// counting wraps a source and counts how many elements were pulled from it.
func counting(src iter.Seq[int], pulled *int) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range src {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func build(steps ...pipeline.Step) pipeline.Pipeline {
	var p pipeline.Pipeline
	for _, s := range steps {
		p = p.Append(s)
	}
	return p
}

func collect(p pipeline.Pipeline, src iter.Seq[any]) ([]any, error) {
	var out []any
	err := p.Run(src, func(v any) bool {
		out = append(out, v)
		return true
	})
	return out, err
}

func collectInts(t *testing.T, p pipeline.Pipeline, src iter.Seq[any]) []int {
	t.Helper()
	out, err := collect(p, src)
	require.NoError(t, err)
	res := make([]int, len(out))
	for i, v := range out {
		res[i] = v.(int)
	}
	return res
}

func double(v any) (any, error) { return v.(int) * 2, nil }

func less(n int) func(any) (bool, error) {
	return func(v any) (bool, error) { return v.(int) < n, nil }
}

func TestRun_MapThenFilter(t *testing.T) {
	p := build(pipeline.Map(double), pipeline.Filter(less(5)))
	assert.Equal(t, []int{2, 4}, collectInts(t, p, ints(1, 2, 3)))
}

func TestAppend_FusesMaps(t *testing.T) {
	inc := func(v any) (any, error) { return v.(int) + 1, nil }

	p := build(pipeline.Map(double), pipeline.Map(inc), pipeline.Map(double))
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, []int{6, 10}, collectInts(t, p, ints(1, 2)))

	q := build(pipeline.Map(double), pipeline.Filter(less(100)), pipeline.Map(inc))
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "map | filter | map", q.String())
}

func TestAppend_IsPersistent(t *testing.T) {
	base := build(pipeline.Map(double))
	left := base.Append(pipeline.Take(1))
	right := base.Append(pipeline.Reverse())

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, []int{2, 4, 6}, collectInts(t, base, ints(1, 2, 3)))
	assert.Equal(t, []int{2}, collectInts(t, left, ints(1, 2, 3)))
	assert.Equal(t, []int{6, 4, 2}, collectInts(t, right, ints(1, 2, 3)))
}

func TestRun_ShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		step   pipeline.Step
		want   []int
		pulled int
	}{
		{"take", pipeline.Take(2), []int{0, 1}, 2},
		{"takeWhile", pipeline.TakeWhile(less(3)), []int{0, 1, 2}, 4},
		{"takeUntil", pipeline.TakeUntil(func(v any) (bool, error) { return v.(int) == 1, nil }), []int{0}, 2},
		{"slice", pipeline.Slice(1, 3), []int{1, 2}, 3},
		{"empty slice", pipeline.Slice(0, 0), []int{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pulled := 0
			got := collectInts(t, build(tt.step), counting(seqs.Range(0, 1_000_000, 1), &pulled))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.pulled, pulled)
		})
	}
}

func TestRun_StopsWhenConsumerStops(t *testing.T) {
	pulled := 0
	p := build(pipeline.Map(double), pipeline.Filter(less(1_000)))
	var got []any
	err := p.Run(counting(seqs.Range(0, 1_000_000, 1), &pulled), func(v any) bool {
		got = append(got, v)
		return len(got) < 3
	})
	require.NoError(t, err)
	assert.Equal(t, []any{0, 2, 4}, got)
	assert.Equal(t, 3, pulled)
}

func TestRun_SortTakeIsStable(t *testing.T) {
	type item struct{ key, id int }
	input := []item{{3, 0}, {1, 1}, {2, 2}, {1, 3}, {3, 4}, {1, 5}, {2, 6}}
	src := func(yield func(any) bool) {
		for _, v := range input {
			if !yield(v) {
				return
			}
		}
	}
	byKey := func(a, b any) int { return cmp.Compare(a.(item).key, b.(item).key) }

	for _, n := range []int{0, 1, 3, 4, 7, 10} {
		got, err := collect(build(pipeline.Sort(byKey), pipeline.Take(n)), src)
		require.NoError(t, err)

		want := slices.Clone(input)
		slices.SortStableFunc(want, func(a, b item) int { return cmp.Compare(a.key, b.key) })
		want = want[:min(n, len(want))]
		require.Len(t, got, len(want), "n=%d", n)
		for i := range want {
			assert.Equal(t, want[i], got[i], "n=%d index %d", n, i)
		}
	}
}

func TestRun_PositionalSteps(t *testing.T) {
	tests := []struct {
		name    string
		step    pipeline.Step
		want    []int
		wantErr error
	}{
		{"set", pipeline.SetAt(1, 9), []int{1, 9, 3}, nil},
		{"set past end", pipeline.SetAt(3, 9), nil, persistent.ErrIndexOutOfRange},
		{"insert front", pipeline.InsertAt(0, 9), []int{9, 1, 2, 3}, nil},
		{"insert at end", pipeline.InsertAt(3, 9), []int{1, 2, 3, 9}, nil},
		{"insert past end", pipeline.InsertAt(4, 9), nil, persistent.ErrIndexOutOfRange},
		{"delete", pipeline.DeleteAt(2), []int{1, 2}, nil},
		{"delete negative", pipeline.DeleteAt(-1), nil, persistent.ErrIndexOutOfRange},
		{"slice", pipeline.Slice(1, 3), []int{2, 3}, nil},
		{"slice whole", pipeline.Slice(0, 3), []int{1, 2, 3}, nil},
		{"slice past end", pipeline.Slice(2, 10), nil, persistent.ErrRange},
		{"slice inverted", pipeline.Slice(2, 1), nil, persistent.ErrRange},
		{"remove first", pipeline.RemoveFirst(func(v any) (bool, error) { return v.(int) >= 2, nil }), []int{1, 3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := collect(build(tt.step), ints(1, 2, 3))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got := make([]int, len(out))
			for i, v := range out {
				got[i] = v.(int)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	failAt := func(n int) func(any) (any, error) {
		return func(v any) (any, error) {
			if v.(int) == n {
				return nil, boom
			}
			return v, nil
		}
	}

	// the stream is cut short by the error; SetAt must not replace it with a bounds error
	p := build(pipeline.Map(failAt(2)), pipeline.Filter(less(100)), pipeline.SetAt(5, 0))
	_, err := collect(p, ints(1, 2, 3))
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, persistent.ErrIndexOutOfRange)
}

func TestRun_PredicateErrorStopsPulling(t *testing.T) {
	boom := errors.New("boom")
	pred := func(v any) (bool, error) {
		if v.(int) == 3 {
			return false, boom
		}
		return true, nil
	}

	for _, step := range []pipeline.Step{
		pipeline.DropWhile(pred),
		pipeline.TakeWhile(pred),
		pipeline.GroupWhile(pipeline.While, pred, nil),
		pipeline.Filter(pred),
		pipeline.RemoveFirst(func(v any) (bool, error) {
			ok, err := pred(v)
			return !ok, err
		}),
	} {
		t.Run(step.String(), func(t *testing.T) {
			pulled := 0
			_, err := collect(build(step), counting(seqs.Range(0, 1_000_000, 1), &pulled))
			assert.ErrorIs(t, err, boom)
			assert.LessOrEqual(t, pulled, 5)
		})
	}
}

func TestRun_Grouping(t *testing.T) {
	src := ints(1, 2, 3, 4, 5, 6, 7)

	out, err := collect(build(pipeline.Group(3, nil)), src)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2, 3}, []any{4, 5, 6}, []any{7}}, out)

	out, err = collect(build(pipeline.GroupWhile(pipeline.Until, func(v any) (bool, error) { return v.(int)%3 == 0, nil }, nil)), src)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2, 3}, []any{4, 5, 6}, []any{7}}, out)

	out, err = collect(build(pipeline.Window(3, 2, nil)), src)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2, 3}, []any{3, 4, 5}, []any{5, 6, 7}}, out)

	parity := func(v any) any { return v.(int) % 2 }
	pack := func(k any, members []any) any { return [2]any{k, len(members)} }
	out, err = collect(build(pipeline.GroupBy(parity, pack)), src)
	require.NoError(t, err)
	assert.Equal(t, []any{[2]any{1, 4}, [2]any{0, 3}}, out)
}

func TestRun_ZipAndConcat(t *testing.T) {
	other := func() (iter.Seq[any], error) { return ints(10, 20), nil }
	add := func(a, b any) any { return a.(int) + b.(int) }

	assert.Equal(t, []int{11, 22}, collectInts(t, build(pipeline.Zip(other, add)), ints(1, 2, 3)))
	assert.Equal(t, []int{1, 10, 20}, collectInts(t, build(pipeline.Concat(other)), ints(1)))
	assert.Equal(t, []int{10, 20, 1}, collectInts(t, build(pipeline.Prepend(other)), ints(1)))

	boom := errors.New("boom")
	broken := func() (iter.Seq[any], error) { return nil, boom }
	_, err := collect(build(pipeline.Zip(broken, add)), ints(1, 2))
	assert.ErrorIs(t, err, boom)
	_, err = collect(build(pipeline.Concat(broken)), ints(1, 2))
	assert.ErrorIs(t, err, boom)
}

func TestRun_Scans(t *testing.T) {
	add := func(a, b any) any { return a.(int) + b.(int) }
	assert.Equal(t, []int{0, 1, 3, 6}, collectInts(t, build(pipeline.ScanLeft(0, add)), ints(1, 2, 3)))
	assert.Equal(t, []int{6, 5, 3, 0}, collectInts(t, build(pipeline.ScanRight(0, add)), ints(1, 2, 3)))
}

func TestRun_ShuffleIsDeterministic(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a := collectInts(t, build(pipeline.Shuffle(42)), ints(src...))
	b := collectInts(t, build(pipeline.Shuffle(42)), ints(src...))
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, src, a)
}

// TestRun_MatchesEagerEvaluation checks the streaming pass against the same chain
// evaluated eagerly on slices.
func TestRun_MatchesEagerEvaluation(t *testing.T) {
	input := make([]int, 100)
	for i := range input {
		input[i] = (i * 37) % 23
	}
	isOdd := func(v any) (bool, error) { return v.(int)%2 == 1, nil }
	sep := -1

	p := build(
		pipeline.Map(double),
		pipeline.Drop(3),
		pipeline.Filter(func(v any) (bool, error) { return v.(int) > 4, nil }),
		pipeline.Map(func(v any) (any, error) { return v.(int) + 1, nil }),
		pipeline.RemoveFirst(isOdd),
		pipeline.DropLast(2),
		pipeline.Take(20),
		pipeline.Intersperse(sep),
	)

	eager := sliceutil.Map(input, func(v int) int { return v * 2 })
	eager = sliceutil.Clamp(eager, 3, len(eager))
	eager = sliceutil.Filter(eager, func(v int) bool { return v > 4 })
	eager = sliceutil.Map(eager, func(v int) int { return v + 1 })
	eager = sliceutil.RemoveFirst(eager, eager[slices.IndexFunc(eager, func(v int) bool { return v%2 == 1 })])
	eager = sliceutil.Clamp(eager, 0, len(eager)-2)
	eager = sliceutil.Clamp(eager, 0, 20)
	eager = sliceutil.Intersperse(eager, sep)

	assert.Equal(t, eager, collectInts(t, p, ints(input...)))
}

func TestRun_OnEmptyAndCycle(t *testing.T) {
	fallback := func() any { return 7 }
	assert.Equal(t, []int{7}, collectInts(t, build(pipeline.OnEmpty(fallback)), ints()))
	assert.Equal(t, []int{1}, collectInts(t, build(pipeline.OnEmpty(fallback)), ints(1)))
	assert.Equal(t, []int{1, 2, 1, 2}, collectInts(t, build(pipeline.Cycle(2)), ints(1, 2)))
}

func TestRun_CycleWhileAndOnEmptySwitch(t *testing.T) {
	boom := errors.New("boom")
	pulls := 0
	failOnFifth := func(any) (bool, error) {
		pulls++
		if pulls == 5 {
			return false, boom
		}
		return true, nil
	}
	_, err := collect(build(pipeline.CycleWhile(failOnFifth)), ints(1, 2))
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []int{1, 2, 1}, collectInts(t, build(pipeline.CycleUntil(func(v any) (bool, error) {
		pulls++
		return pulls > 8, nil
	})), ints(1, 2)))

	other := func() (iter.Seq[any], error) { return ints(8, 9), nil }
	assert.Equal(t, []int{8, 9}, collectInts(t, build(pipeline.OnEmptySwitch(other)), ints()))
	assert.Equal(t, []int{1}, collectInts(t, build(pipeline.OnEmptySwitch(other)), ints(1)))

	failing := func() (iter.Seq[any], error) { return nil, boom }
	_, err = collect(build(pipeline.OnEmptySwitch(failing)), ints())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1}, collectInts(t, build(pipeline.OnEmptySwitch(failing)), ints(1)))
}

func TestRun_Combinatorics(t *testing.T) {
	got, err := collect(build(pipeline.Combinations(2, nil)), ints(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2}, []any{1, 3}, []any{2, 3}}, got)

	got, err = collect(build(pipeline.AllCombinations(nil)), ints(1))
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{}, []any{1}}, got)

	got, err = collect(build(pipeline.Permutations(nil), pipeline.Take(3)), ints(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2, 3}, []any{1, 3, 2}, []any{2, 1, 3}}, got)

	assert.Panics(t, func() { pipeline.Combinations(-1, nil) })
}

func TestStep_NilFunctionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "pipeline.Map: function cannot be nil", func() { pipeline.Map(nil) })
	assert.Panics(t, func() { pipeline.Group(0, nil) })
}

func TestPipeline_String(t *testing.T) {
	p := build(pipeline.Filter(less(3)), pipeline.TakeLast(2), pipeline.Slice(0, 1), pipeline.DropWhile(less(1)))
	assert.Equal(t, "filter | take(last 2) | slice(0, 1) | drop(while)", p.String())

	p = build(pipeline.Cycle(2), pipeline.CycleUntil(less(1)), pipeline.Combinations(2, nil), pipeline.AllCombinations(nil), pipeline.Permutations(nil))
	assert.Equal(t, "cycle(2) | cycle(until) | combinations(2) | combinations(all) | permutations", p.String())
}
