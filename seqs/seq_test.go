package seqs_test

import (
	"errors"
	"lazyseq/seqs"
	"math"
	"slices"
	"testing"
)

func TestTryMap(t *testing.T) {
	input := []int{1, 2, 3, 4}
	expectedErr := errors.New("fail")

	t.Run("Success", func(t *testing.T) {
		seq := seqs.TryMap(slices.Values(input), func(x int) (int, error) {
			return x * 2, nil
		})

		var result []int
		for v, err := range seq {
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			result = append(result, v)
		}
		if !slices.Equal(result, []int{2, 4, 6, 8}) {
			t.Errorf("TryMap success mismatch: got %v", result)
		}
	})

	t.Run("Error", func(t *testing.T) {
		seqErr := seqs.TryMap(slices.Values(input), func(x int) (int, error) {
			if x == 3 {
				return 0, expectedErr
			}
			return x * 2, nil
		})

		var result []int
		var gotErr error
		for v, err := range seqErr {
			if err != nil {
				gotErr = err
				break
			}
			result = append(result, v)
		}

		if gotErr != expectedErr {
			t.Errorf("Expected error %v, got %v", expectedErr, gotErr)
		}
		// Should stop at 3, so we get results for 1 and 2
		if !slices.Equal(result, []int{2, 4}) {
			t.Errorf("TryMap error partial result mismatch: got %v", result)
		}
	})
}

func TestUntilErr(t *testing.T) {
	expectedErr := errors.New("stop")
	var err error
	seq := seqs.UntilErr(seqs.TryMap(slices.Values([]int{1, 2, 3}), func(x int) (int, error) {
		if x == 3 {
			return 0, expectedErr
		}
		return x, nil
	}), &err)

	got := slices.Collect(seq)
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("UntilErr mismatch: got %v", got)
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestTakeWhileStopsPulling(t *testing.T) {
	pulled := 0
	src := seqs.Peek(seqs.Range(0, 100, 1), func(int) { pulled++ })

	got := slices.Collect(seqs.TakeWhile(src, func(v int) bool { return v < 3 }))
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("TakeWhile mismatch: got %v", got)
	}
	if pulled != 4 {
		t.Errorf("Expected 4 elements pulled, got %d", pulled)
	}
}

func TestTakeLastDropLast(t *testing.T) {
	tests := []struct {
		name string
		n    int
		take []int
		drop []int
	}{
		{"zero", 0, nil, []int{1, 2, 3, 4, 5}},
		{"two", 2, []int{4, 5}, []int{1, 2, 3}},
		{"all", 5, []int{1, 2, 3, 4, 5}, nil},
		{"more", 9, []int{1, 2, 3, 4, 5}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []int{1, 2, 3, 4, 5}
			take := slices.Collect(seqs.TakeLast(slices.Values(input), tt.n))
			drop := slices.Collect(seqs.DropLast(slices.Values(input), tt.n))
			if !slices.Equal(take, tt.take) {
				t.Errorf("TakeLast(%d) = %v, want %v", tt.n, take, tt.take)
			}
			if !slices.Equal(drop, tt.drop) {
				t.Errorf("DropLast(%d) = %v, want %v", tt.n, drop, tt.drop)
			}
		})
	}
}

func TestScan(t *testing.T) {
	add := func(a, b int) int { return a + b }
	input := slices.Values([]int{1, 2, 3})

	if got := slices.Collect(seqs.ScanLeft(input, 0, add)); !slices.Equal(got, []int{0, 1, 3, 6}) {
		t.Errorf("ScanLeft mismatch: got %v", got)
	}
	if got := slices.Collect(seqs.ScanRight(input, 0, add)); !slices.Equal(got, []int{6, 5, 3, 0}) {
		t.Errorf("ScanRight mismatch: got %v", got)
	}
	if got := slices.Collect(seqs.ScanRight(slices.Values([]int(nil)), 7, add)); !slices.Equal(got, []int{7}) {
		t.Errorf("ScanRight on empty mismatch: got %v", got)
	}
}

func TestGroupWhile(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5, 6, 7})
	got := slices.Collect(seqs.GroupWhile(input, func(v int) bool { return v%3 != 0 }))
	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7}}
	if len(got) != len(want) {
		t.Fatalf("GroupWhile mismatch: got %v", got)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("group %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGroupByKeepsFirstAppearance(t *testing.T) {
	input := slices.Values([]string{"bb", "a", "cc", "d", "eee"})
	var keys []int
	var groups [][]string
	for g := range seqs.GroupBy(input, func(s string) int { return len(s) }) {
		keys = append(keys, g.V1)
		groups = append(groups, g.V2)
	}
	if !slices.Equal(keys, []int{2, 1, 3}) {
		t.Errorf("GroupBy keys: got %v", keys)
	}
	if !slices.Equal(groups[0], []string{"bb", "cc"}) || !slices.Equal(groups[1], []string{"a", "d"}) {
		t.Errorf("GroupBy groups: got %v", groups)
	}
}

func TestCycleSingleUseSource(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	got := slices.Collect(seqs.Cycle(seqs.FromChannel(ch), 3))
	if !slices.Equal(got, []int{1, 2, 1, 2, 1, 2}) {
		t.Errorf("Cycle mismatch: got %v", got)
	}
}

func TestSortedIsStable(t *testing.T) {
	type item struct {
		key, id int
	}
	input := slices.Values([]item{{2, 0}, {1, 1}, {2, 2}, {1, 3}})
	got := slices.Collect(seqs.Sorted(input, func(a, b item) int { return a.key - b.key }))
	want := []item{{1, 1}, {1, 3}, {2, 0}, {2, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("Sorted mismatch: got %v", got)
	}
}

func TestUnfold(t *testing.T) {
	fib := seqs.Unfold([2]int{0, 1}, func(s [2]int) (int, [2]int, bool) {
		return s[0], [2]int{s[1], s[0] + s[1]}, s[0] < 20
	})
	if got := slices.Collect(fib); !slices.Equal(got, []int{0, 1, 1, 2, 3, 5, 8, 13}) {
		t.Errorf("Unfold mismatch: got %v", got)
	}
}

func TestRange(t *testing.T) {
	if got := slices.Collect(seqs.Range(5, 0, -2)); !slices.Equal(got, []int{5, 3, 1}) {
		t.Errorf("Range descending: got %v", got)
	}
	if got := slices.Collect(seqs.Range(0, 5, 0)); len(got) != 0 {
		t.Errorf("Range with zero step: got %v", got)
	}
}

func TestRange_StopsBeforeOverflow(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"max ascending", math.MaxInt - 1, math.MaxInt, 2, []int{math.MaxInt - 1}},
		{"max exact", math.MaxInt - 4, math.MaxInt, 2, []int{math.MaxInt - 4, math.MaxInt - 2}},
		{"min descending", math.MinInt + 1, math.MinInt, -2, []int{math.MinInt + 1}},
		{"huge step", 0, math.MaxInt, math.MaxInt, []int{0}},
		{"huge negative step", -1, math.MinInt, math.MinInt, []int{-1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slices.Collect(seqs.Range(tt.start, tt.end, tt.step)); !slices.Equal(got, tt.want) {
				t.Errorf("Range(%d, %d, %d): got %v, want %v", tt.start, tt.end, tt.step, got, tt.want)
			}
		})
	}
}

func TestCycleWhile(t *testing.T) {
	n := 0
	got := slices.Collect(seqs.CycleWhile(slices.Values([]int{1, 2}), func(int) bool { n++; return n <= 5 }))
	if !slices.Equal(got, []int{1, 2, 1, 2, 1}) {
		t.Errorf("CycleWhile: got %v", got)
	}
	if got := slices.Collect(seqs.CycleWhile(slices.Values([]int{}), func(int) bool { return true })); len(got) != 0 {
		t.Errorf("CycleWhile of empty: got %v", got)
	}
	if got := slices.Collect(seqs.Take(seqs.CycleWhile(slices.Values([]int{3}), func(int) bool { return true }), 4)); !slices.Equal(got, []int{3, 3, 3, 3}) {
		t.Errorf("CycleWhile forever: got %v", got)
	}
}

func TestSwitchIfEmpty(t *testing.T) {
	fallback := slices.Values([]int{7, 8})
	if got := slices.Collect(seqs.SwitchIfEmpty(slices.Values([]int{}), fallback)); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("SwitchIfEmpty of empty: got %v", got)
	}
	if got := slices.Collect(seqs.SwitchIfEmpty(slices.Values([]int{1}), fallback)); !slices.Equal(got, []int{1}) {
		t.Errorf("SwitchIfEmpty: got %v", got)
	}
}

func TestCombinations(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		k     int
		want  [][]string
	}{
		{"pairs", []string{"a", "b", "c", "d"}, 2, [][]string{{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}, {"c", "d"}}},
		{"empty selection", []string{"a"}, 0, [][]string{{}}},
		{"too large", []string{"a"}, 2, nil},
		{"negative", []string{"a"}, -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(seqs.Combinations(slices.Values(tt.input), tt.k))
			if !slices.EqualFunc(got, tt.want, slices.Equal[[]string]) {
				t.Errorf("Combinations(%v, %d): got %v, want %v", tt.input, tt.k, got, tt.want)
			}
		})
	}

	all := slices.Collect(seqs.AllCombinations(slices.Values([]int{1, 2, 3})))
	if len(all) != 8 || len(all[0]) != 0 || !slices.Equal(all[7], []int{1, 2, 3}) {
		t.Errorf("AllCombinations: got %v", all)
	}
}

func TestPermutations(t *testing.T) {
	got := slices.Collect(seqs.Permutations(slices.Values([]int{1, 2, 3, 4})))
	if len(got) != 24 {
		t.Fatalf("Permutations: got %d orderings, want 24", len(got))
	}
	if !slices.Equal(got[0], []int{1, 2, 3, 4}) || !slices.Equal(got[23], []int{4, 3, 2, 1}) {
		t.Errorf("Permutations order: first %v, last %v", got[0], got[23])
	}
	for i := 1; i < len(got); i++ {
		if slices.Compare(got[i-1], got[i]) >= 0 {
			t.Errorf("Permutations not increasing at %d: %v then %v", i, got[i-1], got[i])
		}
	}
}
