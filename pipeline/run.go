package pipeline

import (
	"iter"
	"math/rand/v2"

	"lazyseq/persistent"
	"lazyseq/queues"
	"lazyseq/seqs"
)

// run carries the error of one pass. Only the first failure is kept.
type run struct {
	err error
}

func (r *run) fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// pred adapts a fallible predicate for the seqs helpers. An error is recorded and
// reported as false; guard then ends the stream.
func (r *run) pred(pred func(any) (bool, error), negate bool) func(any) bool {
	return func(v any) bool {
		ok, err := pred(v)
		if err != nil {
			r.fail(err)
			return false
		}
		return ok != negate
	}
}

// guard stops the stream once the pass has failed.
func (r *run) guard(seq iter.Seq[any]) iter.Seq[any] {
	return seqs.TakeWhile(seq, func(any) bool { return r.err == nil })
}

func (r *run) deferred(other func() (iter.Seq[any], error)) iter.Seq[any] {
	return func(yield func(any) bool) {
		seq, err := other()
		if err != nil {
			r.fail(err)
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Run pushes every element of src through the steps and hands the results to yield,
// stopping when yield returns false. It returns the first error raised by a step or a
// user function. Elements yielded before the error must be discarded by the caller.
func (p Pipeline) Run(src iter.Seq[any], yield func(any) bool) error {
	r := &run{}
	seq := src
	steps := p.Steps()
	for i := 0; i < len(steps); i++ {
		st := steps[i]
		if st.Kind == KindSort && i+1 < len(steps) && steps[i+1].Kind == KindTake && steps[i+1].Policy == FirstN {
			seq = topN(seq, steps[i+1].N, st.Compare)
			i++
			continue
		}
		seq = r.stage(seq, st)
	}
	for v := range seq {
		if !yield(v) {
			break
		}
	}
	return r.err
}

func topN(seq iter.Seq[any], n int, compare func(a, b any) int) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range queues.SmallestN(seq, n, compare) {
			if !yield(v) {
				return
			}
		}
	}
}

func packer(st Step) func(key any, members []any) any {
	if st.Pack != nil {
		return st.Pack
	}
	return func(_ any, members []any) any { return members }
}

func (r *run) stage(in iter.Seq[any], st Step) iter.Seq[any] {
	switch st.Kind {
	case KindMap:
		return seqs.UntilErr(seqs.TryMap(in, st.Fn), &r.err)
	case KindFilter:
		return seqs.UntilErr(seqs.TryFilter(in, st.Pred), &r.err)
	case KindFlatMap:
		inner := seqs.UntilErr(seqs.TryMap(in, st.Flat), &r.err)
		return seqs.FlatMap(inner, func(s iter.Seq[any]) iter.Seq[any] { return s })
	case KindTake:
		switch st.Policy {
		case LastN:
			return seqs.TakeLast(in, st.N)
		case While, Until:
			return r.guard(seqs.TakeWhile(in, r.pred(st.Pred, st.Policy == Until)))
		}
		return seqs.Take(in, st.N)
	case KindDrop:
		switch st.Policy {
		case LastN:
			return seqs.DropLast(in, st.N)
		case While, Until:
			return r.guard(seqs.DropWhile(in, r.pred(st.Pred, st.Policy == Until)))
		}
		return seqs.Skip(in, st.N)
	case KindGroup:
		pack := packer(st)
		return seqs.Map(seqs.Chunk(in, st.N), func(g []any) any { return pack(nil, g) })
	case KindGroupWhile:
		pack := packer(st)
		groups := seqs.GroupWhile(in, r.pred(st.Pred, st.Policy == Until))
		return r.guard(seqs.Map(groups, func(g []any) any { return pack(nil, g) }))
	case KindGroupBy:
		pack := packer(st)
		return seqs.Map(seqs.GroupBy(in, st.Key), func(g seqs.Pair[any, []any]) any { return pack(g.V1, g.V2) })
	case KindWindow:
		pack := packer(st)
		return seqs.Map(seqs.Window(in, st.N, st.M), func(g []any) any { return pack(nil, g) })
	case KindZip:
		pairs := seqs.Zip(in, r.deferred(st.Other))
		return seqs.Map(pairs, func(p seqs.Pair[any, any]) any { return st.Combine(p.V1, p.V2) })
	case KindEnumerate:
		return func(yield func(any) bool) {
			for i, v := range seqs.Enumerate(in) {
				if !yield(st.Combine(i, v)) {
					return
				}
			}
		}
	case KindScanLeft:
		return seqs.ScanLeft(in, st.Value, st.Acc)
	case KindScanRight:
		return seqs.ScanRight(in, st.Value, st.Acc)
	case KindDistinct:
		return seqs.DistinctBy(in, st.Key)
	case KindSort:
		return seqs.Sorted(in, st.Compare)
	case KindShuffle:
		return seqs.Shuffle(in, rand.New(rand.NewPCG(st.Seed, st.Seed^0x9e3779b97f4a7c15)))
	case KindReverse:
		return seqs.Reverse(in)
	case KindPeek:
		return seqs.Peek(in, st.Action)
	case KindConcat:
		return seqs.Concat(in, r.deferred(st.Other))
	case KindPrepend:
		return seqs.Concat(r.deferred(st.Other), in)
	case KindInsertAt:
		return r.insertAt(in, st.N, st.Value)
	case KindSetAt:
		return r.setAt(in, st.N, st.Value)
	case KindDeleteAt:
		return r.deleteAt(in, st.N)
	case KindRemoveFirst:
		return r.removeFirst(in, st.Pred)
	case KindSlice:
		return r.slice(in, st.N, st.M)
	case KindCycle:
		if st.Policy == While || st.Policy == Until {
			return r.guard(seqs.CycleWhile(in, r.pred(st.Pred, st.Policy == Until)))
		}
		return seqs.Cycle(in, st.N)
	case KindIntersperse:
		return seqs.Intersperse(in, st.Value)
	case KindOnEmpty:
		if st.Other != nil {
			return seqs.SwitchIfEmpty(in, r.deferred(st.Other))
		}
		return seqs.DefaultIfEmpty(in, st.Supply)
	case KindCombinations:
		pack := packer(st)
		combos := seqs.AllCombinations(in)
		if st.N >= 0 {
			combos = seqs.Combinations(in, st.N)
		}
		return seqs.Map(combos, func(g []any) any { return pack(nil, g) })
	case KindPermutations:
		pack := packer(st)
		return seqs.Map(seqs.Permutations(in), func(g []any) any { return pack(nil, g) })
	}
	panic("pipeline: unknown step " + st.Kind.String())
}

// The positional steps check their bounds against the number of elements that reached
// them. If a later step stops pulling first, the check is skipped.

func (r *run) insertAt(in iter.Seq[any], i int, v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		n := 0
		for x := range in {
			if n == i && !yield(v) {
				return
			}
			n++
			if !yield(x) {
				return
			}
		}
		if r.err != nil {
			return
		}
		if i == n {
			yield(v)
			return
		}
		r.fail(persistent.CheckInsert(i, n))
	}
}

func (r *run) setAt(in iter.Seq[any], i int, v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		n := 0
		for x := range in {
			if n == i {
				x = v
			}
			n++
			if !yield(x) {
				return
			}
		}
		r.fail(persistent.CheckIndex(i, n))
	}
}

func (r *run) deleteAt(in iter.Seq[any], i int) iter.Seq[any] {
	return func(yield func(any) bool) {
		n := 0
		for x := range in {
			skip := n == i
			n++
			if !skip && !yield(x) {
				return
			}
		}
		r.fail(persistent.CheckIndex(i, n))
	}
}

func (r *run) removeFirst(in iter.Seq[any], pred func(any) (bool, error)) iter.Seq[any] {
	return func(yield func(any) bool) {
		removed := false
		for x := range in {
			if !removed {
				hit, err := pred(x)
				if err != nil {
					r.fail(err)
					return
				}
				if hit {
					removed = true
					continue
				}
			}
			if !yield(x) {
				return
			}
		}
	}
}

func (r *run) slice(in iter.Seq[any], from, to int) iter.Seq[any] {
	return func(yield func(any) bool) {
		if err := persistent.CheckSlice(from, to, max(to, 0)); err != nil {
			r.fail(err)
			return
		}
		if to == 0 {
			return
		}
		n := 0
		for x := range in {
			if n >= from && !yield(x) {
				return
			}
			n++
			if n == to {
				return
			}
		}
		r.fail(persistent.CheckSlice(from, to, n))
	}
}
