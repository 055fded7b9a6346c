package config

import (
	"fmt"

	"lazyseq/lazy"
	"lazyseq/persistent"
)

// Build turns the description into a lazy sequence. Nothing is evaluated; opts are
// applied after the collector and efficient-ops settings of the description.
func (p *Pipeline) Build(opts ...lazy.Option[int]) (*lazy.Seq[int], error) {
	opts = append([]lazy.Option[int]{
		lazy.WithCollector(p.collector()),
		lazy.WithEfficientOps[int](p.Efficient),
	}, opts...)

	s := p.Source.open(opts)
	for i, st := range p.Steps {
		next, err := st.apply(s)
		if err != nil {
			return nil, fmt.Errorf("steps[%d] %s: %w", i, st.Op, err)
		}
		s = next
	}
	return s, nil
}

func (p *Pipeline) collector() persistent.Collector[int] {
	if p.Collector == "stack" {
		return persistent.StackCollector[int]{}
	}
	return persistent.VectorCollector[int]{}
}

func (src Source) open(opts []lazy.Option[int]) *lazy.Seq[int] {
	switch {
	case src.Range != nil && src.Stream:
		return lazy.FromSeq(seqsRange(*src.Range), opts...)
	case src.Range != nil:
		return lazy.Range(src.Range.Start, src.Range.End, src.Range.Step, opts...)
	case src.Stream:
		return lazy.FromSeq(valuesOf(src.Values), opts...)
	}
	return lazy.FromSlice(src.Values, opts...)
}

func (st Step) apply(s *lazy.Seq[int]) (*lazy.Seq[int], error) {
	switch st.Op {
	case "map":
		return lazy.Map(s, fnOf(st.Fn, st.Arg)), nil
	case "filter":
		return s.Filter(predOf(st.Pred, st.Arg)), nil
	case "take":
		return s.Take(st.N), nil
	case "drop":
		return s.Drop(st.N), nil
	case "take-last":
		return s.TakeLast(st.N), nil
	case "drop-last":
		return s.DropLast(st.N), nil
	case "take-while":
		return s.TakeWhile(predOf(st.Pred, st.Arg)), nil
	case "drop-while":
		return s.DropWhile(predOf(st.Pred, st.Arg)), nil
	case "sort":
		return lazy.Sorted(s), nil
	case "reverse":
		return s.Reverse(), nil
	case "distinct":
		return lazy.Distinct(s), nil
	case "shuffle":
		return s.Shuffle(st.Seed), nil
	case "cycle":
		return s.Cycle(st.N), nil
	case "intersperse":
		return s.Intersperse(st.Value), nil
	case "scan":
		return lazy.ScanLeft(s, st.Value, accOf(st.Fn)), nil
	case "plus":
		return s.Plus(st.Value), nil
	case "plus-at":
		return s.PlusAt(st.Index, st.Value)
	case "with":
		return s.With(st.Index, st.Value)
	case "minus":
		return lazy.Minus(s, st.Value), nil
	case "minus-at":
		return s.MinusAt(st.Index)
	case "slice":
		return s.Slice(st.From, st.To)
	}
	return nil, fmt.Errorf("%w: unknown op %q", ErrInvalid, st.Op)
}
