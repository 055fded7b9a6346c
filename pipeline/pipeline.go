package pipeline

import (
	"slices"
	"strings"

	"lazyseq/persistent"
)

// Pipeline is an immutable sequence of steps. The zero value is the empty pipeline.
type Pipeline struct {
	// newest step first
	steps persistent.Stack[Step]
}

// Append returns a pipeline with s recorded after the existing steps. It is O(1) and
// does not run anything. A Map appended directly after a Map is fused into one step.
func (p Pipeline) Append(s Step) Pipeline {
	if last, ok := p.steps.First(); ok && last.Kind == KindMap && s.Kind == KindMap {
		return Pipeline{steps: p.steps.Rest().Cons(fuseMaps(last, s))}
	}
	return Pipeline{steps: p.steps.Cons(s)}
}

func fuseMaps(first, second Step) Step {
	f, g := first.Fn, second.Fn
	return Step{Kind: KindMap, Fn: func(v any) (any, error) {
		x, err := f(v)
		if err != nil {
			return nil, err
		}
		return g(x)
	}}
}

// Len returns the number of recorded steps after fusion.
func (p Pipeline) Len() int {
	return p.steps.Len()
}

func (p Pipeline) IsEmpty() bool {
	return p.steps.IsEmpty()
}

// Steps returns the recorded steps in application order.
func (p Pipeline) Steps() []Step {
	out := persistent.ToSlice[Step](p.steps)
	slices.Reverse(out)
	return out
}

// String renders the steps as "map | filter | take(first 3)".
func (p Pipeline) String() string {
	steps := p.Steps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.String()
	}
	return strings.Join(names, " | ")
}
