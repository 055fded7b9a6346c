package pipeline

import (
	"fmt"
	"iter"
)

// Kind tags the variant of a Step.
type Kind uint8

const (
	KindMap Kind = iota
	KindFilter
	KindFlatMap
	KindTake
	KindDrop
	KindGroup
	KindGroupWhile
	KindGroupBy
	KindWindow
	KindZip
	KindEnumerate
	KindScanLeft
	KindScanRight
	KindDistinct
	KindSort
	KindShuffle
	KindReverse
	KindPeek
	KindConcat
	KindPrepend
	KindInsertAt
	KindSetAt
	KindDeleteAt
	KindRemoveFirst
	KindSlice
	KindCycle
	KindIntersperse
	KindOnEmpty
	KindCombinations
	KindPermutations
)

var kindNames = [...]string{
	KindMap:          "map",
	KindFilter:       "filter",
	KindFlatMap:      "flatMap",
	KindTake:         "take",
	KindDrop:         "drop",
	KindGroup:        "group",
	KindGroupWhile:   "groupWhile",
	KindGroupBy:      "groupBy",
	KindWindow:       "window",
	KindZip:          "zip",
	KindEnumerate:    "enumerate",
	KindScanLeft:     "scanLeft",
	KindScanRight:    "scanRight",
	KindDistinct:     "distinct",
	KindSort:         "sort",
	KindShuffle:      "shuffle",
	KindReverse:      "reverse",
	KindPeek:         "peek",
	KindConcat:       "concat",
	KindPrepend:      "prepend",
	KindInsertAt:     "insertAt",
	KindSetAt:        "setAt",
	KindDeleteAt:     "deleteAt",
	KindRemoveFirst:  "removeFirst",
	KindSlice:        "slice",
	KindCycle:        "cycle",
	KindIntersperse:  "intersperse",
	KindOnEmpty:      "onEmpty",
	KindCombinations: "combinations",
	KindPermutations: "permutations",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Policy selects how Take, Drop, GroupWhile and Cycle pick their elements.
type Policy uint8

const (
	FirstN Policy = iota
	LastN
	While
	Until
)

func (p Policy) String() string {
	switch p {
	case FirstN:
		return "first"
	case LastN:
		return "last"
	case While:
		return "while"
	case Until:
		return "until"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Step is one recorded transformation. Which fields are meaningful depends on Kind;
// use the constructors rather than filling a Step by hand.
type Step struct {
	Kind   Kind
	Policy Policy
	N, M   int
	Value  any
	Seed   uint64

	Fn      func(any) (any, error)
	Pred    func(any) (bool, error)
	Flat    func(any) (iter.Seq[any], error)
	Key     func(any) any
	Compare func(a, b any) int
	Acc     func(a, b any) any
	Combine func(a, b any) any
	Pack    func(key any, members []any) any
	Action  func(any)
	Supply  func() any
	Other   func() (iter.Seq[any], error)
}

func (s Step) String() string {
	switch s.Kind {
	case KindTake, KindDrop:
		if s.Policy == While || s.Policy == Until {
			return fmt.Sprintf("%s(%s)", s.Kind, s.Policy)
		}
		return fmt.Sprintf("%s(%s %d)", s.Kind, s.Policy, s.N)
	case KindGroupWhile:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Policy)
	case KindCycle:
		if s.Policy == While || s.Policy == Until {
			return fmt.Sprintf("%s(%s)", s.Kind, s.Policy)
		}
		return fmt.Sprintf("%s(%d)", s.Kind, s.N)
	case KindCombinations:
		if s.N < 0 {
			return fmt.Sprintf("%s(all)", s.Kind)
		}
		return fmt.Sprintf("%s(%d)", s.Kind, s.N)
	case KindGroup, KindInsertAt, KindSetAt, KindDeleteAt:
		return fmt.Sprintf("%s(%d)", s.Kind, s.N)
	case KindWindow, KindSlice:
		return fmt.Sprintf("%s(%d, %d)", s.Kind, s.N, s.M)
	}
	return s.Kind.String()
}

func notNil(name string, isNil bool) {
	if isNil {
		panic("pipeline." + name + ": function cannot be nil")
	}
}

func Map(fn func(any) (any, error)) Step {
	notNil("Map", fn == nil)
	return Step{Kind: KindMap, Fn: fn}
}

func Filter(pred func(any) (bool, error)) Step {
	notNil("Filter", pred == nil)
	return Step{Kind: KindFilter, Pred: pred}
}

func FlatMap(fn func(any) (iter.Seq[any], error)) Step {
	notNil("FlatMap", fn == nil)
	return Step{Kind: KindFlatMap, Flat: fn}
}

// Take keeps the first n elements.
func Take(n int) Step {
	return Step{Kind: KindTake, Policy: FirstN, N: max(n, 0)}
}

// TakeLast keeps the last n elements.
func TakeLast(n int) Step {
	return Step{Kind: KindTake, Policy: LastN, N: max(n, 0)}
}

// TakeWhile keeps elements up to the first one failing pred.
func TakeWhile(pred func(any) (bool, error)) Step {
	notNil("TakeWhile", pred == nil)
	return Step{Kind: KindTake, Policy: While, Pred: pred}
}

// TakeUntil keeps elements up to the first one satisfying pred.
func TakeUntil(pred func(any) (bool, error)) Step {
	notNil("TakeUntil", pred == nil)
	return Step{Kind: KindTake, Policy: Until, Pred: pred}
}

func Drop(n int) Step {
	return Step{Kind: KindDrop, Policy: FirstN, N: max(n, 0)}
}

func DropLast(n int) Step {
	return Step{Kind: KindDrop, Policy: LastN, N: max(n, 0)}
}

func DropWhile(pred func(any) (bool, error)) Step {
	notNil("DropWhile", pred == nil)
	return Step{Kind: KindDrop, Policy: While, Pred: pred}
}

func DropUntil(pred func(any) (bool, error)) Step {
	notNil("DropUntil", pred == nil)
	return Step{Kind: KindDrop, Policy: Until, Pred: pred}
}

// Group packs consecutive runs of size elements; the last group may be shorter.
func Group(size int, pack func(key any, members []any) any) Step {
	if size <= 0 {
		panic("pipeline.Group: size must be greater than 0")
	}
	return Step{Kind: KindGroup, N: size, Pack: pack}
}

// GroupWhile closes a group after the first element for which pred (While) fails or
// (Until) holds. That element ends the group it closes.
func GroupWhile(policy Policy, pred func(any) (bool, error), pack func(key any, members []any) any) Step {
	notNil("GroupWhile", pred == nil)
	return Step{Kind: KindGroupWhile, Policy: policy, Pred: pred, Pack: pack}
}

// GroupBy packs elements sharing a key, in order of each key's first appearance.
func GroupBy(key func(any) any, pack func(key any, members []any) any) Step {
	notNil("GroupBy", key == nil)
	return Step{Kind: KindGroupBy, Key: key, Pack: pack}
}

// Window packs full windows of size elements, starting a new window every step elements.
func Window(size, step int, pack func(key any, members []any) any) Step {
	if size <= 0 || step <= 0 {
		panic("pipeline.Window: size and step must be greater than 0")
	}
	return Step{Kind: KindWindow, N: size, M: step, Pack: pack}
}

// Zip pairs elements with the sequence produced by other, stopping at the shorter one.
func Zip(other func() (iter.Seq[any], error), combine func(a, b any) any) Step {
	notNil("Zip", other == nil || combine == nil)
	return Step{Kind: KindZip, Other: other, Combine: combine}
}

// Enumerate replaces each element v at index i with combine(i, v).
func Enumerate(combine func(i, v any) any) Step {
	notNil("Enumerate", combine == nil)
	return Step{Kind: KindEnumerate, Combine: combine}
}

// ScanLeft yields seed followed by every running accumulation acc(acc, v).
func ScanLeft(seed any, acc func(acc, v any) any) Step {
	notNil("ScanLeft", acc == nil)
	return Step{Kind: KindScanLeft, Value: seed, Acc: acc}
}

// ScanRight yields the right-to-left accumulations acc(v, acc), ending with seed.
func ScanRight(seed any, acc func(v, acc any) any) Step {
	notNil("ScanRight", acc == nil)
	return Step{Kind: KindScanRight, Value: seed, Acc: acc}
}

// Distinct keeps the first element for every key. Keys must be comparable.
func Distinct(key func(any) any) Step {
	notNil("Distinct", key == nil)
	return Step{Kind: KindDistinct, Key: key}
}

// Sort orders elements stably by compare.
func Sort(compare func(a, b any) int) Step {
	notNil("Sort", compare == nil)
	return Step{Kind: KindSort, Compare: compare}
}

// Shuffle permutes elements with a generator seeded by seed; equal seeds give equal orders.
func Shuffle(seed uint64) Step {
	return Step{Kind: KindShuffle, Seed: seed}
}

func Reverse() Step {
	return Step{Kind: KindReverse}
}

func Peek(action func(any)) Step {
	notNil("Peek", action == nil)
	return Step{Kind: KindPeek, Action: action}
}

// Concat appends the elements produced by other. other is called when the step runs.
func Concat(other func() (iter.Seq[any], error)) Step {
	notNil("Concat", other == nil)
	return Step{Kind: KindConcat, Other: other}
}

// Prepend puts the elements produced by other in front.
func Prepend(other func() (iter.Seq[any], error)) Step {
	notNil("Prepend", other == nil)
	return Step{Kind: KindPrepend, Other: other}
}

// InsertAt places v before index i. i may equal the stream length.
func InsertAt(i int, v any) Step {
	return Step{Kind: KindInsertAt, N: i, Value: v}
}

// SetAt replaces the element at index i.
func SetAt(i int, v any) Step {
	return Step{Kind: KindSetAt, N: i, Value: v}
}

// DeleteAt removes the element at index i.
func DeleteAt(i int) Step {
	return Step{Kind: KindDeleteAt, N: i}
}

// RemoveFirst drops the first element satisfying pred.
func RemoveFirst(pred func(any) (bool, error)) Step {
	notNil("RemoveFirst", pred == nil)
	return Step{Kind: KindRemoveFirst, Pred: pred}
}

// Slice keeps the elements in [from, to).
func Slice(from, to int) Step {
	return Step{Kind: KindSlice, N: from, M: to}
}

// Cycle repeats the stream n times.
func Cycle(n int) Step {
	return Step{Kind: KindCycle, N: n}
}

// CycleWhile repeats the stream until the first element failing pred.
func CycleWhile(pred func(any) (bool, error)) Step {
	notNil("CycleWhile", pred == nil)
	return Step{Kind: KindCycle, Policy: While, Pred: pred}
}

// CycleUntil repeats the stream until the first element satisfying pred.
func CycleUntil(pred func(any) (bool, error)) Step {
	notNil("CycleUntil", pred == nil)
	return Step{Kind: KindCycle, Policy: Until, Pred: pred}
}

func Intersperse(sep any) Step {
	return Step{Kind: KindIntersperse, Value: sep}
}

// OnEmpty yields supply() when the stream turns out to be empty.
func OnEmpty(supply func() any) Step {
	notNil("OnEmpty", supply == nil)
	return Step{Kind: KindOnEmpty, Supply: supply}
}

// OnEmptySwitch yields the elements produced by other when the stream turns out to be
// empty. other is not called otherwise.
func OnEmptySwitch(other func() (iter.Seq[any], error)) Step {
	notNil("OnEmptySwitch", other == nil)
	return Step{Kind: KindOnEmpty, Other: other}
}

// Combinations packs every k-element selection of the stream, in index order.
func Combinations(k int, pack func(key any, members []any) any) Step {
	if k < 0 {
		panic("pipeline.Combinations: size cannot be negative")
	}
	return Step{Kind: KindCombinations, N: k, Pack: pack}
}

// AllCombinations packs the selections of every size from 0 to the stream length.
func AllCombinations(pack func(key any, members []any) any) Step {
	return Step{Kind: KindCombinations, N: -1, Pack: pack}
}

// Permutations packs every ordering of the stream.
func Permutations(pack func(key any, members []any) any) Step {
	return Step{Kind: KindPermutations, Pack: pack}
}
