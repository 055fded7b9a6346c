package persistent

import (
	"iter"
	"slices"
)

const (
	vectorBits  = 5
	vectorWidth = 1 << vectorBits
	vectorMask  = vectorWidth - 1
)

// vnode is either a branch (children) or a leaf (values). Nodes reachable from a
// Vector are never written again; edits clone the path they touch.
type vnode[T any] struct {
	children []*vnode[T]
	values   []T
}

func (n *vnode[T]) child(i int) *vnode[T] {
	if i < len(n.children) {
		return n.children[i]
	}
	return nil
}

// clone copies n, growing children to at least minChildren entries.
func (n *vnode[T]) clone(minChildren int) *vnode[T] {
	ret := &vnode[T]{}
	if n.children != nil || minChildren > 0 {
		ret.children = make([]*vnode[T], max(len(n.children), minChildren))
		copy(ret.children, n.children)
	}
	if n.values != nil {
		ret.values = slices.Clone(n.values)
	}
	return ret
}

func newPath[T any](level uint, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	return &vnode[T]{children: []*vnode[T]{newPath(level-vectorBits, node)}}
}

// Vector is a persistent vector: a 32-way trie plus a tail buffer of up to 32 elements.
// The zero value is an empty vector.
//
// Elements live at absolute positions [start, count). Popping at the front only moves
// start, so prefix removal and queue-style consumption are O(1). Pushing at the front
// fills the dead slot before start; when there is none the vector is rebuilt behind a
// dead prefix as long as itself. Dead slots before start are compacted away once they
// outnumber the live elements.
type Vector[T any] struct {
	root  *vnode[T]
	tail  []T
	shift uint
	count int
	start int
}

// EmptyVector returns an empty vector.
func EmptyVector[T any]() Vector[T] {
	return Vector[T]{root: &vnode[T]{}, shift: vectorBits}
}

// VectorOf returns a vector holding values in order.
func VectorOf[T any](values ...T) Vector[T] {
	return vectorFromSlice(values)
}

// vectorFromSlice builds the trie bottom up in one pass. values is not retained.
func vectorFromSlice[T any](values []T) Vector[T] {
	n := len(values)
	if n == 0 {
		return EmptyVector[T]()
	}
	tailLen := n & vectorMask
	if tailLen == 0 {
		tailLen = vectorWidth
	}
	tailOff := n - tailLen

	nodes := make([]*vnode[T], 0, tailOff/vectorWidth)
	for i := 0; i < tailOff; i += vectorWidth {
		nodes = append(nodes, &vnode[T]{values: slices.Clone(values[i : i+vectorWidth])})
	}

	root := &vnode[T]{}
	shift := uint(vectorBits)
	if len(nodes) > 0 {
		for {
			parents := make([]*vnode[T], 0, (len(nodes)+vectorMask)/vectorWidth)
			for i := 0; i < len(nodes); i += vectorWidth {
				parents = append(parents, &vnode[T]{children: slices.Clone(nodes[i:min(i+vectorWidth, len(nodes))])})
			}
			nodes = parents
			if len(nodes) == 1 {
				break
			}
			shift += vectorBits
		}
		root = nodes[0]
	}

	return Vector[T]{
		root:  root,
		tail:  slices.Clone(values[tailOff:]),
		shift: shift,
		count: n,
	}
}

func (v Vector[T]) norm() Vector[T] {
	if v.root == nil {
		return EmptyVector[T]()
	}
	return v
}

func (v Vector[T]) Len() int {
	return v.count - v.start
}

func (v Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

func (v Vector[T]) Home() Position {
	return Back
}

func (v Vector[T]) tailOff() int {
	return v.count - len(v.tail)
}

// leafFor returns the leaf holding absolute index i and the offset of i inside it.
func (v Vector[T]) leafFor(i int) ([]T, int) {
	if off := v.tailOff(); i >= off {
		return v.tail, i - off
	}
	node := v.root
	for level := v.shift; level > 0; level -= vectorBits {
		node = node.children[(i>>level)&vectorMask]
	}
	return node.values, i & vectorMask
}

func (v Vector[T]) at(i int) T {
	leaf, j := v.leafFor(i)
	return leaf[j]
}

func (v Vector[T]) Get(i int) (T, error) {
	if err := CheckIndex(i, v.Len()); err != nil {
		var zero T
		return zero, err
	}
	return v.at(v.start + i), nil
}

func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.start; i < v.count; {
			leaf, j := v.leafFor(i)
			for ; j < len(leaf) && i < v.count; j++ {
				if !yield(leaf[j]) {
					return
				}
				i++
			}
		}
	}
}

func (v Vector[T]) live() []T {
	return ToSlice[T](v)
}

func (v Vector[T]) pushBack(x T) Vector[T] {
	v = v.norm()
	if len(v.tail) < vectorWidth {
		v.tail = append(slices.Clip(v.tail), x)
		v.count++
		return v
	}

	tailNode := &vnode[T]{values: v.tail}
	if (v.count >> vectorBits) > (1 << v.shift) {
		v.root = &vnode[T]{children: []*vnode[T]{v.root, newPath(v.shift, tailNode)}}
		v.shift += vectorBits
	} else {
		v.root = v.pushTail(v.shift, v.root, tailNode)
	}
	v.tail = []T{x}
	v.count++
	return v
}

func (v Vector[T]) pushTail(level uint, parent, tailNode *vnode[T]) *vnode[T] {
	subidx := ((v.count - 1) >> level) & vectorMask
	ret := parent.clone(subidx + 1)
	switch child := parent.child(subidx); {
	case level == vectorBits:
		ret.children[subidx] = tailNode
	case child != nil:
		ret.children[subidx] = v.pushTail(level-vectorBits, child, tailNode)
	default:
		ret.children[subidx] = newPath(level-vectorBits, tailNode)
	}
	return ret
}

// assoc replaces the element at absolute index i, copying one root-to-leaf path.
func (v Vector[T]) assoc(i int, x T) Vector[T] {
	if off := v.tailOff(); i >= off {
		tail := slices.Clone(v.tail)
		tail[i-off] = x
		v.tail = tail
		return v
	}
	v.root = doAssoc(v.shift, v.root, i, x)
	return v
}

func doAssoc[T any](level uint, node *vnode[T], i int, x T) *vnode[T] {
	ret := node.clone(0)
	if level == 0 {
		ret.values[i&vectorMask] = x
		return ret
	}
	sub := (i >> level) & vectorMask
	ret.children[sub] = doAssoc(level-vectorBits, node.children[sub], i, x)
	return ret
}

func (v Vector[T]) popBack() Vector[T] {
	if v.Len() == 1 {
		return EmptyVector[T]()
	}
	if len(v.tail) > 1 {
		v.tail = v.tail[:len(v.tail)-1]
		v.count--
		return v
	}

	newTail, _ := v.leafFor(v.count - 2)
	newRoot := v.popTail(v.shift, v.root)
	shift := v.shift
	if newRoot == nil {
		newRoot = &vnode[T]{}
	}
	if shift > vectorBits && newRoot.child(1) == nil {
		newRoot = newRoot.children[0]
		shift -= vectorBits
	}
	v.root, v.shift, v.tail = newRoot, shift, newTail
	v.count--
	return v
}

func (v Vector[T]) popTail(level uint, node *vnode[T]) *vnode[T] {
	subidx := ((v.count - 2) >> level) & vectorMask
	if level > vectorBits {
		newChild := v.popTail(level-vectorBits, node.children[subidx])
		if newChild == nil && subidx == 0 {
			return nil
		}
		ret := node.clone(0)
		if newChild == nil {
			ret.children = ret.children[:subidx]
		} else {
			ret.children[subidx] = newChild
		}
		return ret
	}
	if subidx == 0 {
		return nil
	}
	ret := node.clone(0)
	ret.children = ret.children[:subidx]
	return ret
}

func (v Vector[T]) popFront() Vector[T] {
	if v.Len() == 1 {
		return EmptyVector[T]()
	}
	v.start++
	if v.start >= vectorWidth && v.start > v.Len() {
		return vectorFromSlice(v.live())
	}
	return v
}

func (v Vector[T]) Push(pos Position, x T) Snapshot[T] {
	if pos == Back {
		return v.pushBack(x)
	}
	if v.start > 0 {
		// reuse the dead slot just before the first live element
		v = v.assoc(v.start-1, x)
		v.start--
		return v
	}
	// rebuild behind a dead prefix as long as the vector; later prepends fill it
	pad := max(vectorWidth, v.Len())
	vals := make([]T, pad, pad+v.Len())
	out := vectorFromSlice(append(vals, v.live()...))
	out = out.assoc(pad-1, x)
	out.start = pad - 1
	return out
}

func (v Vector[T]) Pop(pos Position) (T, Snapshot[T], error) {
	n := v.Len()
	if n == 0 {
		var zero T
		return zero, v, indexError(0, 0)
	}
	if pos == Front {
		return v.at(v.start), v.popFront(), nil
	}
	return v.at(v.count - 1), v.popBack(), nil
}

func (v Vector[T]) Set(i int, x T) (Snapshot[T], error) {
	if err := CheckIndex(i, v.Len()); err != nil {
		return v, err
	}
	return v.assoc(v.start+i, x), nil
}

// Insert is O(log n) at either end and rebuilds the vector otherwise.
func (v Vector[T]) Insert(i int, x T) (Snapshot[T], error) {
	n := v.Len()
	if err := CheckInsert(i, n); err != nil {
		return v, err
	}
	switch i {
	case n:
		return v.pushBack(x), nil
	case 0:
		return v.Push(Front, x), nil
	}
	vals := v.live()
	return vectorFromSlice(slices.Insert(vals, i, x)), nil
}

// Delete is O(log n) at either end and rebuilds the vector otherwise.
func (v Vector[T]) Delete(i int) (Snapshot[T], error) {
	n := v.Len()
	if err := CheckIndex(i, n); err != nil {
		return v, err
	}
	switch i {
	case 0:
		return v.popFront(), nil
	case n - 1:
		return v.popBack(), nil
	}
	vals := v.live()
	return vectorFromSlice(slices.Delete(vals, i, i+1)), nil
}

// Concat pushes every element of other onto the receiver, sharing the receiver's trie.
func (v Vector[T]) Concat(other Reader[T]) Snapshot[T] {
	if o, ok := other.(Vector[T]); ok && v.Len() == 0 {
		return o
	}
	out := v
	for x := range other.Values() {
		out = out.pushBack(x)
	}
	return out
}

// Slice moves start for the prefix and pops or rebuilds for the suffix, whichever
// touches fewer elements.
func (v Vector[T]) Slice(from, to int) (Snapshot[T], error) {
	n := v.Len()
	if err := CheckSlice(from, to, n); err != nil {
		return v, err
	}
	if from == to {
		return EmptyVector[T](), nil
	}
	drop := n - to
	if drop > to-from {
		vals := make([]T, 0, to-from)
		for i := from; i < to; i++ {
			vals = append(vals, v.at(v.start+i))
		}
		return vectorFromSlice(vals), nil
	}
	out := v
	out.start += from
	for range drop {
		out = out.popBack()
	}
	return out, nil
}

// AppendN appends n generated values with one rebuild.
func (v Vector[T]) AppendN(n int, gen func(i int) T) Snapshot[T] {
	if n <= 0 {
		return v
	}
	vals := make([]T, 0, v.Len()+n)
	vals = append(vals, v.live()...)
	for i := range n {
		vals = append(vals, gen(i))
	}
	return vectorFromSlice(vals)
}

// String implements fmt.Stringer.
func (v Vector[T]) String() string {
	return Format[T](v)
}
