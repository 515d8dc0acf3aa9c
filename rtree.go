// Copyright 2024 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"fmt"
	"math"
)

// An RTree is a dynamic R-tree spatial index mapping bounding boxes to
// values of type T.
//
// All nodes live in a single append-only arena owned by the tree and
// reference each other by handle, never by pointer. A split never
// frees a node: it reuses the overflowing node for one group,
// allocates a sibling for the other, and rewires the routing entries
// above them.
//
// An RTree is not safe for concurrent use. Search calls may run
// alongside other Search calls, but not alongside Insert or Load.
type RTree[T any] struct {
	minEntries    int
	maxEntries    int
	strictMinFill bool

	nodes []node[T]
	root  nodeHandle
	count int
}

// New creates an empty tree whose root is a single empty leaf node.
// Panics if an option carries an invalid value.
func New[T any](opts ...Option) *RTree[T] {
	o := options{
		minEntries: DefaultMinEntries,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(&o)
	}
	validateOptions(&o)

	t := &RTree[T]{
		minEntries:    o.minEntries,
		maxEntries:    o.maxEntries,
		strictMinFill: o.strictMinFill,
	}
	t.root = t.newNode(true)
	return t
}

// newNode appends a node to the arena and returns its handle.
func (t *RTree[T]) newNode(leaf bool) nodeHandle {
	t.nodes = append(t.nodes, node[T]{leaf: leaf})
	return nodeHandle(len(t.nodes) - 1)
}

// at returns the node identified by h. Panics if h is not a valid
// handle for this tree.
func (t *RTree[T]) at(h nodeHandle) *node[T] {
	if h < 0 || int(h) >= len(t.nodes) {
		fmtPanic("node handle %d out of range [0,%d)", h, len(t.nodes))
	}
	return &t.nodes[h]
}

// mbr returns the minimum bounding rectangle of the entries of the
// node identified by h, or EmptyBox if the node has no entries.
func (t *RTree[T]) mbr(h nodeHandle) Box {
	b := EmptyBox
	n := t.at(h)
	for i := range n.entries {
		b.Expand(&n.entries[i].box)
	}
	return b
}

// Insert adds value to the index under bounding box b. It always
// succeeds: the tree as a whole has no capacity limit, only individual
// nodes do, and a node that overflows is split.
func (t *RTree[T]) Insert(b Box, value T) {
	leaf := t.chooseLeaf(t.root, &b)
	n := t.at(leaf)
	n.entries = append(n.entries, entry[T]{box: b, payload: leafValue[T]{value}})
	t.count++
	if len(n.entries) > t.maxEntries {
		t.splitNode(leaf)
	}
}

// chooseLeaf descends from h to the leaf node best suited to receive a
// new entry with box b. At each internal node it picks the entry whose
// box needs the smallest area increase to absorb b, taking the lowest
// entry index on a tie, and eagerly expands that entry's box in place
// before descending, so routing boxes stay tight along the whole path.
func (t *RTree[T]) chooseLeaf(h nodeHandle, b *Box) nodeHandle {
	n := t.at(h)
	if n.leaf {
		return h
	}

	best := 0
	bestIncrease := math.Inf(1)
	for i := range n.entries {
		if increase := enlargement(&n.entries[i].box, b); increase < bestIncrease {
			bestIncrease = increase
			best = i
		}
	}

	chosen := &n.entries[best]
	chosen.box.Expand(b)
	return t.chooseLeaf(chosen.child(), b)
}

// splitNode resolves an overflowing node by distributing its entries
// between the node itself and a newly allocated sibling, then wiring
// the sibling into the parent. If the parent overflows in turn, the
// split propagates upward; if the split node was the root, a new root
// is allocated above both groups.
func (t *RTree[T]) splitNode(h nodeHandle) {
	n := t.at(h)
	leaf := n.leaf

	// Seed selection: of every unordered entry pair, take the one that
	// wastes the most area when forced into a single box. The first
	// maximal pair in (i, j) scan order wins.
	seed1, seed2 := 0, 1
	maxWaste := math.Inf(-1)
	for i := 0; i < len(n.entries); i++ {
		for j := i + 1; j < len(n.entries); j++ {
			union := n.entries[i].box
			union.Expand(&n.entries[j].box)
			waste := union.Area() - n.entries[i].box.Area() - n.entries[j].box.Area()
			if waste > maxWaste {
				maxWaste = waste
				seed1, seed2 = i, j
			}
		}
	}

	group1 := make([]entry[T], 1, len(n.entries))
	group2 := make([]entry[T], 1, len(n.entries))
	group1[0] = n.entries[seed1]
	group2[0] = n.entries[seed2]

	remaining := make([]entry[T], 0, len(n.entries)-2)
	for i := range n.entries {
		if i != seed1 && i != seed2 {
			remaining = append(remaining, n.entries[i])
		}
	}

	// Greedy distribution in storage order. Area increase is measured
	// against each group's seed box, which the pass never re-expands.
	// Ties go to the original node.
	for k := range remaining {
		if t.strictMinFill {
			left := len(remaining) - k
			if need := t.minEntries - len(group1); need > 0 && left == need {
				group1 = append(group1, remaining[k:]...)
				break
			}
			if need := t.minEntries - len(group2); need > 0 && left == need {
				group2 = append(group2, remaining[k:]...)
				break
			}
		}
		increase1 := enlargement(&group1[0].box, &remaining[k].box)
		increase2 := enlargement(&group2[0].box, &remaining[k].box)
		if increase1 <= increase2 {
			group1 = append(group1, remaining[k])
		} else {
			group2 = append(group2, remaining[k])
		}
	}

	// newNode may grow the arena, so n is refetched through its handle
	// from here on.
	sibling := t.newNode(leaf)
	t.at(h).entries = group1
	t.at(sibling).entries = group2

	if h == t.root {
		root := t.newNode(false)
		t.at(root).entries = append(t.at(root).entries,
			entry[T]{box: t.mbr(h), payload: childRef{h}},
			entry[T]{box: t.mbr(sibling), payload: childRef{sibling}},
		)
		t.root = root
		return
	}

	parent := t.findParent(h)
	p := t.at(parent)
	for i := range p.entries {
		if cr, ok := p.entries[i].payload.(childRef); ok && cr.handle == h {
			p.entries[i].box = t.mbr(h)
			break
		}
	}
	p.entries = append(p.entries, entry[T]{box: t.mbr(sibling), payload: childRef{sibling}})
	if len(p.entries) > t.maxEntries {
		t.splitNode(parent)
	}
}

// findParent locates the node holding the routing entry for h by
// scanning the arena. Every non-root node must be referenced by
// exactly one internal entry; a node with no referencing entry means
// the index bookkeeping is broken, which is fatal.
func (t *RTree[T]) findParent(h nodeHandle) nodeHandle {
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.leaf {
			continue
		}
		for j := range n.entries {
			if cr, ok := n.entries[j].payload.(childRef); ok && cr.handle == h {
				return nodeHandle(i)
			}
		}
	}
	fmtPanic("no parent entry references node %d: index is corrupt", h)
	return invalidHandle // not reached
}

// Search returns the stored values whose bounding boxes overlap b.
// The order of the results is not defined and may change as values are
// inserted. Search never modifies the tree.
func (t *RTree[T]) Search(b Box) []T {
	r := make([]T, 0)
	stack := visitStack{t.root}
	for len(stack) > 0 {
		n := t.at(stack.pop())
		for i := range n.entries {
			e := &n.entries[i]
			if !e.box.Overlaps(&b) {
				continue
			} else if n.leaf {
				r = append(r, e.value())
			} else {
				stack.push(e.child())
			}
		}
	}
	return r
}

// A visitStack tracks the pending subtrees of a depth-first Search.
type visitStack []nodeHandle

func (s *visitStack) push(h nodeHandle) {
	*s = append(*s, h)
}

func (s *visitStack) pop() nodeHandle {
	old := *s
	n := len(old)
	h := old[n-1]
	*s = old[:n-1]
	return h
}

// Load inserts a batch of items, ordering them along a Hilbert curve
// first so that items near each other in space land near each other in
// the tree. The visible result is identical to inserting the items one
// by one; the ordering only improves how tightly the routing boxes fit.
// The input slice is not modified.
func (t *RTree[T]) Load(items []Item[T]) {
	if len(items) == 0 {
		return
	}
	sorted := make([]Item[T], len(items))
	copy(sorted, items)
	bounds := EmptyBox
	for i := range sorted {
		bounds.Expand(&sorted[i].Box)
	}
	HilbertSort(sorted, bounds)
	for i := range sorted {
		t.Insert(sorted[i].Box, sorted[i].Value)
	}
}

// Bounds returns the minimum bounding rectangle of every stored item,
// or EmptyBox if the tree is empty.
func (t *RTree[T]) Bounds() Box {
	return t.mbr(t.root)
}

// Len returns the number of stored items.
func (t *RTree[T]) Len() int {
	return t.count
}

// MinEntries returns the lower bound on the number of entries per
// node.
func (t *RTree[T]) MinEntries() int {
	return t.minEntries
}

// MaxEntries returns the upper bound on the number of entries per
// node.
func (t *RTree[T]) MaxEntries() int {
	return t.maxEntries
}

// String returns a summary description of the tree.
func (t *RTree[T]) String() string {
	return fmt.Sprintf("RTree{Bounds:%s,Len:%d,MinEntries:%d,MaxEntries:%d}",
		t.Bounds(), t.count, t.minEntries, t.maxEntries)
}
