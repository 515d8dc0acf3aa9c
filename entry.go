// Copyright 2024 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// A nodeHandle identifies a node by its position in the tree's node
// arena. Handles are stable for the life of the tree because nodes are
// never removed from the arena.
type nodeHandle int

const invalidHandle nodeHandle = -1

// A payload is the tagged content of an entry: exactly one of a stored
// value (in a leaf node) or a child node handle (in an internal node).
// The sealed interface makes an entry carrying both, or neither,
// unrepresentable.
type payload interface {
	isPayload()
}

// leafValue is the payload of a leaf entry.
type leafValue[T any] struct {
	value T
}

// childRef is the payload of an internal entry. The owning entry's box
// is the minimum bounding rectangle of everything reachable under
// handle.
type childRef struct {
	handle nodeHandle
}

func (leafValue[T]) isPayload() {}
func (childRef) isPayload()     {}

// An entry pairs a bounding box with either a stored value or a child
// node reference, depending on whether the owning node is a leaf.
type entry[T any] struct {
	box     Box
	payload payload
}

// value returns the stored value of a leaf entry. Panics if the entry
// routes to a child node instead.
func (e *entry[T]) value() T {
	if lv, ok := e.payload.(leafValue[T]); ok {
		return lv.value
	}
	textPanic("entry does not hold a stored value")
	var zero T
	return zero // not reached
}

// child returns the child handle of an internal entry. Panics if the
// entry holds a stored value instead.
func (e *entry[T]) child() nodeHandle {
	if cr, ok := e.payload.(childRef); ok {
		return cr.handle
	}
	textPanic("entry does not reference a child node")
	return invalidHandle // not reached
}

// A node is an ordered list of entries plus a flag marking it as a
// leaf or an internal node. A stabilized node holds at most maxEntries
// entries; during insertion it may transiently hold one more, until
// the split that resolves the overflow completes.
type node[T any] struct {
	leaf    bool
	entries []entry[T]
}
