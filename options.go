// Copyright 2024 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

const (
	// DefaultMinEntries is the default lower bound on the number of
	// entries per node.
	DefaultMinEntries = 2
	// DefaultMaxEntries is the default upper bound on the number of
	// entries per node. Exceeding it triggers a node split.
	DefaultMaxEntries = 4
)

type options struct {
	minEntries    int
	maxEntries    int
	strictMinFill bool
}

// An Option configures a tree at construction time.
type Option func(*options)

// WithMinEntries sets the lower bound on the number of entries per
// node. The bound must be at least 1 and at most half of the max
// entries bound; New panics otherwise.
//
// Note that by default the bound is advisory: the split algorithm
// mirrors the reference behavior and may produce a node with fewer
// than min entries. See WithStrictMinFill.
func WithMinEntries(min int) Option {
	return func(o *options) {
		o.minEntries = min
	}
}

// WithMaxEntries sets the upper bound on the number of entries per
// node. The bound must be at least 2; New panics otherwise.
func WithMaxEntries(max int) Option {
	return func(o *options) {
		o.maxEntries = max
	}
}

// WithStrictMinFill makes node splits enforce the min entries bound.
// When the greedy distribution has only as many entries left as one
// group needs to reach min entries, the remainder is routed to that
// group instead of being assigned by area increase.
//
// The default, permissive behavior can leave a split group with a
// single seed entry if every other entry routes to the other side.
func WithStrictMinFill() Option {
	return func(o *options) {
		o.strictMinFill = true
	}
}

func validateOptions(o *options) {
	if o.maxEntries < 2 {
		textPanic("max entries must be at least 2")
	} else if o.minEntries < 1 {
		textPanic("min entries must be at least 1")
	} else if o.minEntries > o.maxEntries/2 {
		textPanic("min entries must not exceed half of max entries")
	}
}
