// Copyright 2024 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides a dynamic R-tree spatial index over
// axis-aligned bounding rectangles.
//
// The index stores values keyed by bounding Box and answers
// rectangle-intersection queries without scanning every stored value.
// It balances itself on insertion using a quadratic-cost two-way node
// split. The index lives entirely in memory and is not safe for
// concurrent use: Search calls may run alongside other Search calls,
// but never alongside Insert or Load.
package rtree
