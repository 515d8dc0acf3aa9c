// Copyright 2024 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree_test

import (
	"fmt"
	"sort"

	"github.com/gogama/rtree"
)

func ExampleNew() {
	index := rtree.New[int]()
	index.Insert(rtree.Box{XMin: 0, YMin: 0, XMax: 5, YMax: 5}, 1)
	index.Insert(rtree.Box{XMin: 6, YMin: 6, XMax: 10, YMax: 10}, 2)

	fmt.Println(index)
	// Output: RTree{Bounds:[0,0,10,10],Len:2,MinEntries:2,MaxEntries:4}
}

func ExampleRTree_Search() {
	index := rtree.New[int]()
	index.Insert(rtree.Box{XMin: 0, YMin: 0, XMax: 5, YMax: 5}, 1)
	index.Insert(rtree.Box{XMin: 6, YMin: 6, XMax: 10, YMax: 10}, 2)
	index.Insert(rtree.Box{XMin: 11, YMin: 11, XMax: 15, YMax: 15}, 3)
	index.Insert(rtree.Box{XMin: 16, YMin: 16, XMax: 20, YMax: 20}, 4)

	// Search result order is unspecified, so sort for stable output.
	rs1 := index.Search(rtree.Box{XMin: 0, YMin: 0, XMax: 10, YMax: 10})
	sort.Ints(rs1)
	fmt.Println("Search 1:", rs1)

	rs2 := index.Search(rtree.Box{XMin: 10, YMin: 10, XMax: 20, YMax: 20})
	sort.Ints(rs2)
	fmt.Println("Search 2:", rs2)

	rs3 := index.Search(rtree.Box{XMin: 50, YMin: 50, XMax: 60, YMax: 60})
	fmt.Println("Search 3:", rs3)

	// Boxes sharing only an edge do not overlap.
	rs4 := index.Search(rtree.Box{XMin: 5, YMin: 0, XMax: 6, YMax: 5})
	fmt.Println("Search 4:", rs4)
	// Output: Search 1: [1 2]
	// Search 2: [3 4]
	// Search 3: []
	// Search 4: []
}

func ExampleRTree_Load() {
	index := rtree.New[string]()
	index.Load([]rtree.Item[string]{
		{Box: rtree.Box{XMin: -2, YMin: -2, XMax: -1, YMax: -1}, Value: "southwest"},
		{Box: rtree.Box{XMin: 1, YMin: 1, XMax: 2, YMax: 2}, Value: "northeast"},
		{Box: rtree.Box{XMin: -2, YMin: 1, XMax: -1, YMax: 2}, Value: "northwest"},
		{Box: rtree.Box{XMin: 1, YMin: -2, XMax: 2, YMax: -1}, Value: "southeast"},
	})

	rs := index.Search(rtree.Box{XMin: 0, YMin: -3, XMax: 3, YMax: 3})
	sort.Strings(rs)
	fmt.Println(index.Len(), rs)
	// Output: 4 [northeast southeast]
}
