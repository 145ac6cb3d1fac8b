package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// bvhNode is an internal node of the bounding volume hierarchy. Its box lives in
// the arena header. A degenerate leaf references the same child twice.
type bvhNode struct {
	left, right Handle
}

// NewBVH builds a bounding volume hierarchy over handles and returns its root.
// The handles slice is reordered in place. An empty slice yields an empty list.
func (a *Arena) NewBVH(handles []Handle) Handle {
	if len(handles) == 0 {
		return a.NewList()
	}
	return a.buildBVH(handles)
}

// buildBVH recursively builds the BVH using median splits along the longest axis
func (a *Arena) buildBVH(handles []Handle) Handle {
	box := core.EmptyAABB
	for _, h := range handles {
		box = box.Union(a.nodes[h].box)
	}

	var left, right Handle
	switch len(handles) {
	case 1:
		left, right = handles[0], handles[0]
	case 2:
		left, right = handles[0], handles[1]
	default:
		axis := box.LongestAxis()
		sort.Slice(handles, func(i, j int) bool {
			return a.nodes[handles[i]].box.Axis(axis).Min < a.nodes[handles[j]].box.Axis(axis).Min
		})

		mid := len(handles) / 2
		left = a.buildBVH(handles[:mid])
		right = a.buildBVH(handles[mid:])
	}

	a.bvhNodes = append(a.bvhNodes, bvhNode{left: left, right: right})
	return a.add(KindBVHNode, len(a.bvhNodes)-1, box)
}

func (a *Arena) hitBVH(box core.AABB, n *bvhNode, ray core.Ray, t core.Interval, rec *material.HitRecord) bool {
	if !box.Hit(ray, t) {
		return false
	}

	hitLeft := a.Hit(n.left, ray, t, rec)
	if n.right == n.left {
		return hitLeft
	}
	if hitLeft {
		t.Max = rec.T
	}
	hitRight := a.Hit(n.right, ray, t, rec)
	return hitLeft || hitRight
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Nodes      int // Internal BVH nodes
	Leaves     int // Non-BVH children referenced by BVH nodes
	MaxDepth   int // Longest root-to-leaf path, counting BVH nodes
	Primitives int // Distinct leaf references (degenerate leaves count once)
}

// BVHStats walks the hierarchy rooted at h. A non-BVH root counts as a single leaf.
func (a *Arena) BVHStats(h Handle) BVHStats {
	var stats BVHStats
	a.collectBVHStats(h, 0, &stats)
	return stats
}

func (a *Arena) collectBVHStats(h Handle, depth int, stats *BVHStats) {
	n := a.nodes[h]
	if n.kind != KindBVHNode {
		stats.Leaves++
		stats.Primitives++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		return
	}

	stats.Nodes++
	node := a.bvhNodes[n.index]
	a.collectBVHStats(node.left, depth+1, stats)
	if node.right != node.left {
		a.collectBVHStats(node.right, depth+1, stats)
	}
}
