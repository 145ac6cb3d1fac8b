package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Handle addresses a primitive stored in an Arena
type Handle int32

// NoHandle is the zero-value-safe "nothing" handle
const NoHandle Handle = -1

// Kind identifies the variant of a primitive
type Kind uint8

const (
	KindSphere Kind = iota
	KindQuad
	KindList
	KindBVHNode
	KindTranslate
	KindRotateY
)

// String returns a short human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindQuad:
		return "quad"
	case KindList:
		return "list"
	case KindBVHNode:
		return "bvh"
	case KindTranslate:
		return "translate"
	case KindRotateY:
		return "rotate_y"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// node is the arena's per-primitive header: the variant, an index into the
// variant's payload slice and the precomputed bounding box
type node struct {
	kind  Kind
	index int32
	box   core.AABB
}

// Arena owns every primitive of a scene in contiguous per-kind slices.
// Composite primitives (lists, BVH nodes, transforms) refer to their children
// by Handle, so the primitive graph is a tree with no back references.
// An Arena is built single-threaded and is read-only while rendering.
type Arena struct {
	nodes      []node
	spheres    []Sphere
	quads      []Quad
	lists      []list
	bvhNodes   []bvhNode
	translates []Translate
	rotations  []RotateY
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) add(kind Kind, index int, box core.AABB) Handle {
	a.nodes = append(a.nodes, node{kind: kind, index: int32(index), box: box})
	return Handle(len(a.nodes) - 1)
}

// Len returns the number of primitives (including composites) in the arena
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Valid reports whether h addresses a primitive of this arena
func (a *Arena) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.nodes)
}

// Kind returns the variant of the primitive at h
func (a *Arena) Kind(h Handle) Kind {
	return a.nodes[h].kind
}

// BoundingBox returns the axis-aligned bounding box of the primitive at h
func (a *Arena) BoundingBox(h Handle) core.AABB {
	return a.nodes[h].box
}

// Hit tests the primitive at h against a ray restricted to the parameter range t.
// On a hit closer than t.Max it fills rec and returns true; rec.T is then the
// new upper bound for any further tests of the same ray. On a miss rec is left
// untouched.
func (a *Arena) Hit(h Handle, ray core.Ray, t core.Interval, rec *material.HitRecord) bool {
	n := &a.nodes[h]
	switch n.kind {
	case KindSphere:
		return a.spheres[n.index].Hit(ray, t, rec)
	case KindQuad:
		return a.quads[n.index].Hit(ray, t, rec)
	case KindList:
		return a.hitList(&a.lists[n.index], ray, t, rec)
	case KindBVHNode:
		return a.hitBVH(n.box, &a.bvhNodes[n.index], ray, t, rec)
	case KindTranslate:
		return a.hitTranslate(&a.translates[n.index], ray, t, rec)
	case KindRotateY:
		return a.hitRotateY(&a.rotations[n.index], ray, t, rec)
	default:
		return false
	}
}

// Sphere returns the sphere payload at h
func (a *Arena) Sphere(h Handle) (Sphere, bool) {
	n := a.nodes[h]
	if n.kind != KindSphere {
		return Sphere{}, false
	}
	return a.spheres[n.index], true
}

// Quad returns the quad payload at h
func (a *Arena) Quad(h Handle) (Quad, bool) {
	n := a.nodes[h]
	if n.kind != KindQuad {
		return Quad{}, false
	}
	return a.quads[n.index], true
}

// PrimitiveCount returns the number of spheres and quads reachable from h.
// Shared subtrees are counted once per reference.
func (a *Arena) PrimitiveCount(h Handle) int {
	n := a.nodes[h]
	switch n.kind {
	case KindSphere, KindQuad:
		return 1
	case KindList:
		count := 0
		for _, child := range a.lists[n.index].children {
			count += a.PrimitiveCount(child)
		}
		return count
	case KindBVHNode:
		node := a.bvhNodes[n.index]
		if node.left == node.right {
			return a.PrimitiveCount(node.left)
		}
		return a.PrimitiveCount(node.left) + a.PrimitiveCount(node.right)
	case KindTranslate:
		return a.PrimitiveCount(a.translates[n.index].Child)
	case KindRotateY:
		return a.PrimitiveCount(a.rotations[n.index].Child)
	default:
		return 0
	}
}
