package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// list aggregates children without spatial pruning
type list struct {
	children []Handle
}

// NewList adds a list primitive holding the given children to the arena.
// An empty list bounds nothing and is never hit.
func (a *Arena) NewList(children ...Handle) Handle {
	a.lists = append(a.lists, list{})
	h := a.add(KindList, len(a.lists)-1, core.EmptyAABB)
	for _, child := range children {
		a.Append(h, child)
	}
	return h
}

// Append adds child to the list at h and grows the list's box to include it
func (a *Arena) Append(h, child Handle) {
	n := &a.nodes[h]
	if n.kind != KindList {
		panic("geometry: Append on " + n.kind.String())
	}
	l := &a.lists[n.index]
	l.children = append(l.children, child)
	n.box = n.box.Union(a.nodes[child].box)
}

// Children returns the children of the list at h; nil for other kinds
func (a *Arena) Children(h Handle) []Handle {
	n := a.nodes[h]
	if n.kind != KindList {
		return nil
	}
	return a.lists[n.index].children
}

func (a *Arena) hitList(l *list, ray core.Ray, t core.Interval, rec *material.HitRecord) bool {
	hitAnything := false
	for _, child := range l.children {
		if a.Hit(child, ray, t, rec) {
			hitAnything = true
			t.Max = rec.T
		}
	}
	return hitAnything
}
