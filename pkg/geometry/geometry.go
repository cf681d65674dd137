// Package geometry defines the domain geometry types for geom.
// A geometry describes the spatial extent of a simulation domain and the
// named boundaries where a consuming grid or solver framework would apply
// boundary conditions. Geometry values are immutable after construction,
// so they are safe to share across concurrent readers without locking.
package geometry

import "sort"

// Boundary names a single face of a domain.
type Boundary string

// BoundarySet is a set of boundary names.
type BoundarySet map[Boundary]struct{}

// Has reports whether the set contains b.
func (s BoundarySet) Has(b Boundary) bool {
	_, ok := s[b]
	return ok
}

// Names returns the boundary names in sorted order for deterministic
// iteration.
func (s BoundarySet) Names() []Boundary {
	names := make([]Boundary, 0, len(s))
	for b := range s {
		names = append(names, b)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// clone returns an independent copy of the set so callers cannot mutate
// a geometry's boundaries through a handed-out set.
func (s BoundarySet) clone() BoundarySet {
	out := make(BoundarySet, len(s))
	for b := range s {
		out[b] = struct{}{}
	}
	return out
}

// Geometry is the capability every domain geometry variant satisfies.
// Variants implement it independently; no shared base state exists.
type Geometry interface {
	// Boundaries returns the set of boundary names for the variant.
	Boundaries() BoundarySet
}
