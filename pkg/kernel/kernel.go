// Package kernel defines the abstract geometry kernel interface.
// Implementations provide a solid-model view of a simulation domain
// behind this interface, so consuming frameworks can swap backends
// without changing the rest of the system.
package kernel

import "github.com/turboflow/geom/pkg/geometry"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)

	// Contains reports whether the point lies inside the solid.
	// Points on the surface count as inside.
	Contains(p [3]float64) bool
}

// Kernel builds solids from domain geometries.
type Kernel interface {
	// Domain returns a solid occupying the full domain volume.
	Domain(g *geometry.Cartesian) Solid
}
