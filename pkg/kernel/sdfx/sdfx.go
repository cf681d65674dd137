// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/turboflow/geom/pkg/geometry"
	"github.com/turboflow/geom/pkg/kernel"
)

// Compile-time interface checks.
var (
	_ kernel.Kernel = (*SdfxKernel)(nil)
	_ kernel.Solid  = (*sdfxSolid)(nil)
)

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Contains reports whether p lies inside the solid, judged by the sign
// of the signed distance. Zero distance (on the surface) counts as inside.
func (s *sdfxSolid) Contains(p [3]float64) bool {
	return s.s.Evaluate(v3.Vec{X: p[0], Y: p[1], Z: p[2]}) <= 0
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// Domain returns a box solid occupying the full domain volume.
// sdf.Box3D centers the box at the origin, so we translate it to the
// domain center; the solid's bounding box then round-trips the extents.
func (k *SdfxKernel) Domain(g *geometry.Cartesian) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: g.LX(), Y: g.LY(), Z: g.LZ()}, 0)
	if err != nil {
		// Box3D fails only on non-positive dimensions, which the
		// geometry constructor already rules out.
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	cx, cy, cz := g.Center()
	m := sdf.Translate3d(v3.Vec{X: cx, Y: cy, Z: cz})
	return &sdfxSolid{s: sdf.Transform3D(s, m)}
}
