package geometry

import (
	"fmt"
	"math"
)

// Compile-time interface check.
var _ Geometry = (*Cartesian)(nil)

// cartesianBoundaries is the fixed boundary set for the Cartesian variant.
var cartesianBoundaries = [...]Boundary{
	"x_min", "x_max",
	"y_min", "y_max",
	"z_min", "z_max",
}

// Cartesian is an axis-aligned rectangular domain described by six
// extents. All fields are validated at construction and never change
// afterwards; every method is a pure getter.
type Cartesian struct {
	xMin, xMax float64
	yMin, yMax float64
	zMin, zMax float64
	boundaries BoundarySet
}

// NewCartesian constructs a Cartesian domain from six extents.
// Each minimum must be strictly less than its maximum, and every extent
// must be finite. On violation the returned error is an
// *InvalidExtentsError listing all offending axes and no domain is
// produced. Extents that pass validation are stored verbatim; nothing is
// normalized or clamped.
func NewCartesian(xMin, xMax, yMin, yMax, zMin, zMax float64) (*Cartesian, error) {
	var violations []ExtentViolation
	check := func(axis Axis, min, max float64) {
		// NaN and Inf make the ordering invariant undecidable, so they
		// are rejected alongside out-of-order extents.
		if !isFinite(min) || !isFinite(max) || min >= max {
			violations = append(violations, ExtentViolation{Axis: axis, Min: min, Max: max})
		}
	}
	check(AxisX, xMin, xMax)
	check(AxisY, yMin, yMax)
	check(AxisZ, zMin, zMax)
	if len(violations) > 0 {
		return nil, &InvalidExtentsError{Violations: violations}
	}

	c := &Cartesian{
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
		zMin: zMin, zMax: zMax,
		boundaries: make(BoundarySet, len(cartesianBoundaries)),
	}
	for _, b := range cartesianBoundaries {
		c.boundaries[b] = struct{}{}
	}
	return c, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// XMin returns the minimum x extent of the domain.
func (c *Cartesian) XMin() float64 { return c.xMin }

// XMax returns the maximum x extent of the domain.
func (c *Cartesian) XMax() float64 { return c.xMax }

// YMin returns the minimum y extent of the domain.
func (c *Cartesian) YMin() float64 { return c.yMin }

// YMax returns the maximum y extent of the domain.
func (c *Cartesian) YMax() float64 { return c.yMax }

// ZMin returns the minimum z extent of the domain.
func (c *Cartesian) ZMin() float64 { return c.zMin }

// ZMax returns the maximum z extent of the domain.
func (c *Cartesian) ZMax() float64 { return c.zMax }

// LX returns the domain length along x. Always strictly positive.
func (c *Cartesian) LX() float64 { return c.xMax - c.xMin }

// LY returns the domain length along y. Always strictly positive.
func (c *Cartesian) LY() float64 { return c.yMax - c.yMin }

// LZ returns the domain length along z. Always strictly positive.
func (c *Cartesian) LZ() float64 { return c.zMax - c.zMin }

// Boundaries returns the fixed boundary set
// {x_min, x_max, y_min, y_max, z_min, z_max}. The returned set is a
// copy; mutating it does not affect the domain.
func (c *Cartesian) Boundaries() BoundarySet {
	return c.boundaries.clone()
}

// Center returns the geometric center of the domain.
func (c *Cartesian) Center() (x, y, z float64) {
	return c.xMin + c.LX()/2, c.yMin + c.LY()/2, c.zMin + c.LZ()/2
}

// Volume returns the domain volume LX*LY*LZ.
func (c *Cartesian) Volume() float64 {
	return c.LX() * c.LY() * c.LZ()
}

// Contains reports whether the point (x, y, z) lies inside the domain.
// Points on a boundary face count as inside.
func (c *Cartesian) Contains(x, y, z float64) bool {
	return x >= c.xMin && x <= c.xMax &&
		y >= c.yMin && y <= c.yMax &&
		z >= c.zMin && z <= c.zMax
}

// String returns a compact diagnostic description of the domain.
func (c *Cartesian) String() string {
	return fmt.Sprintf("cartesian [%g, %g] x [%g, %g] x [%g, %g]",
		c.xMin, c.xMax, c.yMin, c.yMax, c.zMin, c.zMax)
}
