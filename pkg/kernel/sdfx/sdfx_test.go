package sdfx

import (
	"math"
	"testing"

	"github.com/turboflow/geom/pkg/geometry"
)

// tol absorbs floating point noise in SDF bounding box computation.
const tol = 1e-9

func buildDomain(t *testing.T) *geometry.Cartesian {
	t.Helper()
	d, err := geometry.NewCartesian(0.0, 1.0, -1.0, 1.0, 4.0, 5.5)
	if err != nil {
		t.Fatalf("NewCartesian: %v", err)
	}
	return d
}

func TestDomainBoundingBoxRoundTrips(t *testing.T) {
	d := buildDomain(t)
	solid := New().Domain(d)

	min, max := solid.BoundingBox()

	wantMin := [3]float64{d.XMin(), d.YMin(), d.ZMin()}
	wantMax := [3]float64{d.XMax(), d.YMax(), d.ZMax()}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > tol {
			t.Errorf("min[%d] = %g, want %g", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > tol {
			t.Errorf("max[%d] = %g, want %g", i, max[i], wantMax[i])
		}
	}
}

func TestDomainContains(t *testing.T) {
	d := buildDomain(t)
	solid := New().Domain(d)

	tests := []struct {
		name string
		p    [3]float64
		want bool
	}{
		{"center", [3]float64{0.5, 0.0, 4.75}, true},
		{"near min corner", [3]float64{0.01, -0.99, 4.01}, true},
		{"near max corner", [3]float64{0.99, 0.99, 5.49}, true},
		{"outside x", [3]float64{2.0, 0.0, 4.75}, false},
		{"outside y", [3]float64{0.5, -3.0, 4.75}, false},
		{"outside z", [3]float64{0.5, 0.0, 10.0}, false},
	}
	for _, tc := range tests {
		if got := solid.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestDomainAgreesWithGeometryContains(t *testing.T) {
	d := buildDomain(t)
	solid := New().Domain(d)

	// Sample a small grid of strictly-inside and clearly-outside points;
	// the solid and the geometry must agree on all of them.
	for _, x := range []float64{-0.5, 0.25, 0.75, 1.5} {
		for _, y := range []float64{-1.5, -0.5, 0.5, 1.5} {
			for _, z := range []float64{3.5, 4.5, 5.25, 6.0} {
				want := d.Contains(x, y, z)
				if got := solid.Contains([3]float64{x, y, z}); got != want {
					t.Errorf("Contains(%g, %g, %g): solid = %v, geometry = %v",
						x, y, z, got, want)
				}
			}
		}
	}
}
