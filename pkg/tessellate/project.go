package tessellate

import "github.com/citygml-go/ingest/pkg/vecmath"

// basis is an orthonormal frame (u, v) spanning the plane perpendicular to
// a polygon's normal, used to flatten 3-D contour points to 2-D before
// ear clipping.
type basis struct {
	origin vecmath.Vec3
	u, v   vecmath.Vec3
}

// newBasis builds a projection basis from a hint normal and an origin
// point on the plane. The normal need not be unit length.
func newBasis(origin, normal vecmath.Vec3) basis {
	n := normal.Normalized()
	if n.SquaredLength() < 1e-18 {
		// Degenerate normal (collinear or single-point contour): fall back
		// to an arbitrary frame so projection still produces 2-D points.
		n = vecmath.Vec3{X: 0, Y: 0, Z: 1}
	}

	// Pick whichever world axis is least parallel to n to seed u, avoiding
	// a near-zero cross product.
	seed := vecmath.Vec3{X: 1, Y: 0, Z: 0}
	if abs(n.X) > 0.9 {
		seed = vecmath.Vec3{X: 0, Y: 1, Z: 0}
	}
	u := n.Cross(seed).Normalized()
	v := n.Cross(u)

	return basis{origin: origin, u: u, v: v}
}

func (b basis) project(p vecmath.Vec3) point2 {
	d := p.Sub(b.origin)
	return point2{x: d.Dot(b.u), y: d.Dot(b.v)}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// point2 is a 2-D point used internally during planar triangulation.
type point2 struct {
	x, y float64
}
