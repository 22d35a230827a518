package citymodel

import "github.com/citygml-go/ingest/pkg/vecmath"

// duplicateThresholdSq is the squared-distance threshold below which two
// consecutive ring vertices are considered duplicates (spec.md §3: within
// 1e-4; §4.2: |vi - v(i+1 mod n)|² < 1e-8 — the same bound, since
// (1e-4)² = 1e-8).
const duplicateThresholdSq = 1e-8

// LinearRing is an ordered, implicitly-closed sequence of 3-D vertices.
// Exactly one exterior ring and zero or more interior (hole) rings make
// up a Polygon before finalization; rings are consumed and released when
// the polygon finalizes.
type LinearRing struct {
	Vertices []vecmath.Vec3
	Exterior bool
}

// NewLinearRing creates an empty ring with the given exterior/interior
// flag.
func NewLinearRing(exterior bool) *LinearRing {
	return &LinearRing{Exterior: exterior}
}

// AddVertex appends a parsed point to the ring.
func (r *LinearRing) AddVertex(v vecmath.Vec3) {
	r.Vertices = append(r.Vertices, v)
}

// Finalize removes consecutive duplicate vertices (treating the ring as
// closed, so the last vertex is compared against the first) until no
// more can be removed. Applying it twice is idempotent: once stable, a
// second pass finds nothing left to remove.
func (r *LinearRing) Finalize() {
	for {
		n := len(r.Vertices)
		if n < 2 {
			return
		}
		removed := -1
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if r.Vertices[i].SquaredDistance(r.Vertices[j]) < duplicateThresholdSq {
				removed = j
				break
			}
		}
		if removed == -1 {
			return
		}
		r.Vertices = append(r.Vertices[:removed], r.Vertices[removed+1:]...)
	}
}

// Degenerate reports whether the ring has fewer than 3 vertices, which
// after Finalize means the polygon it belongs to must fall back to the
// pass-through (non-triangulated) path.
func (r *LinearRing) Degenerate() bool {
	return len(r.Vertices) < 3
}

// Newell computes the ring's plane normal via Newell's method, returning
// the zero vector for rings shorter than 3 vertices.
func (r *LinearRing) Newell() vecmath.Vec3 {
	if len(r.Vertices) < 3 {
		return vecmath.Vec3{}
	}
	var n vecmath.Vec3
	verts := r.Vertices
	count := len(verts)
	for i := 0; i < count; i++ {
		a := verts[i]
		b := verts[(i+1)%count]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Normalized()
}
