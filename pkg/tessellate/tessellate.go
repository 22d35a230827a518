package tessellate

import "github.com/citygml-go/ingest/pkg/vecmath"

// DiagnosticSink receives a warning when a polygon cannot be tessellated.
// Defined locally (rather than importing pkg/diagnostics) to avoid a
// dependency edge the tessellation algorithm doesn't otherwise need —
// diagnostics.Sink satisfies this interface structurally, the same way
// dungeon.Validator is declared next to DefaultGenerator to avoid an
// import cycle with the validation package.
type DiagnosticSink interface {
	Warnf(format string, args ...any)
}

// Tessellator triangulates polygon outlines using the odd (even-odd)
// winding fill rule. Per spec.md §5 it is meant to be instantiated once
// per parse and reused across that parse's polygons, never as a
// package-level singleton — construct one in the SAX handler at
// document-start and let it go out of scope at document-end.
type Tessellator struct {
	sink DiagnosticSink
}

// New creates a Tessellator that reports unsupported/degenerate input to
// sink. A nil sink silently discards diagnostics.
func New(sink DiagnosticSink) *Tessellator {
	return &Tessellator{sink: sink}
}

// Result is the triangulated output: a vertex list (the union of the
// input contours, in the order consumed) and a flat triangle-index list.
type Result struct {
	Vertices []vecmath.Vec3
	Indices  []uint32
}

// Tessellate triangulates an exterior contour with zero or more interior
// holes, treating the hole contours as the odd-winding fill rule does:
// a point's inside/outside parity flips each time it crosses a contour.
// hint is used to determine the best-fit projection plane.
//
// Contours with fewer than 3 vertices are silently skipped (spec.md
// §4.1). If the exterior itself is degenerate after skipping, the result
// has no indices (the polygon is treated as empty) and a diagnostic is
// emitted.
func (t *Tessellator) Tessellate(exterior []vecmath.Vec3, interiors [][]vecmath.Vec3, hint vecmath.Vec3) Result {
	if len(exterior) < 3 {
		t.warnf("tessellate: exterior ring has %d vertices, need >= 3", len(exterior))
		return Result{}
	}

	b := newBasis(exterior[0], hint)

	vertices := make([]vecmath.Vec3, 0, len(exterior))
	outer := make([]vertexRef, 0, len(exterior))
	for _, p := range exterior {
		outer = append(outer, vertexRef{idx: len(vertices), p2: b.project(p)})
		vertices = append(vertices, p)
	}

	holes := make([][]vertexRef, 0, len(interiors))
	for _, ring := range interiors {
		if len(ring) < 3 {
			continue
		}
		hole := make([]vertexRef, 0, len(ring))
		for _, p := range ring {
			hole = append(hole, vertexRef{idx: len(vertices), p2: b.project(p)})
			vertices = append(vertices, p)
		}
		holes = append(holes, hole)
	}

	merged := mergeHoles(outer, holes)
	tris, ok := earClip(merged)
	if !ok {
		t.warnf("tessellate: unable to triangulate polygon (%d exterior, %d holes)", len(exterior), len(holes))
		return Result{}
	}

	indices := make([]uint32, len(tris))
	for i, idx := range tris {
		indices[i] = uint32(idx)
	}

	return Result{Vertices: vertices, Indices: indices}
}

func (t *Tessellator) warnf(format string, args ...any) {
	if t.sink != nil {
		t.sink.Warnf(format, args...)
	}
}
