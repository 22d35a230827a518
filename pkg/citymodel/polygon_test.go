package citymodel

import (
	"testing"

	"github.com/citygml-go/ingest/pkg/tessellate"
	"github.com/citygml-go/ingest/pkg/vecmath"
)

func quadRing(exterior bool) *LinearRing {
	r := NewLinearRing(exterior)
	for _, v := range []vecmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	} {
		r.AddVertex(v)
	}
	return r
}

func TestPolygonFinalizeMinimalSquare(t *testing.T) {
	p := NewPolygon("poly-1")
	p.SetExterior(quadRing(true))

	tess := tessellate.New(nil)
	p.Finalize(tess, true)

	if len(p.Vertices) != len(p.Normals) {
		t.Fatalf("vertices=%d normals=%d, want equal", len(p.Vertices), len(p.Normals))
	}
	if len(p.Indices)%3 != 0 {
		t.Fatalf("indices len %d not a multiple of 3", len(p.Indices))
	}
	if len(p.Indices)/3 != 2 {
		t.Fatalf("got %d triangles, want 2", len(p.Indices)/3)
	}
	for _, idx := range p.Indices {
		if int(idx) >= len(p.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
	for _, n := range p.Normals {
		want := vecmath.Vec3{X: 0, Y: 0, Z: 1}.AsFloat32()
		if n != want {
			t.Fatalf("normal %+v, want %+v", n, want)
		}
	}
	if p.HasExterior() {
		t.Fatalf("rings should be released after finalize")
	}
}

func TestPolygonNormalNegation(t *testing.T) {
	plus := NewPolygon("plus")
	plus.SetExterior(quadRing(true))
	tess := tessellate.New(nil)
	plus.Finalize(tess, true)

	minus := NewPolygon("minus")
	minus.SetExterior(quadRing(true))
	minus.NegateNormal = true
	minus.Finalize(tess, true)

	if len(plus.Normals) == 0 || len(minus.Normals) == 0 {
		t.Fatalf("expected non-empty normals")
	}
	for i := range plus.Normals {
		pn, mn := plus.Normals[i], minus.Normals[i]
		if pn.X != -mn.X || pn.Y != -mn.Y || pn.Z != -mn.Z {
			t.Fatalf("normal %d not exact negation: %+v vs %+v", i, pn, mn)
		}
	}
}

func TestPolygonFallbackWhenTriangulateDisabled(t *testing.T) {
	p := NewPolygon("poly-passthrough")
	p.SetExterior(quadRing(true))
	p.Finalize(nil, false)

	if len(p.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4 (pass-through concatenation)", len(p.Vertices))
	}
	if len(p.Indices) != 6 {
		t.Fatalf("got %d indices, want 6 (trivial fan over 4 verts)", len(p.Indices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range p.Indices {
		if idx != want[i] {
			t.Fatalf("index[%d]=%d, want %d", i, idx, want[i])
		}
	}
}

func TestPolygonFallbackWhenNoExterior(t *testing.T) {
	p := NewPolygon("poly-no-ext")
	p.AddInterior(quadRing(false))
	p.Finalize(tessellate.New(nil), true)

	if len(p.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4 from interior-only concatenation", len(p.Vertices))
	}
}

func TestPolygonMerge(t *testing.T) {
	a := NewPolygon("a")
	a.SetExterior(quadRing(true))
	a.Finalize(tessellate.New(nil), true)

	b := NewPolygon("b")
	ring := NewLinearRing(true)
	for _, v := range []vecmath.Vec3{
		{X: 2, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
		{X: 3, Y: 1, Z: 0},
		{X: 2, Y: 1, Z: 0},
	} {
		ring.AddVertex(v)
	}
	b.SetExterior(ring)
	b.Finalize(tessellate.New(nil), true)

	aVertCount := len(a.Vertices)
	bIndices := append([]uint32{}, b.Indices...)

	if !a.canMergeWith(b) {
		t.Fatalf("polygons with no appearance should be mergeable")
	}
	a.merge(b)

	if len(a.Vertices) != aVertCount+4 {
		t.Fatalf("merged vertex count = %d, want %d", len(a.Vertices), aVertCount+4)
	}
	for i, idx := range bIndices {
		want := idx + uint32(aVertCount)
		got := a.Indices[len(a.Indices)-len(bIndices)+i]
		if got != want {
			t.Fatalf("merged index[%d] = %d, want %d", i, got, want)
		}
	}
	if a.ID != "a+b" {
		t.Fatalf("merged id = %q, want %q", a.ID, "a+b")
	}
	if len(b.Vertices) != 0 || len(b.Indices) != 0 {
		t.Fatalf("source polygon should be emptied after merge")
	}
}
