package tessellate

import (
	"testing"

	"github.com/citygml-go/ingest/pkg/vecmath"
)

type collectingSink struct {
	warnings []string
}

func (s *collectingSink) Warnf(format string, args ...any) {
	s.warnings = append(s.warnings, format)
}

func TestTessellateSimpleQuad(t *testing.T) {
	exterior := []vecmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}

	tess := New(nil)
	res := tess.Tessellate(exterior, nil, vecmath.Vec3{X: 0, Y: 0, Z: 1})

	if len(res.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(res.Vertices))
	}
	if len(res.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(res.Indices))
	}
	if got := len(res.Indices) / 3; got != 2 {
		t.Fatalf("got %d triangles, want 2", got)
	}
	for _, idx := range res.Indices {
		if int(idx) >= len(res.Vertices) {
			t.Fatalf("index %d out of range (have %d vertices)", idx, len(res.Vertices))
		}
	}
}

func TestTessellateHoledPolygon(t *testing.T) {
	exterior := []vecmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 10, Y: 10, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}
	hole := []vecmath.Vec3{
		{X: 3, Y: 3, Z: 0},
		{X: 7, Y: 3, Z: 0},
		{X: 7, Y: 7, Z: 0},
		{X: 3, Y: 7, Z: 0},
	}

	tess := New(nil)
	res := tess.Tessellate(exterior, [][]vecmath.Vec3{hole}, vecmath.Vec3{X: 0, Y: 0, Z: 1})

	numTris := len(res.Indices) / 3
	if numTris < 8 {
		t.Fatalf("got %d triangles, want >= 8", numTris)
	}

	for i := 0; i < numTris; i++ {
		a := res.Vertices[res.Indices[i*3]]
		b := res.Vertices[res.Indices[i*3+1]]
		c := res.Vertices[res.Indices[i*3+2]]
		cx, cy := (a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3
		if cx >= 0 && cx <= 10 && cy >= 0 && cy <= 10 {
			// inside the outer frame, good
		} else {
			t.Fatalf("triangle centroid (%v, %v) outside outer frame", cx, cy)
		}
		if cx > 3 && cx < 7 && cy > 3 && cy < 7 {
			t.Fatalf("triangle centroid (%v, %v) falls inside the hole", cx, cy)
		}
	}
}

func TestTessellateSkipsShortContours(t *testing.T) {
	exterior := []vecmath.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	sink := &collectingSink{}
	tess := New(sink)
	res := tess.Tessellate(exterior, nil, vecmath.Vec3{X: 0, Y: 0, Z: 1})

	if len(res.Indices) != 0 {
		t.Fatalf("expected no indices for degenerate exterior, got %d", len(res.Indices))
	}
	if len(sink.warnings) == 0 {
		t.Fatalf("expected a diagnostic warning for degenerate exterior")
	}
}

func TestTessellateSkipsShortHole(t *testing.T) {
	exterior := []vecmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 10, Y: 10, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}
	shortHole := []vecmath.Vec3{{X: 1, Y: 1, Z: 0}, {X: 2, Y: 2, Z: 0}}

	tess := New(nil)
	res := tess.Tessellate(exterior, [][]vecmath.Vec3{shortHole}, vecmath.Vec3{X: 0, Y: 0, Z: 1})
	if len(res.Indices)/3 != 2 {
		t.Fatalf("short hole should be skipped, leaving a plain quad; got %d triangles", len(res.Indices)/3)
	}
}
