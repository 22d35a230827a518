package citymodel

import (
	"testing"

	"github.com/citygml-go/ingest/pkg/appearance"
	"github.com/citygml-go/ingest/pkg/tessellate"
	"github.com/citygml-go/ingest/pkg/vecmath"
)

func buildSimplePolygon(id ObjectID) *Polygon {
	p := NewPolygon(id)
	p.SetExterior(quadRing(true))
	p.Finalize(tessellate.New(nil), true)
	return p
}

func TestBindPolygonAppearanceFallbackChain(t *testing.T) {
	m := New()
	mat := appearance.NewMaterial("geom-mat")
	m.Resolver().Add(mat)
	m.Resolver().AssignTarget("geom-1") // geometry-level fallback

	obj := NewCityObject("obj-1", Building)
	g := NewGeometry("geom-1", 2, Roof)
	p := buildSimplePolygon("poly-1")
	g.AddPolygon(p)
	obj.AddGeometry(g)
	m.Insert(obj)

	m.Finish(false)

	if p.Appearance != appearance.Appearance(mat) {
		t.Fatalf("polygon should have fallen back to geometry appearance, got %v", p.Appearance)
	}
}

func TestBindPolygonDirectAppearanceWins(t *testing.T) {
	m := New()
	geomMat := appearance.NewMaterial("geom-mat")
	polyMat := appearance.NewMaterial("poly-mat")
	m.Resolver().Add(geomMat)
	m.Resolver().AssignTarget("geom-1")
	m.Resolver().ClearCurrent()
	m.Resolver().Add(polyMat)
	m.Resolver().AssignTarget("poly-1")

	obj := NewCityObject("obj-1", Building)
	g := NewGeometry("geom-1", 2, Roof)
	p := buildSimplePolygon("poly-1")
	g.AddPolygon(p)
	obj.AddGeometry(g)
	m.Insert(obj)

	m.Finish(false)

	if p.Appearance != appearance.Appearance(polyMat) {
		t.Fatalf("direct polygon-id appearance should win over geometry fallback")
	}
}

func TestBindPolygonTexCoordsGeometryFallback(t *testing.T) {
	m := New()
	coords := []vecmath.Vec2f32{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	m.Resolver().AssignTexCoords(coords)
	m.Resolver().AssignTarget("geom-1")

	obj := NewCityObject("obj-1", Building)
	g := NewGeometry("geom-1", 2, Roof)
	p := buildSimplePolygon("poly-1")
	g.AddPolygon(p)
	obj.AddGeometry(g)
	m.Insert(obj)

	m.Finish(false)

	if len(p.TexCoords) != len(p.Vertices) {
		t.Fatalf("texcoords len=%d, want %d (resized to vertex count)", len(p.TexCoords), len(p.Vertices))
	}
}

func TestOptimizeMergesPolygonsWithSameAppearance(t *testing.T) {
	obj := NewCityObject("obj-1", Building)
	g := NewGeometry("geom-1", 2, Wall)

	a := buildSimplePolygon("a")
	b := buildSimplePolygon("b")
	g.AddPolygon(a)
	g.AddPolygon(b)
	obj.AddGeometry(g)

	optimizeCityObject(obj)

	if len(g.Polygons) != 1 {
		t.Fatalf("expected polygons to merge into 1, got %d", len(g.Polygons))
	}
}

func TestOptimizeRejectsMergeOnMismatchedAppearance(t *testing.T) {
	obj := NewCityObject("obj-1", Building)
	g := NewGeometry("geom-1", 2, Wall)

	a := buildSimplePolygon("a")
	b := buildSimplePolygon("b")
	a.Appearance = appearance.NewMaterial("mat-a")
	b.Appearance = appearance.NewMaterial("mat-b")
	g.AddPolygon(a)
	g.AddPolygon(b)
	obj.AddGeometry(g)

	optimizeCityObject(obj)

	if len(g.Polygons) != 2 {
		t.Fatalf("polygons with different non-nil appearances must not merge, got %d polygons", len(g.Polygons))
	}
}

func TestOptimizeMergesGeometriesSameLODAndType(t *testing.T) {
	obj := NewCityObject("obj-1", Building)
	g1 := NewGeometry("g1", 2, Wall)
	g1.AddPolygon(buildSimplePolygon("p1"))
	g2 := NewGeometry("g2", 2, Wall)
	g2.AddPolygon(buildSimplePolygon("p2"))
	g3 := NewGeometry("g3", 3, Wall) // different LOD: must not merge
	g3.AddPolygon(buildSimplePolygon("p3"))

	obj.AddGeometry(g1)
	obj.AddGeometry(g2)
	obj.AddGeometry(g3)

	optimizeCityObject(obj)

	if len(obj.Geometries) != 2 {
		t.Fatalf("expected 2 geometries after merge (g1+g2, g3), got %d", len(obj.Geometries))
	}
}

func TestAppearanceResolutionOrderIndependence(t *testing.T) {
	buildForward := func() *CityModel {
		m := New()
		mat := appearance.NewMaterial("mat")
		m.Resolver().Add(mat)
		m.Resolver().AssignTarget("geom-1")

		obj := NewCityObject("obj-1", Building)
		g := NewGeometry("geom-1", 2, Roof)
		g.AddPolygon(buildSimplePolygon("poly-1"))
		obj.AddGeometry(g)
		m.Insert(obj)
		return m
	}

	// The geometry is built before the appearance block is parsed.
	buildBackward := func() *CityModel {
		m := New()
		obj := NewCityObject("obj-1", Building)
		g := NewGeometry("geom-1", 2, Roof)
		g.AddPolygon(buildSimplePolygon("poly-1"))
		obj.AddGeometry(g)
		m.Insert(obj)

		mat := appearance.NewMaterial("mat")
		m.Resolver().Add(mat)
		m.Resolver().AssignTarget("geom-1")
		return m
	}

	forward := buildForward()
	forward.Finish(false)

	backward := buildBackward()
	backward.Finish(false)

	fp := forward.Roots[0].Geometries[0].Polygons[0]
	bp := backward.Roots[0].Geometries[0].Polygons[0]
	if fp.Appearance == nil || bp.Appearance == nil {
		t.Fatalf("expected both to resolve an appearance")
	}
}
