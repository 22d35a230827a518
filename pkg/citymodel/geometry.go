package citymodel

import "github.com/citygml-go/ingest/pkg/appearance"

// SurfaceType is the semantic surface type a Geometry carries, drawn from
// spec.md §3's fixed enumeration.
type SurfaceType int

const (
	Unknown SurfaceType = iota
	Roof
	Wall
	Ground
	Closure
	Floor
	InteriorWall
	Ceiling
)

// String renders the surface type for diagnostics/debugging.
func (t SurfaceType) String() string {
	switch t {
	case Roof:
		return "Roof"
	case Wall:
		return "Wall"
	case Ground:
		return "Ground"
	case Closure:
		return "Closure"
	case Floor:
		return "Floor"
	case InteriorWall:
		return "InteriorWall"
	case Ceiling:
		return "Ceiling"
	default:
		return "Unknown"
	}
}

// Geometry is a named, LOD-tagged collection of finalized polygons
// sharing a semantic surface type. It owns its polygons; polygons hold a
// non-owning back-reference to their geometry for appearance-id lookup.
type Geometry struct {
	ID   ObjectID
	LOD  int
	Type SurfaceType

	Polygons []*Polygon

	// Appearance is resolved (if the geometry's own id was targeted by an
	// appearance block) during CityModel.Finish, and used as a fallback
	// when a polygon has no appearance of its own (spec.md §4.2).
	Appearance appearance.Appearance

	cityObject *CityObject
}

// NewGeometry creates an empty geometry with the given id/lod/type.
func NewGeometry(id ObjectID, lod int, typ SurfaceType) *Geometry {
	return &Geometry{ID: id, LOD: lod, Type: typ}
}

// AddPolygon appends a finalized (or about-to-be-finalized) polygon and
// wires its back-reference.
func (g *Geometry) AddPolygon(p *Polygon) {
	p.geometry = g
	g.Polygons = append(g.Polygons, p)
}

// canMergeWith reports whether g and other share LOD and semantic type,
// the only condition under which two geometries may merge (spec.md §4.2).
func (g *Geometry) canMergeWith(other *Geometry) bool {
	return g.LOD == other.LOD && g.Type == other.Type
}

// merge moves all polygons from other into g, joining ids with "+".
// other is left with no polygons; the caller drops it from its owning
// CityObject.
func (g *Geometry) merge(other *Geometry) {
	for _, p := range other.Polygons {
		p.geometry = g
		g.Polygons = append(g.Polygons, p)
	}
	g.ID = ObjectID(string(g.ID) + "+" + string(other.ID))
	other.Polygons = nil
}
