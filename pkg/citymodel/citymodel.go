package citymodel

import "github.com/citygml-go/ingest/pkg/appearance"

// CityModel is the root container spec.md §3 describes: an envelope, a
// class → ordered list of city objects of that class, the flat list of
// root city objects (no parent), and the appearance resolver. It owns
// everything transitively; destroying it releases everything (Go's GC
// does this automatically once nothing references the model).
type CityModel struct {
	Envelope *Envelope
	ByClass  map[CityObjectClass][]*CityObject
	Roots    []*CityObject

	resolver *appearance.Resolver
}

// New creates an empty CityModel with a fresh resolver.
func New() *CityModel {
	return &CityModel{
		ByClass:  make(map[CityObjectClass][]*CityObject),
		resolver: appearance.NewResolver(),
	}
}

// Resolver exposes the appearance resolver so the SAX handler can feed it
// appearance/target/textureCoordinates events during parsing.
func (m *CityModel) Resolver() *appearance.Resolver {
	return m.resolver
}

// Appearances returns every appearance owned by the model, in parse
// order (spec.md §8 invariant #4: every polygon's non-nil appearance
// pointer points into this slice).
func (m *CityModel) Appearances() []appearance.Appearance {
	return m.resolver.Appearances()
}

// Insert registers a finished city object into the model: indexed by
// class, and as a root if it has no parent.
func (m *CityModel) Insert(obj *CityObject) {
	m.ByClass[obj.Class] = append(m.ByClass[obj.Class], obj)
	if obj.IsRoot() {
		m.Roots = append(m.Roots, obj)
	}
}

// AllObjects returns every city object in the model, depth-first,
// regardless of class.
func (m *CityModel) AllObjects() []*CityObject {
	var out []*CityObject
	var walk func(*CityObject)
	walk = func(o *CityObject) {
		out = append(out, o)
		for _, c := range o.Children {
			walk(c)
		}
	}
	for _, r := range m.Roots {
		walk(r)
	}
	return out
}

// Stats is a read-only summary of a loaded model, supplementing the
// distilled spec with the counters the original implementation's test
// drivers print after a load (original_source/test/citygmltest.cpp,
// citygml2vrml.cpp) — see SPEC_FULL.md §5.1.
type Stats struct {
	NumCityObjects int
	NumGeometries  int
	NumPolygons    int
	NumTriangles   int
	NumAppearances int
}

// ComputeStats walks the model and tallies Stats.
func (m *CityModel) ComputeStats() Stats {
	var s Stats
	s.NumAppearances = len(m.Appearances())
	for _, obj := range m.AllObjects() {
		s.NumCityObjects++
		for _, g := range obj.Geometries {
			s.NumGeometries++
			for _, p := range g.Polygons {
				s.NumPolygons++
				s.NumTriangles += len(p.Indices) / 3
			}
		}
	}
	return s
}
