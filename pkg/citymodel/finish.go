package citymodel

// Finish runs spec.md §4.5's end-of-document pass: for every city object
// (depth-first), bind geometries and polygons to appearances and
// texture coordinates via the resolver, then optionally optimize by
// merging. Finally the resolver's scratch maps are cleared.
func (m *CityModel) Finish(optimize bool) {
	for _, root := range m.Roots {
		m.finishObject(root, optimize)
	}
	m.resolver.Clear()
}

func (m *CityModel) finishObject(obj *CityObject, optimize bool) {
	if a, ok := m.resolver.Appearance(string(obj.ID)); ok {
		obj.Appearance = a
	}

	for _, g := range obj.Geometries {
		m.bindGeometry(obj, g)
	}

	if optimize {
		optimizeCityObject(obj)
	}

	for _, child := range obj.Children {
		m.finishObject(child, optimize)
	}
}

// bindGeometry resolves the geometry's own appearance (if its id was
// targeted), then binds every polygon's texture coordinates and
// appearance per spec.md §4.2's fallback chain.
func (m *CityModel) bindGeometry(obj *CityObject, g *Geometry) {
	if a, ok := m.resolver.Appearance(string(g.ID)); ok {
		g.Appearance = a
	}

	for _, p := range g.Polygons {
		m.bindPolygon(obj, g, p)
	}
}

func (m *CityModel) bindPolygon(obj *CityObject, g *Geometry, p *Polygon) {
	pid, gid := string(p.ID), string(g.ID)

	if coords, ok := m.resolver.TexCoords(pid); ok {
		p.SetTexCoords(coords)
	} else if coords, ok := m.resolver.TexCoords(gid); ok {
		p.SetTexCoords(coords)
	}

	if a, ok := m.resolver.Appearance(pid); ok {
		p.Appearance = a
	} else if g.Appearance != nil {
		p.Appearance = g.Appearance
	} else if obj.Appearance != nil {
		p.Appearance = obj.Appearance
	}
}

// optimizeCityObject runs the two merge passes spec.md §4.2 describes:
// first merge polygons within each geometry, then merge geometries
// within the object (sharing LOD + semantic type).
func optimizeCityObject(obj *CityObject) {
	for _, g := range obj.Geometries {
		mergePolygonsInGeometry(g)
	}
	mergeGeometriesInObject(obj)
}

// mergePolygonsInGeometry repeatedly scans all pairs i<j, merging and
// restarting on success, until a full pass merges nothing. spec.md §9
// resolves the source's off-by-one ambiguity explicitly: iterate over
// all pairs i<j<len, never len-1/len-2.
func mergePolygonsInGeometry(g *Geometry) {
	for {
		merged := false
		polys := g.Polygons
		for i := 0; i < len(polys) && !merged; i++ {
			for j := i + 1; j < len(polys); j++ {
				if !polys[i].canMergeWith(polys[j]) {
					continue
				}
				polys[i].merge(polys[j])
				g.Polygons = append(polys[:j], polys[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			return
		}
	}
}

// mergeGeometriesInObject is mergePolygonsInGeometry's counterpart one
// level up: merge geometries sharing LOD + semantic type.
func mergeGeometriesInObject(obj *CityObject) {
	for {
		merged := false
		geoms := obj.Geometries
		for i := 0; i < len(geoms) && !merged; i++ {
			for j := i + 1; j < len(geoms); j++ {
				if !geoms[i].canMergeWith(geoms[j]) {
					continue
				}
				geoms[i].merge(geoms[j])
				obj.Geometries = append(geoms[:j], geoms[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			return
		}
	}
}

// FilterByLOD reports whether lod is within [minLOD, maxLOD], the gate
// spec.md §4.4 applies before creating any geometry/polygon/ring.
func FilterByLOD(lod, minLOD, maxLOD int) bool {
	return lod >= minLOD && lod <= maxLOD
}
