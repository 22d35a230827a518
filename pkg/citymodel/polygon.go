package citymodel

import (
	"github.com/citygml-go/ingest/pkg/appearance"
	"github.com/citygml-go/ingest/pkg/tessellate"
	"github.com/citygml-go/ingest/pkg/vecmath"
)

// Polygon is a planar face bounded by one exterior ring and zero or more
// interior (hole) rings. Before Finalize it owns its rings; after
// Finalize it owns a vertex/normal/index/texture-coordinate mesh and the
// rings are released (spec.md §3).
type Polygon struct {
	ID ObjectID

	// Pre-finalize state.
	exterior *LinearRing
	interior []*LinearRing

	// NegateNormal mirrors the enclosing OrientableSurface/TexturedSurface
	// orientation attribute ('-' sets this true).
	NegateNormal bool

	// Post-finalize mesh.
	Vertices  []vecmath.Vec3
	Normals   []vecmath.Vec3f32
	Indices   []uint32
	TexCoords []vecmath.Vec2f32

	// Appearance is a borrowed pointer into the model's appearance arena;
	// its lifetime equals the model's (spec.md §3).
	Appearance appearance.Appearance

	// geometry is a non-owning back-reference used only for appearance-id
	// fallback lookups during CityModel.Finish.
	geometry *Geometry

	finalized bool
}

// NewPolygon creates an unfinalized polygon with the given identity.
func NewPolygon(id ObjectID) *Polygon {
	return &Polygon{ID: id}
}

// SetExterior assigns the polygon's single exterior ring. Per spec.md
// §3, exactly one is expected; a later call replaces the earlier one
// rather than erroring, since a malformed document is handled by
// degrading, not failing the whole parse (spec.md §7).
func (p *Polygon) SetExterior(r *LinearRing) {
	p.exterior = r
}

// AddInterior appends an interior (hole) ring.
func (p *Polygon) AddInterior(r *LinearRing) {
	p.interior = append(p.interior, r)
}

// HasExterior reports whether an exterior ring was ever set.
func (p *Polygon) HasExterior() bool {
	return p.exterior != nil
}

// Finalize computes the plane normal, triangulates (or falls back to a
// trivial fan, per spec.md §4.1/§4.2), and releases the rings. tess may
// be nil only when triangulate is false.
func (p *Polygon) Finalize(tess *tessellate.Tessellator, triangulate bool) {
	if p.finalized {
		return
	}
	p.finalized = true

	if p.exterior != nil {
		p.exterior.Finalize()
	}
	for _, r := range p.interior {
		r.Finalize()
	}

	useFallback := !triangulate || p.exterior == nil || p.exterior.Degenerate()

	normal := vecmath.Vec3{}
	if p.exterior != nil {
		normal = p.exterior.Newell()
	}
	if p.NegateNormal {
		normal = normal.Negate()
	}

	if useFallback {
		p.finalizePassThrough(normal)
		return
	}

	interiorVerts := make([][]vecmath.Vec3, 0, len(p.interior))
	for _, r := range p.interior {
		interiorVerts = append(interiorVerts, r.Vertices)
	}

	result := tess.Tessellate(p.exterior.Vertices, interiorVerts, normal)
	p.Vertices = result.Vertices
	p.Indices = result.Indices
	p.fillNormals(normal)

	p.exterior = nil
	p.interior = nil
}

// finalizePassThrough implements spec.md §4.1's fallback: concatenate
// ring vertices and build a trivial fan.
func (p *Polygon) finalizePassThrough(normal vecmath.Vec3) {
	var verts []vecmath.Vec3
	if p.exterior != nil {
		verts = append(verts, p.exterior.Vertices...)
	}
	for _, r := range p.interior {
		verts = append(verts, r.Vertices...)
	}
	p.Vertices = verts
	p.fillNormals(normal)

	n := len(verts)
	if n < 3 {
		p.Indices = nil
		p.exterior = nil
		p.interior = nil
		return
	}
	indices := make([]uint32, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint32(i), uint32(i+1))
	}
	p.Indices = indices
	p.exterior = nil
	p.interior = nil
}

func (p *Polygon) fillNormals(normal vecmath.Vec3) {
	nf := normal.AsFloat32()
	normals := make([]vecmath.Vec3f32, len(p.Vertices))
	for i := range normals {
		normals[i] = nf
	}
	p.Normals = normals
}

// SetTexCoords resizes coords to match the polygon's current vertex
// count, padding with zero or truncating as needed (spec.md §4.2), and
// stores the result.
func (p *Polygon) SetTexCoords(coords []vecmath.Vec2f32) {
	n := len(p.Vertices)
	out := make([]vecmath.Vec2f32, n)
	copy(out, coords)
	p.TexCoords = out
}

// merge appends other's vertices, normals, texture coordinates, and
// indices onto p, biasing the appended indices by p's pre-merge vertex
// count. other is left empty; the caller is responsible for dropping it
// from its owning Geometry.
func (p *Polygon) merge(other *Polygon) {
	base := uint32(len(p.Vertices))

	p.Vertices = append(p.Vertices, other.Vertices...)
	p.Normals = append(p.Normals, other.Normals...)

	if p.TexCoords != nil || other.TexCoords != nil {
		pTex := p.TexCoords
		if pTex == nil {
			pTex = make([]vecmath.Vec2f32, len(p.Vertices)-len(other.Vertices))
		}
		oTex := other.TexCoords
		if oTex == nil {
			oTex = make([]vecmath.Vec2f32, len(other.Vertices))
		}
		p.TexCoords = append(pTex, oTex...)
	}

	for _, idx := range other.Indices {
		p.Indices = append(p.Indices, idx+base)
	}

	p.ID = ObjectID(string(p.ID) + "+" + string(other.ID))

	other.Vertices = nil
	other.Normals = nil
	other.TexCoords = nil
	other.Indices = nil
}

// canMergeWith reports whether p and other share an appearance reference
// (both nil counts as a match) — the only condition spec.md §4.2 allows
// a polygon merge under. A mismatched non-nil pair is rejected, per
// spec.md §9's resolution of the ambiguous source behavior.
func (p *Polygon) canMergeWith(other *Polygon) bool {
	return p.Appearance == other.Appearance
}
