package citygml

import (
	"encoding/xml"
	"strings"

	"github.com/citygml-go/ingest/pkg/appearance"
	"github.com/citygml-go/ingest/pkg/citymodel"
	"github.com/citygml-go/ingest/pkg/diagnostics"
	"github.com/citygml-go/ingest/pkg/tessellate"
)

// handler is the single mutable state object the decoder loop in load.go
// drives with start/end/chars events, in document order (spec.md §4.4).
// It owns every stack the state machine needs: path, LOD, city object,
// geometry, boundary-surface type, polygon, ring, envelope, and
// appearance-assignment bookkeeping.
type handler struct {
	model *citymodel.CityModel
	opts  Options
	sink  diagnostics.Sink
	tess  *tessellate.Tessellator
	ids   *citymodel.IDGenerator

	path pathStack

	// City-object stack.
	objStack []*citymodel.CityObject
	current  *citymodel.CityObject
	filterDepth int // 0 means "not currently filtering"

	// LOD tracking.
	currentLOD int
	lodStack   []int

	// Geometry stack (one frame per lodN container).
	geomStack  []*citymodel.Geometry
	currentGeom *citymodel.Geometry

	// Boundary-surface semantic type, scoped to the enclosing
	// WallSurface/RoofSurface/... element.
	geomType      citymodel.SurfaceType
	geomTypeStack []citymodel.SurfaceType

	// Orientation, scoped to the enclosing OrientableSurface/TexturedSurface.
	negateNormal  bool
	negateStack   []bool

	// Polygon / ring in progress.
	polyStack   []*citymodel.Polygon
	currentPoly *citymodel.Polygon
	currentRing *citymodel.LinearRing
	ringExterior bool

	// Envelope in progress (model-level boundedBy or per-object boundedBy).
	envStack   []*citymodel.Envelope
	currentEnv *citymodel.Envelope

	// Appearance intake.
	curAppearanceAssigned bool
	targetURISet          bool
}

func newHandler(opts Options, sink diagnostics.Sink) *handler {
	return &handler{
		model:        citymodel.New(),
		opts:         opts,
		sink:         sink,
		tess:         tessellate.New(diagnostics.AsTessellatorSink(sink)),
		ids:          citymodel.NewIDGenerator(),
		currentLOD:   opts.MinLOD,
		ringExterior: true,
	}
}

func attrValue(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (h *handler) suppressed() bool {
	return h.filterDepth != 0
}

// onStart handles a StartElement token: push the path frame, then
// dispatch on the element's node kind.
func (h *handler) onStart(se xml.StartElement) {
	local := localName(se.Name.Local)
	h.path.push(local)
	depth := h.path.depth()

	if lod, ok := parseLOD(local); ok {
		h.startLOD(se, lod)
		return
	}

	switch kindOf(local) {
	case nodeCityObjectClass:
		h.startCityObject(se, local, depth)
	case nodeBoundarySurface:
		h.startBoundarySurface(local)
	case nodeOrientableSurface, nodeTexturedSurface:
		h.startOrientable(se)
	case nodePolygon:
		h.startPolygon(se)
	case nodeLinearRing:
		h.startLinearRing()
	case nodeExterior:
		h.ringExterior = true
	case nodeInterior:
		h.ringExterior = false
	case nodeEnvelope:
		h.startEnvelope()
	case nodePos, nodePosList:
		h.checkSrsDimension(se, local)
	case nodeAppearanceElement:
		h.startAppearanceElement(se, local)
	}
}

// onEnd handles an EndElement token: dispatch on node kind using the
// text accumulated for the top path frame, then pop it.
func (h *handler) onEnd() {
	local := h.path.top()
	text := h.path.pop()

	if lod, ok := parseLOD(local); ok {
		h.endLOD(lod)
		return
	}

	switch kindOf(local) {
	case nodeCityModel:
		// nothing to do; document end is driven by load.go after the
		// decoder loop finishes.
	case nodeCityObjectClass:
		h.endCityObject()
	case nodeBoundarySurface:
		h.endBoundarySurface()
	case nodeOrientableSurface, nodeTexturedSurface:
		h.endOrientable()
	case nodePolygon:
		h.endPolygon()
	case nodeLinearRing:
		h.endLinearRing()
	case nodeExterior, nodeInterior:
		h.ringExterior = true
	case nodeEnvelope:
		h.endEnvelope()
	case nodeLowerCorner, nodeUpperCorner:
		h.endCorner(text)
	case nodePos, nodePosList:
		h.endPoint(text)
	case nodeProperty:
		if h.current != nil && !h.suppressed() {
			h.current.SetProperty(local, text)
		}
	case nodeAppearanceElement:
		h.endAppearanceElement(local, text)
	}
}

// onChars accumulates character data into the current element's buffer.
func (h *handler) onChars(text string) {
	h.path.addChars(text)
}

// --- City object stack ---

func (h *handler) startCityObject(se xml.StartElement, local string, depth int) {
	if h.suppressed() {
		return
	}

	class, _ := citymodel.ClassByName(local)
	if !h.opts.ObjectsMask.Has(class) {
		h.filterDepth = depth
		return
	}

	id, ok := attrValue(se, "id")
	if !ok {
		id = string(h.ids.Next(local))
	}
	obj := citymodel.NewCityObject(citymodel.ObjectID(id), class)

	h.objStack = append(h.objStack, h.current)
	h.current = obj
}

func (h *handler) endCityObject() {
	if h.filterDepth != 0 {
		if h.path.depth()+1 == h.filterDepth {
			h.filterDepth = 0
		}
		return
	}

	obj := h.current
	parent := h.objStack[len(h.objStack)-1]
	h.objStack = h.objStack[:len(h.objStack)-1]
	h.current = parent

	if obj == nil {
		return
	}
	keep := !h.opts.PruneEmptyObjects || obj.HasContent()
	if !keep {
		return
	}
	if parent != nil {
		parent.AddChild(obj)
	}
	h.model.Insert(obj)
}

// --- LOD tracking ---

func (h *handler) startLOD(se xml.StartElement, lod int) {
	h.lodStack = append(h.lodStack, h.currentLOD)
	h.currentLOD = lod

	h.geomStack = append(h.geomStack, h.currentGeom)

	if h.suppressed() || h.current == nil || !citymodel.FilterByLOD(lod, h.opts.MinLOD, h.opts.MaxLOD) {
		h.currentGeom = nil
		return
	}

	id, ok := attrValue(se, "id")
	if !ok {
		id = string(h.ids.Next("geom"))
	}
	g := citymodel.NewGeometry(citymodel.ObjectID(id), lod, h.geomType)
	h.current.AddGeometry(g)
	h.currentGeom = g
}

func (h *handler) endLOD(lod int) {
	if len(h.lodStack) > 0 {
		n := len(h.lodStack) - 1
		h.currentLOD = h.lodStack[n]
		h.lodStack = h.lodStack[:n]
	} else {
		h.currentLOD = h.opts.MinLOD
	}

	if len(h.geomStack) > 0 {
		n := len(h.geomStack) - 1
		h.currentGeom = h.geomStack[n]
		h.geomStack = h.geomStack[:n]
	}
}

// --- Boundary surface semantic type ---

func (h *handler) startBoundarySurface(local string) {
	h.geomTypeStack = append(h.geomTypeStack, h.geomType)
	h.geomType = boundarySurfaceKinds[local]
}

func (h *handler) endBoundarySurface() {
	if len(h.geomTypeStack) == 0 {
		h.geomType = citymodel.Unknown
		return
	}
	n := len(h.geomTypeStack) - 1
	h.geomType = h.geomTypeStack[n]
	h.geomTypeStack = h.geomTypeStack[:n]
}

// --- Orientation ---

func (h *handler) startOrientable(se xml.StartElement) {
	h.negateStack = append(h.negateStack, h.negateNormal)
	if v, ok := attrValue(se, "orientation"); ok && v == "-" {
		h.negateNormal = true
	} else {
		h.negateNormal = false
	}
}

func (h *handler) endOrientable() {
	if len(h.negateStack) == 0 {
		h.negateNormal = false
		return
	}
	n := len(h.negateStack) - 1
	h.negateNormal = h.negateStack[n]
	h.negateStack = h.negateStack[:n]
}

// --- Polygon / ring ---

func (h *handler) startPolygon(se xml.StartElement) {
	h.polyStack = append(h.polyStack, h.currentPoly)

	if h.suppressed() || h.currentGeom == nil {
		h.currentPoly = nil
		return
	}

	id, ok := attrValue(se, "id")
	if !ok {
		id = string(h.ids.Next("poly"))
	}
	p := citymodel.NewPolygon(citymodel.ObjectID(id))
	p.NegateNormal = h.negateNormal
	h.currentPoly = p
}

func (h *handler) endPolygon() {
	p := h.currentPoly
	n := len(h.polyStack) - 1
	h.currentPoly = h.polyStack[n]
	h.polyStack = h.polyStack[:n]

	if p == nil || h.currentGeom == nil {
		return
	}
	if !p.HasExterior() {
		return
	}
	p.Finalize(h.tess, h.opts.Triangulate)
	h.currentGeom.AddPolygon(p)
}

func (h *handler) startLinearRing() {
	if h.currentPoly == nil {
		h.currentRing = nil
		return
	}
	h.currentRing = citymodel.NewLinearRing(h.ringExterior)
}

func (h *handler) endLinearRing() {
	ring := h.currentRing
	h.currentRing = nil
	if ring == nil || h.currentPoly == nil {
		return
	}
	if ring.Exterior {
		h.currentPoly.SetExterior(ring)
	} else {
		h.currentPoly.AddInterior(ring)
	}
}

// --- Envelope ---

func (h *handler) startEnvelope() {
	h.envStack = append(h.envStack, h.currentEnv)
	if h.suppressed() {
		h.currentEnv = nil
		return
	}
	h.currentEnv = citymodel.NewEnvelope()
}

func (h *handler) endEnvelope() {
	env := h.currentEnv
	n := len(h.envStack) - 1
	h.currentEnv = h.envStack[n]
	h.envStack = h.envStack[:n]

	if env == nil || !env.HasEnoughPoints() {
		return
	}
	env.Finalize()
	if h.current != nil {
		h.current.Envelope = env
	} else {
		h.model.Envelope = env
	}
}

func (h *handler) endCorner(text string) {
	if h.currentEnv == nil {
		return
	}
	triples := parseTriples(parseFloats(text))
	for _, t := range triples {
		h.currentEnv.AddPoint(t)
	}
}

// --- Point intake ---

func (h *handler) checkSrsDimension(se xml.StartElement, local string) {
	v, ok := attrValue(se, "srsDimension")
	if !ok {
		return
	}
	if v != "3" {
		diagnostics.Warnf(h.sink, "citygml: %s has srsDimension=%s, expected 3; reading as triples anyway", local, v)
	}
}

func (h *handler) endPoint(text string) {
	if h.suppressed() {
		return
	}
	triples := parseTriples(parseFloats(text))

	switch {
	case h.currentRing != nil:
		for _, t := range triples {
			h.currentRing.AddVertex(t)
		}
	case h.current != nil:
		h.current.LoosePoints = append(h.current.LoosePoints, triples...)
	}
}

// --- Appearance intake ---

func (h *handler) startAppearanceElement(se xml.StartElement, local string) {
	switch local {
	case "SimpleTexture", "ParameterizedTexture", "GeoreferencedTexture":
		id, ok := attrValue(se, "id")
		if !ok {
			id = string(h.ids.Next("tex"))
		}
		tex := appearance.NewTexture(id)
		h.model.Resolver().Add(tex)
		h.curAppearanceAssigned = false
	case "Material", "X3DMaterial":
		id, ok := attrValue(se, "id")
		if !ok {
			id = string(h.ids.Next("mat"))
		}
		mat := appearance.NewMaterial(id)
		h.model.Resolver().Add(mat)
		h.curAppearanceAssigned = false
	case "target":
		h.targetURISet = false
		if uri, ok := attrValue(se, "uri"); ok {
			id := strings.TrimPrefix(uri, "#")
			h.model.Resolver().AssignTarget(id)
			h.curAppearanceAssigned = true
			h.targetURISet = true
		}
	}
}

func (h *handler) endAppearanceElement(local, text string) {
	resolver := h.model.Resolver()

	switch local {
	case "SimpleTexture", "ParameterizedTexture", "GeoreferencedTexture", "Material", "X3DMaterial":
		if !h.curAppearanceAssigned && h.currentGeom != nil {
			resolver.AssignTarget(string(h.currentGeom.ID))
		}
		resolver.ClearCurrent()
		resolver.Refresh()
	case "target":
		if !h.targetURISet {
			id := strings.TrimPrefix(text, "#")
			resolver.AssignTarget(id)
			h.curAppearanceAssigned = true
		}
	case "imageURI", "textureMap":
		if tex, ok := resolver.Current().(*appearance.Texture); ok {
			tex.URL = strings.ReplaceAll(text, "\\", "/")
		}
	case "textureCoordinates":
		coords := parsePairs(parseFloats(text))
		resolver.AssignTexCoords(coords)
	case "diffuseColor", "emissiveColor", "specularColor":
		vals := parseFloats(text)
		if len(vals) < 3 {
			return
		}
		c := appearance.Color{R: float32(vals[0]), G: float32(vals[1]), B: float32(vals[2])}
		mat, ok := resolver.Current().(*appearance.Material)
		if !ok {
			return
		}
		switch local {
		case "diffuseColor":
			mat.Diffuse = c
		case "emissiveColor":
			mat.Emissive = c
		case "specularColor":
			mat.Specular = c
		}
	case "ambientIntensity", "shininess", "transparency":
		v, ok := parseSingleFloat(text)
		if !ok {
			return
		}
		mat, ok2 := resolver.Current().(*appearance.Material)
		if !ok2 {
			return
		}
		switch local {
		case "ambientIntensity":
			mat.AmbientIntensity = float32(v)
		case "shininess":
			mat.Shininess = float32(v)
		case "transparency":
			mat.Transparency = float32(v)
		}
	}
}
