package citygml

import (
	"strconv"
	"strings"

	"github.com/citygml-go/ingest/pkg/citymodel"
)

// nodeKind is the closed set of element kinds the handler dispatches on
// (spec.md §4.4's node-kind table). Element names outside this set are
// opaque: the path stack still tracks them, but they contribute nothing.
type nodeKind int

const (
	nodeOpaque nodeKind = iota
	nodeCityModel
	nodeCityObjectMember
	nodeBoundedBy
	nodeEnvelope
	nodeLowerCorner
	nodeUpperCorner
	nodePos
	nodePosList
	nodeSolid
	nodeCompositeSurface
	nodeTriangulatedSurface
	nodeTexturedSurface
	nodeTriangle
	nodeSurfaceMember
	nodePolygon
	nodeOrientableSurface
	nodeLinearRing
	nodeExterior
	nodeInterior
	nodeProperty // class, function, usage, measuredHeight, name, description, creationDate, terminationDate
	nodeCityObjectClass
	nodeBoundarySurface
	nodeAppearanceElement
)

// propertyNames is the property-intake set (spec.md §4.4 "Property
// intake"): trimmed character data is stored under the local name in the
// current city object's property map.
var propertyNames = map[string]bool{
	"class":           true,
	"function":        true,
	"usage":           true,
	"measuredHeight":  true,
	"name":            true,
	"description":     true,
	"creationDate":    true,
	"terminationDate": true,
}

// boundarySurfaceKinds maps CityGML boundary-surface element names to the
// semantic surface type a subsequent surfaceMember/TriangulatedSurface
// geometry adopts (spec.md §4.4 "Boundary surface types").
var boundarySurfaceKinds = map[string]citymodel.SurfaceType{
	"RoofSurface":         citymodel.Roof,
	"WallSurface":         citymodel.Wall,
	"GroundSurface":       citymodel.Ground,
	"ClosureSurface":      citymodel.Closure,
	"FloorSurface":        citymodel.Floor,
	"InteriorWallSurface": citymodel.InteriorWall,
	"CeilingSurface":      citymodel.Ceiling,
}

// appearanceElementNames is every leaf/container element name the
// appearance-intake rules (spec.md §4.4 "Appearance intake") recognize,
// besides the appearance-kind elements (Material/X3DMaterial/*Texture)
// which are matched by isAppearanceKindElement.
var appearanceElementNames = map[string]bool{
	"Appearance":              true,
	"appearanceMember":        true,
	"surfaceDataMember":       true,
	"target":                  true,
	"imageURI":                true,
	"textureMap":               true,
	"textureCoordinates":      true,
	"diffuseColor":            true,
	"emissiveColor":           true,
	"specularColor":           true,
	"ambientIntensity":        true,
	"shininess":               true,
	"transparency":            true,
}

// staticKinds is the closed-set dispatch table for element names whose
// kind never depends on a parameter (contrast with lodN{Solid,Geometry},
// handled separately by parseLOD since the digit is embedded in the name).
var staticKinds = map[string]nodeKind{
	"CityModel":             nodeCityModel,
	"cityObjectMember":      nodeCityObjectMember,
	"boundedBy":             nodeBoundedBy,
	"Envelope":               nodeEnvelope,
	"lowerCorner":            nodeLowerCorner,
	"upperCorner":            nodeUpperCorner,
	"pos":                    nodePos,
	"posList":                nodePosList,
	"Solid":                  nodeSolid,
	"CompositeSurface":       nodeCompositeSurface,
	"TriangulatedSurface":    nodeTriangulatedSurface,
	"TexturedSurface":        nodeTexturedSurface,
	"Triangle":               nodeTriangle,
	"surfaceMember":          nodeSurfaceMember,
	"Polygon":                nodePolygon,
	"OrientableSurface":      nodeOrientableSurface,
	"LinearRing":             nodeLinearRing,
	"exterior":               nodeExterior,
	"interior":               nodeInterior,
}

// kindOf classifies a (namespace-stripped) local element name.
func kindOf(local string) nodeKind {
	if k, ok := staticKinds[local]; ok {
		return k
	}
	if propertyNames[local] {
		return nodeProperty
	}
	if _, ok := boundarySurfaceKinds[local]; ok {
		return nodeBoundarySurface
	}
	if _, ok := citymodel.ClassByName(local); ok {
		return nodeCityObjectClass
	}
	if appearanceElementNames[local] || isAppearanceKindElement(local) {
		return nodeAppearanceElement
	}
	return nodeOpaque
}

// isAppearanceKindElement reports whether local names one of the
// appearance-introducing elements (spec.md §4.4 "Appearance intake"
// first bullet).
func isAppearanceKindElement(local string) bool {
	switch local {
	case "SimpleTexture", "ParameterizedTexture", "GeoreferencedTexture",
		"Material", "X3DMaterial":
		return true
	}
	return false
}

// parseLOD recognizes "lodN" + ("Solid" | "Geometry" | "...") and returns
// the digit and ok=true; every other name returns ok=false. Per spec.md
// §4.4, only the immediately following digit matters — the suffix
// (Solid, MultiSurface, MultiCurve, Geometry, ...) is accepted generically
// since the handler only needs the depth-tracking current LOD, not the
// geometry container's exact CityGML type.
func parseLOD(local string) (lod int, ok bool) {
	if !strings.HasPrefix(local, "lod") || len(local) < 4 {
		return 0, false
	}
	d, err := strconv.Atoi(local[3:4])
	if err != nil || d < 0 || d > 4 {
		return 0, false
	}
	return d, true
}
