package citymodel

import "github.com/citygml-go/ingest/pkg/appearance"

// CityObjectClass is the fixed enumeration of semantic city-object
// classes spec.md §3 lists, plus the aggregate All used only in object
// masks (spec.md §6), never as an actual object's Class.
type CityObjectClass int

const (
	Building CityObjectClass = iota
	Room
	BuildingInstallation
	BuildingFurniture
	Door
	Window
	CityFurniture
	Track
	Road
	Railway
	Square
	PlantCover
	SolitaryVegetationObject
	WaterBody
	TINRelief
	LandUse
	GenericCityObject
	Tunnel
	Bridge
	BridgePart
	BridgeConstructionElement
	BridgeInstallation
	BuildingPart

	// All is the aggregate pseudo-class used only in object mask
	// expressions (spec.md §6): "All" expands to every concrete class
	// above.
	All
)

// classNames maps every concrete class (and All) to the document/grammar
// token that names it.
var classNames = map[CityObjectClass]string{
	Building:                  "Building",
	Room:                      "Room",
	BuildingInstallation:      "BuildingInstallation",
	BuildingFurniture:         "BuildingFurniture",
	Door:                      "Door",
	Window:                    "Window",
	CityFurniture:             "CityFurniture",
	Track:                     "Track",
	Road:                      "Road",
	Railway:                   "Railway",
	Square:                    "Square",
	PlantCover:                "PlantCover",
	SolitaryVegetationObject:  "SolitaryVegetationObject",
	WaterBody:                 "WaterBody",
	TINRelief:                 "TINRelief",
	LandUse:                   "LandUse",
	GenericCityObject:         "GenericCityObject",
	Tunnel:                    "Tunnel",
	Bridge:                    "Bridge",
	BridgePart:                "BridgePart",
	BridgeConstructionElement: "BridgeConstructionElement",
	BridgeInstallation:        "BridgeInstallation",
	BuildingPart:              "BuildingPart",
	All:                       "All",
}

var namesByClass map[string]CityObjectClass

func init() {
	namesByClass = make(map[string]CityObjectClass, len(classNames))
	for c, n := range classNames {
		namesByClass[n] = c
	}
}

// String renders the class name.
func (c CityObjectClass) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return classNames[c]
}

// ClassByName looks up a CityObjectClass by its CityGML/grammar token
// name (case-sensitive, matching the document's element names).
func ClassByName(name string) (CityObjectClass, bool) {
	c, ok := namesByClass[name]
	return c, ok
}

// AllConcreteClasses returns every class except the All aggregate, in a
// stable order — used to expand "All" in object mask expressions.
func AllConcreteClasses() []CityObjectClass {
	out := make([]CityObjectClass, 0, len(classNames)-1)
	for c := Building; c <= BuildingPart; c++ {
		out = append(out, c)
	}
	return out
}

// defaultColors is the builtin class → default diffuse color table,
// overridable at load time via pkg/colortable's YAML loader (SPEC_FULL.md
// §3). Values are a simple, readable palette rather than a photometric
// reference set: the original implementation hardcodes similarly
// arbitrary defaults per class.
var defaultColors = map[CityObjectClass]appearance.Color{
	Building:                  {R: 0.8, G: 0.8, B: 0.7},
	Room:                      {R: 0.9, G: 0.9, B: 0.9},
	BuildingInstallation:      {R: 0.6, G: 0.6, B: 0.6},
	BuildingFurniture:         {R: 0.5, G: 0.4, B: 0.3},
	Door:                      {R: 0.4, G: 0.25, B: 0.1},
	Window:                    {R: 0.6, G: 0.8, B: 0.9},
	CityFurniture:             {R: 0.5, G: 0.5, B: 0.5},
	Track:                     {R: 0.3, G: 0.3, B: 0.3},
	Road:                      {R: 0.2, G: 0.2, B: 0.2},
	Railway:                   {R: 0.35, G: 0.3, B: 0.25},
	Square:                    {R: 0.7, G: 0.7, B: 0.65},
	PlantCover:                {R: 0.2, G: 0.6, B: 0.2},
	SolitaryVegetationObject:  {R: 0.15, G: 0.5, B: 0.15},
	WaterBody:                 {R: 0.1, G: 0.3, B: 0.7},
	TINRelief:                 {R: 0.55, G: 0.5, B: 0.4},
	LandUse:                   {R: 0.6, G: 0.55, B: 0.3},
	GenericCityObject:         {R: 0.5, G: 0.5, B: 0.5},
	Tunnel:                    {R: 0.25, G: 0.25, B: 0.25},
	Bridge:                    {R: 0.55, G: 0.45, B: 0.35},
	BridgePart:                {R: 0.55, G: 0.45, B: 0.35},
	BridgeConstructionElement: {R: 0.45, G: 0.4, B: 0.35},
	BridgeInstallation:        {R: 0.5, G: 0.5, B: 0.45},
	BuildingPart:              {R: 0.8, G: 0.8, B: 0.7},
}

// DefaultColor returns the builtin default diffuse color for class.
func DefaultColor(class CityObjectClass) appearance.Color {
	return defaultColors[class]
}

// SetDefaultColor overrides the default diffuse color for class — the
// hook pkg/colortable's YAML loader calls into.
func SetDefaultColor(class CityObjectClass, c appearance.Color) {
	defaultColors[class] = c
}
