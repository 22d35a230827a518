package citymodel

import (
	"time"

	"github.com/citygml-go/ingest/pkg/appearance"
	"github.com/citygml-go/ingest/pkg/vecmath"
)

// CityObject is a semantically typed 3-D entity (Building, Road, ...)
// holding geometries and child city objects in a strict tree: no
// back-edges besides the non-owning Parent pointer used to check
// spec.md §8 invariant #3.
type CityObject struct {
	ID    ObjectID
	Class CityObjectClass

	Geometries []*Geometry
	Children   []*CityObject
	Parent     *CityObject

	Envelope   *Envelope
	Properties map[string]string

	// LoosePoints holds gml:pos/posList points parsed directly inside this
	// object but outside any polygon or ring (spec.md §4.4 "Point
	// intake" — the pos-inside-object case, used by e.g. point-anchored
	// implicit geometry representations the distilled spec does not
	// otherwise model).
	LoosePoints []vecmath.Vec3

	// Appearance is resolved during CityModel.Finish if this object's own
	// id was ever targeted by an appearance block; used as the final
	// fallback in the per-polygon appearance lookup (spec.md §4.2).
	Appearance appearance.Appearance
}

// NewCityObject creates an empty city object of the given class.
func NewCityObject(id ObjectID, class CityObjectClass) *CityObject {
	return &CityObject{
		ID:         id,
		Class:      class,
		Properties: make(map[string]string),
	}
}

// AddGeometry appends a geometry this object owns.
func (c *CityObject) AddGeometry(g *Geometry) {
	g.cityObject = c
	c.Geometries = append(c.Geometries, g)
}

// AddChild appends a child city object and wires its Parent
// back-reference.
func (c *CityObject) AddChild(child *CityObject) {
	child.Parent = c
	c.Children = append(c.Children, child)
}

// IsRoot reports whether this object has no parent.
func (c *CityObject) IsRoot() bool {
	return c.Parent == nil
}

// HasContent reports whether this object has at least one geometry or
// child, the threshold spec.md §8 invariant #6 requires under
// pruneEmptyObjects.
func (c *CityObject) HasContent() bool {
	return len(c.Geometries) > 0 || len(c.Children) > 0
}

// SetProperty stores a trimmed leaf-element value under name (spec.md
// §4.4 "Property intake"): class, function, usage, measuredHeight, name,
// description, creationDate, terminationDate.
func (c *CityObject) SetProperty(name, value string) {
	c.Properties[name] = value
}

// CreationTime parses the creationDate property as an RFC 3339 date-time
// or a plain YYYY-MM-DD date (CityGML's xs:dateTime/xs:date), returning ok=false
// if the property is absent or unparsable rather than erroring — a
// malformed date degrades to "not available" the same way the original
// implementation silently drops a date it can't parse (SPEC_FULL.md §5.1).
func (c *CityObject) CreationTime() (time.Time, bool) {
	return parseDate(c.Properties["creationDate"])
}

// TerminationTime parses the terminationDate property the same way
// CreationTime parses creationDate.
func (c *CityObject) TerminationTime() (time.Time, bool) {
	return parseDate(c.Properties["terminationDate"])
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
