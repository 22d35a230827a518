package citymodel

import "fmt"

// ObjectID is the stable identity every entity in the model carries:
// either the document's gml:id attribute, or a synthesized id unique
// within the model (spec.md §3, "Object (base)").
type ObjectID string

// IDGenerator synthesizes ids for elements parsed without a gml:id
// attribute. It is owned by the SAX handler for the duration of one
// parse, never shared across parses.
type IDGenerator struct {
	next int
}

// NewIDGenerator creates a fresh generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a freshly synthesized id, unique within this generator's
// lifetime.
func (g *IDGenerator) Next(prefix string) ObjectID {
	g.next++
	return ObjectID(fmt.Sprintf("#%s%d", prefix, g.next))
}
