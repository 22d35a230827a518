package appearance

import "github.com/citygml-go/ingest/pkg/vecmath"

// Resolver holds every appearance parsed from a document and the two id
// keyed maps spec.md §3/§4.3 describe: target id → appearance, and target
// id → texture-coordinate array. Appearances are owned here; geometry and
// polygons only ever hold a borrowed pointer into Resolver.appearances.
type Resolver struct {
	appearances []Appearance
	byID        map[string]Appearance
	texCoords   map[string][]vecmath.Vec2f32

	// current is the appearance element currently being parsed, so that
	// leaf elements (diffuseColor, imageURI, ...) know what to write into.
	current Appearance

	// lastAssignedID and lastTexCoords implement the ordering quirk from
	// spec.md §4.3: a textureCoordinates element may arrive before or
	// after the target naming the surface it belongs to.
	lastAssignedID string
	hasLastID      bool
	lastTexCoords  []vecmath.Vec2f32
	hasLastTex     bool
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		byID:      make(map[string]Appearance),
		texCoords: make(map[string][]vecmath.Vec2f32),
	}
}

// Add registers a newly parsed appearance and makes it the "current"
// appearance that subsequent target/imageURI/color elements apply to.
func (r *Resolver) Add(a Appearance) {
	r.appearances = append(r.appearances, a)
	r.current = a
}

// Current returns the appearance currently being parsed, or nil.
func (r *Resolver) Current() Appearance {
	return r.current
}

// ClearCurrent ends the current appearance block.
func (r *Resolver) ClearCurrent() {
	r.current = nil
}

// Appearances returns every appearance the resolver owns, in parse order.
func (r *Resolver) Appearances() []Appearance {
	return r.appearances
}

// AssignTarget records that the current appearance (if any) applies to id
// (the caller strips any leading '#'), and implements the texture-coordinate
// ordering quirk: if a texture-coordinate array is already pending, bind
// it to id immediately and clear the pending pair.
func (r *Resolver) AssignTarget(id string) {
	if r.current != nil {
		r.byID[id] = r.current
	}

	if r.hasLastTex {
		r.texCoords[id] = r.lastTexCoords
		r.hasLastTex = false
		r.lastTexCoords = nil
		r.hasLastID = false
		return
	}
	r.lastAssignedID = id
	r.hasLastID = true
}

// AssignTexCoords records a parsed textureCoordinates array. If a target
// id is already pending (assigned before the coordinates arrived), bind
// immediately and clear the pending pair; otherwise hold the array until
// a target names it.
func (r *Resolver) AssignTexCoords(coords []vecmath.Vec2f32) {
	if r.hasLastID {
		r.texCoords[r.lastAssignedID] = coords
		r.hasLastID = false
		r.lastAssignedID = ""
		return
	}
	r.lastTexCoords = coords
	r.hasLastTex = true
}

// Refresh clears the pending (lastID, lastTexCoords) pair between
// appearance blocks so a still-unbound target or texture-coordinate array
// from one block never leaks into the next (spec.md §4.3 "Refresh").
func (r *Resolver) Refresh() {
	r.hasLastID = false
	r.lastAssignedID = ""
	r.hasLastTex = false
	r.lastTexCoords = nil
}

// Appearance returns the appearance bound to id, if any.
func (r *Resolver) Appearance(id string) (Appearance, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// TexCoords returns the texture-coordinate array bound to id, if any.
func (r *Resolver) TexCoords(id string) ([]vecmath.Vec2f32, bool) {
	c, ok := r.texCoords[id]
	return c, ok
}

// Clear drops the scratch maps used only during parsing, once
// CityModel.Finish has bound every polygon/geometry. The owned
// Appearances slice (model.Appearances per spec.md §8 invariant #4) is
// left untouched.
func (r *Resolver) Clear() {
	r.byID = nil
	r.texCoords = nil
	r.current = nil
	r.hasLastID = false
	r.hasLastTex = false
	r.lastTexCoords = nil
}
