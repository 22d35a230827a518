package citymodel

import "github.com/citygml-go/ingest/pkg/vecmath"

// Envelope is an axis-aligned bounding box. The lowerBound <= upperBound
// invariant (spec.md §3) is never enforced at construction — only after
// Finalize, once every point gml:pos/posList contributed has been seen.
type Envelope struct {
	LowerBound vecmath.Vec3
	UpperBound vecmath.Vec3

	points []vecmath.Vec3
	seeded bool
}

// NewEnvelope creates an empty envelope with no points yet.
func NewEnvelope() *Envelope {
	return &Envelope{}
}

// AddPoint appends a point parsed from lowerCorner/upperCorner. Order
// does not matter; Finalize derives min/max componentwise from whatever
// points were added.
func (e *Envelope) AddPoint(p vecmath.Vec3) {
	e.points = append(e.points, p)
}

// Finalize derives LowerBound/UpperBound from the accumulated points.
// Per spec.md §4.4, an envelope is only adopted by the model/city object
// if at least 2 points were seen; callers check len(e.points) via
// HasEnoughPoints before calling Finalize.
func (e *Envelope) Finalize() {
	if len(e.points) == 0 {
		return
	}
	lo, hi := e.points[0], e.points[0]
	for _, p := range e.points[1:] {
		lo = vecmath.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = vecmath.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	e.LowerBound = lo
	e.UpperBound = hi
	e.seeded = true
}

// HasEnoughPoints reports whether at least 2 points were added, the
// threshold spec.md §4.4 requires before an Envelope is installed on the
// model or a city object.
func (e *Envelope) HasEnoughPoints() bool {
	return len(e.points) >= 2
}

// Seeded reports whether Finalize has derived real bounds.
func (e *Envelope) Seeded() bool {
	return e.seeded
}
