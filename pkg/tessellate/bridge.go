package tessellate

// vertexRef is one vertex of a contour being triangulated: idx is its
// position in the polygon's combined output vertex array, p2 its
// projection onto the triangulation plane.
type vertexRef struct {
	idx int
	p2  point2
}

// mergeHoles bridges each hole contour into the outer contour, producing a
// single simple (non-holed) polygon that ear clipping can consume
// directly. This is the standard "slit" technique: connect a hole to the
// outer boundary (or an already-merged hole) via the shortest mutually
// visible vertex pair, then splice the hole's vertex loop in at that seam.
func mergeHoles(outer []vertexRef, holes [][]vertexRef) []vertexRef {
	merged := outer
	mergedHoles := make([][]vertexRef, 0, len(holes))

	outerCCW := ringOrientation(outer) > 0

	for _, hole := range holes {
		if len(hole) < 3 {
			continue
		}
		// The slit/bridge technique requires the hole to wind opposite the
		// outer ring (CityGML places no winding requirement on interior
		// rings — spec.md §3 only says "zero or more interior rings" — so
		// same-winding input is legitimate and must be normalized here
		// rather than rejected).
		if (ringOrientation(hole) > 0) == outerCCW {
			hole = reverseRing(hole)
		}
		oi, hi, found := findBridge(merged, hole, mergedHoles)
		if !found {
			// No visible pair (degenerate/self-intersecting input): fall
			// back to the closest pair regardless of visibility so the
			// polygon still closes, rather than dropping the hole.
			oi, hi = closestPair(merged, hole)
		}
		merged = splice(merged, hole, oi, hi)
		mergedHoles = append(mergedHoles, hole)
	}

	return merged
}

// findBridge looks for the shortest segment between a vertex of outer and
// a vertex of hole that crosses no edge of outer, hole, or any
// already-merged hole.
func findBridge(outer, hole []vertexRef, otherHoles [][]vertexRef) (oi, hi int, found bool) {
	rings := make([][]point2, 0, len(otherHoles)+2)
	rings = append(rings, toPoints(outer), toPoints(hole))
	for _, h := range otherHoles {
		rings = append(rings, toPoints(h))
	}

	bestDist := -1.0
	bestOi, bestHi := -1, -1
	for oi := range outer {
		for hi := range hole {
			a, b := outer[oi].p2, hole[hi].p2
			if segmentCrossesAnyEdge(a, b, rings) {
				continue
			}
			d := squaredDist(a, b)
			if bestOi == -1 || d < bestDist {
				bestDist, bestOi, bestHi = d, oi, hi
			}
		}
	}
	if bestOi == -1 {
		return 0, 0, false
	}
	return bestOi, bestHi, true
}

func closestPair(outer, hole []vertexRef) (oi, hi int) {
	best := -1.0
	for i := range outer {
		for j := range hole {
			d := squaredDist(outer[i].p2, hole[j].p2)
			if best < 0 || d < best {
				best, oi, hi = d, i, j
			}
		}
	}
	return oi, hi
}

// splice inserts hole, rotated to start at hi, into outer at oi, returning
// the new combined contour with duplicated bridge vertices so the walk
// returns to its start.
func splice(outer, hole []vertexRef, oi, hi int) []vertexRef {
	out := make([]vertexRef, 0, len(outer)+len(hole)+2)
	out = append(out, outer[:oi+1]...)
	out = append(out, hole[hi:]...)
	out = append(out, hole[:hi]...)
	out = append(out, hole[hi])
	out = append(out, outer[oi])
	out = append(out, outer[oi+1:]...)
	return out
}

// ringOrientation returns the signed area of vs in its given vertex
// order: positive for CCW, negative for CW.
func ringOrientation(vs []vertexRef) float64 {
	order := make([]int, len(vs))
	for i := range order {
		order[i] = i
	}
	return signedArea(vs, order)
}

// reverseRing returns a copy of vs with its vertex order reversed,
// flipping its winding direction.
func reverseRing(vs []vertexRef) []vertexRef {
	out := make([]vertexRef, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

func toPoints(vs []vertexRef) []point2 {
	pts := make([]point2, len(vs))
	for i, v := range vs {
		pts[i] = v.p2
	}
	return pts
}

func squaredDist(a, b point2) float64 {
	dx, dy := a.x-b.x, a.y-b.y
	return dx*dx + dy*dy
}

// segmentCrossesAnyEdge reports whether segment a-b properly crosses any
// edge of any ring, ignoring crossings that only touch at a shared
// endpoint coordinate (so a bridge may legitimately start or end exactly
// on a contour vertex).
func segmentCrossesAnyEdge(a, b point2, rings [][]point2) bool {
	for _, ring := range rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			p, q := ring[i], ring[(i+1)%n]
			if samePoint(p, a) || samePoint(p, b) || samePoint(q, a) || samePoint(q, b) {
				continue
			}
			if segmentsIntersect(a, b, p, q) {
				return true
			}
		}
	}
	return false
}

func samePoint(a, b point2) bool {
	const eps = 1e-9
	dx, dy := a.x-b.x, a.y-b.y
	return dx*dx+dy*dy < eps
}

func segmentsIntersect(p1, p2, p3, p4 point2) bool {
	d1 := cross2(p3, p4, p1)
	d2 := cross2(p3, p4, p2)
	d3 := cross2(p1, p2, p3)
	d4 := cross2(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func cross2(o, a, b point2) float64 {
	return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
}
