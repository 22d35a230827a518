package tessellate

// earClip triangulates a simple (non-self-intersecting, hole-free) 2-D
// polygon by repeatedly clipping convex "ears". It returns triangles as
// triples of indices into poly. ok is false if clipping got stuck (a
// self-intersecting or degenerate input), in which case the caller should
// report a diagnostic and treat the polygon as empty.
func earClip(poly []vertexRef) (triangles []int, ok bool) {
	n := len(poly)
	if n < 3 {
		return nil, n == 0
	}

	// remaining holds indices into poly that haven't been clipped yet, in
	// their current cyclic order.
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	ccw := signedArea(poly, remaining) > 0

	triangles = make([]int, 0, (n-2)*3)

	// Each successful clip removes one vertex; n-2 clips are needed. Cap
	// the attempt budget generously to tolerate pathological inputs
	// without looping forever.
	guard := 0
	maxGuard := n * n
	for len(remaining) > 3 {
		guard++
		if guard > maxGuard {
			return nil, false
		}

		clipped := false
		for i := 0; i < len(remaining); i++ {
			prev := remaining[(i-1+len(remaining))%len(remaining)]
			curr := remaining[i]
			next := remaining[(i+1)%len(remaining)]

			if !isConvex(poly[prev].p2, poly[curr].p2, poly[next].p2, ccw) {
				continue
			}
			if anyVertexInside(poly, remaining, i, prev, curr, next) {
				continue
			}

			triangles = append(triangles, poly[prev].idx, poly[curr].idx, poly[next].idx)
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, false
		}
	}

	if len(remaining) == 3 {
		triangles = append(triangles, poly[remaining[0]].idx, poly[remaining[1]].idx, poly[remaining[2]].idx)
	}

	return triangles, true
}

func signedArea(poly []vertexRef, order []int) float64 {
	area := 0.0
	n := len(order)
	for i := 0; i < n; i++ {
		a := poly[order[i]].p2
		b := poly[order[(i+1)%n]].p2
		area += a.x*b.y - b.x*a.y
	}
	return area / 2
}

func isConvex(a, b, c point2, ccw bool) bool {
	cr := cross2(a, b, c)
	if ccw {
		return cr > 1e-12
	}
	return cr < -1e-12
}

func anyVertexInside(poly []vertexRef, remaining []int, earPos, prev, curr, next int) bool {
	a, b, c := poly[prev].p2, poly[curr].p2, poly[next].p2
	for j, idx := range remaining {
		if j == earPos {
			continue
		}
		if idx == prev || idx == next {
			continue
		}
		// Hole bridging duplicates the seam vertices; a copy sitting on a
		// corner of the ear does not block it.
		p := poly[idx].p2
		if samePoint(p, a) || samePoint(p, b) || samePoint(p, c) {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c point2) bool {
	d1 := cross2(a, b, p)
	d2 := cross2(b, c, p)
	d3 := cross2(c, a, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
