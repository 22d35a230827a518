package citygml

import (
	"strconv"
	"strings"

	"github.com/citygml-go/ingest/pkg/vecmath"
)

// parseFloats splits whitespace-separated text into float64s, skipping
// any token that fails to parse (spec.md §7: malformed numeric content
// degrades the element, it does not abort the document).
func parseFloats(text string) []float64 {
	fields := strings.Fields(text)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// parseTriples groups a flat float64 list into 3-tuples, truncating any
// trailing partial tuple. srsDimension controls nothing about how many
// triples are produced — per spec.md §4.4 and §9, the handler always
// reads triples regardless of srsDimension, only warning when it is not
// 3.
func parseTriples(vals []float64) []vecmath.Vec3 {
	n := len(vals) / 3
	out := make([]vecmath.Vec3, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, vecmath.Vec3{X: vals[3*i], Y: vals[3*i+1], Z: vals[3*i+2]})
	}
	return out
}

// parsePairs groups a flat float64 list into 2-tuples (textureCoordinates,
// spec.md §4.3), truncating any trailing partial pair.
func parsePairs(vals []float64) []vecmath.Vec2f32 {
	n := len(vals) / 2
	out := make([]vecmath.Vec2f32, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, vecmath.Vec2{X: vals[2*i], Y: vals[2*i+1]}.AsFloat32())
	}
	return out
}

// parseSingleFloat parses text as one float64; ok is false on malformed
// content (e.g. a shininess/transparency/ambientIntensity leaf with
// unparsable text), in which case the field is simply left at its zero
// value.
func parseSingleFloat(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
