package citymodel

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyFilterByLODMatchesRange is a property-based test in the
// teacher's rapid.Check idiom (pkg/graph/graph_test.go's
// TestProperty_GraphConnectivity): for any lod/min/max, FilterByLOD must
// agree with the direct range comparison it is meant to shortcut.
func TestPropertyFilterByLODMatchesRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lod := rapid.IntRange(-2, 10).Draw(t, "lod")
		minLOD := rapid.IntRange(-2, 10).Draw(t, "minLOD")
		maxLOD := rapid.IntRange(-2, 10).Draw(t, "maxLOD")

		got := FilterByLOD(lod, minLOD, maxLOD)
		want := lod >= minLOD && lod <= maxLOD
		if got != want {
			t.Fatalf("FilterByLOD(%d, %d, %d) = %v, want %v", lod, minLOD, maxLOD, got, want)
		}
	})
}

// TestPropertyObjectMaskUnionRoundTrips checks that unioning a random
// subset of concrete classes with '|' selects exactly that subset and
// nothing else, for any subset size.
func TestPropertyObjectMaskUnionRoundTrips(t *testing.T) {
	all := AllConcreteClasses()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, len(all)).Draw(t, "n")
		chosen := make(map[CityObjectClass]bool, n)
		names := make([]string, 0, n)
		for len(chosen) < n {
			idx := rapid.IntRange(0, len(all)-1).Draw(t, "idx")
			c := all[idx]
			if chosen[c] {
				continue
			}
			chosen[c] = true
			names = append(names, c.String())
		}

		mask, err := ParseObjectMask(strings.Join(names, "|"))
		if err != nil {
			t.Fatalf("ParseObjectMask: %v", err)
		}

		for _, c := range all {
			want := chosen[c]
			if got := mask.Has(c); got != want {
				t.Fatalf("mask.Has(%s) = %v, want %v (expr=%q)", c, got, want, strings.Join(names, "|"))
			}
		}
	})
}
