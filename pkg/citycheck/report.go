// Package citycheck runs a loaded citymodel.CityModel against spec.md
// §8's invariants and reports the result in the teacher's constraint
// report idiom (pkg/validation/report.go's ConstraintResult/Summary
// shape), adapted from hard/soft dungeon constraints to pass/fail
// structural invariants over a city model.
package citycheck

import (
	"fmt"
	"strings"

	"github.com/citygml-go/ingest/pkg/citymodel"
)

// Result is one invariant's outcome.
type Result struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report is the full set of invariant results for one model.
type Report struct {
	Passed  bool
	Results []Result
}

// Check runs every invariant in spec.md §8 against model, given the
// minLOD/maxLOD/pruneEmptyObjects settings it was loaded with (needed for
// the LOD-range and no-empty-objects checks), and returns a Report.
func Check(model *citymodel.CityModel, minLOD, maxLOD int, pruneEmptyObjects bool) *Report {
	report := &Report{Passed: true}

	add := func(name string, satisfied bool, details string) {
		report.Results = append(report.Results, Result{Name: name, Satisfied: satisfied, Details: details})
		if !satisfied {
			report.Passed = false
		}
	}

	add("vertices-normals-texcoords-aligned", checkVertexAlignment(model), "")
	add("indices-well-formed", checkIndices(model), "")
	add("tree-shape", checkTreeShape(model), "")
	add("appearance-pointers-valid", checkAppearancePointers(model), "")
	add("lod-within-range", checkLODRange(model, minLOD, maxLOD), "")
	if pruneEmptyObjects {
		add("no-empty-objects", checkNoEmptyObjects(model), "")
	}

	return report
}

// checkVertexAlignment is invariant #1: |vertices| == |normals|, and if
// texture coords are present |texCoords| == |vertices|.
func checkVertexAlignment(model *citymodel.CityModel) bool {
	for _, obj := range model.AllObjects() {
		for _, g := range obj.Geometries {
			for _, p := range g.Polygons {
				if len(p.Vertices) != len(p.Normals) {
					return false
				}
				if len(p.TexCoords) != 0 && len(p.TexCoords) != len(p.Vertices) {
					return false
				}
			}
		}
	}
	return true
}

// checkIndices is invariant #2: |indices| % 3 == 0 and every index is
// in range.
func checkIndices(model *citymodel.CityModel) bool {
	for _, obj := range model.AllObjects() {
		for _, g := range obj.Geometries {
			for _, p := range g.Polygons {
				if len(p.Indices)%3 != 0 {
					return false
				}
				for _, idx := range p.Indices {
					if int(idx) >= len(p.Vertices) {
						return false
					}
				}
			}
		}
	}
	return true
}

// checkTreeShape is invariant #3: no root has a parent; every non-root
// object is a child of exactly one object (guaranteed structurally by
// AddChild, checked here against accidental aliasing).
func checkTreeShape(model *citymodel.CityModel) bool {
	for _, root := range model.Roots {
		if root.Parent != nil {
			return false
		}
	}
	seen := make(map[*citymodel.CityObject]bool)
	var walk func(*citymodel.CityObject) bool
	walk = func(o *citymodel.CityObject) bool {
		for _, c := range o.Children {
			if c.Parent != o || seen[c] {
				return false
			}
			seen[c] = true
			if !walk(c) {
				return false
			}
		}
		return true
	}
	for _, root := range model.Roots {
		if !walk(root) {
			return false
		}
	}
	return true
}

// checkAppearancePointers is invariant #4: every polygon's non-nil
// appearance pointer points into model.Appearances().
func checkAppearancePointers(model *citymodel.CityModel) bool {
	owned := make(map[any]bool, len(model.Appearances()))
	for _, a := range model.Appearances() {
		owned[a] = true
	}
	for _, obj := range model.AllObjects() {
		for _, g := range obj.Geometries {
			for _, p := range g.Polygons {
				if p.Appearance != nil && !owned[p.Appearance] {
					return false
				}
			}
		}
	}
	return true
}

// checkLODRange is invariant #5: minLOD <= geometry.LOD <= maxLOD for
// every geometry in the model.
func checkLODRange(model *citymodel.CityModel, minLOD, maxLOD int) bool {
	for _, obj := range model.AllObjects() {
		for _, g := range obj.Geometries {
			if !citymodel.FilterByLOD(g.LOD, minLOD, maxLOD) {
				return false
			}
		}
	}
	return true
}

// checkNoEmptyObjects is invariant #6: with pruneEmptyObjects=true, every
// city object has geometries+children >= 1.
func checkNoEmptyObjects(model *citymodel.CityModel) bool {
	for _, obj := range model.AllObjects() {
		if !obj.HasContent() {
			return false
		}
	}
	return true
}

// Summary renders a human-readable report, matching the teacher's
// Summary(report) idiom.
func Summary(r *Report) string {
	var b strings.Builder
	b.WriteString("=== City Model Check ===\n\n")
	if r.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}
	for i, res := range r.Results {
		status := "PASS"
		if !res.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s\n", i+1, status, res.Name))
	}
	return b.String()
}
