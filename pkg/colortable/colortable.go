// Package colortable loads a YAML class → color override table and wires
// it into citymodel's default color palette, the same cached-YAML-loader
// shape as the teacher's pkg/themes.Loader — minus the concurrency (a
// color table is loaded once at startup, never hot-reloaded per request,
// so the mutex-guarded cache that loader needs doesn't apply here).
package colortable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/citygml-go/ingest/pkg/appearance"
	"github.com/citygml-go/ingest/pkg/citymodel"
)

// Table is the YAML document shape: a flat map from CityGML class name
// (spec.md §3's class enumeration, e.g. "Building", "RoofSurface" is not
// a class — only city-object classes are valid keys here) to an RGB
// triple in [0,1].
type Table struct {
	Colors map[string][3]float32 `yaml:"colors"`
}

// Load reads a YAML color table from path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("colortable: reading %s: %w", path, err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("colortable: parsing %s: %w", path, err)
	}
	return &t, nil
}

// Apply overrides citymodel's built-in default colors with every entry
// in t whose class name is recognized; unrecognized names are returned in
// unknown rather than aborting the whole table.
func (t *Table) Apply() (unknown []string) {
	for name, rgb := range t.Colors {
		class, ok := citymodel.ClassByName(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		citymodel.SetDefaultColor(class, appearance.Color{R: rgb[0], G: rgb[1], B: rgb[2]})
	}
	return unknown
}
