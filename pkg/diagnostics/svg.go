package diagnostics

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/citygml-go/ingest/pkg/citymodel"
)

// FootprintSVGOptions configures the top-down footprint visualization.
// A debug rendering, not part of the data model proper: it exists purely
// so a human can eyeball what a load actually produced.
type FootprintSVGOptions struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	Margin     int    // Canvas margin in pixels
	ShowLabels bool   // Label each rectangle with its object ID
	Title      string // Optional title drawn at the top
}

// DefaultFootprintSVGOptions returns sensible defaults.
func DefaultFootprintSVGOptions() FootprintSVGOptions {
	return FootprintSVGOptions{
		Width:      1200,
		Height:     900,
		Margin:     40,
		ShowLabels: true,
		Title:      "City Model Footprints",
	}
}

// DumpFootprintsSVG renders the finalized envelope of every city object in
// the model (roots and their descendants) as a colored rectangle in the
// model's X/Y plane (Z dropped), colored by
// citymodel.DefaultColor(obj.Class). It is a read-only debug aid wired
// into cmd/citygmlload's -svg flag; nothing in pkg/citygml depends on it.
func DumpFootprintsSVG(model *citymodel.CityModel, opts FootprintSVGOptions) ([]byte, error) {
	if model == nil {
		return nil, fmt.Errorf("diagnostics: model cannot be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	type footprint struct {
		obj        *citymodel.CityObject
		minX, minY float64
		maxX, maxY float64
	}

	var prints []footprint
	for _, obj := range model.AllObjects() {
		if obj.Envelope == nil || !obj.Envelope.Seeded() {
			continue
		}
		prints = append(prints, footprint{
			obj:  obj,
			minX: obj.Envelope.LowerBound.X,
			minY: obj.Envelope.LowerBound.Y,
			maxX: obj.Envelope.UpperBound.X,
			maxY: obj.Envelope.UpperBound.Y,
		})
	}
	sort.Slice(prints, func(i, j int) bool {
		return prints[i].obj.ID < prints[j].obj.ID
	})

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	if len(prints) == 0 {
		if opts.Title != "" {
			canvas.Text(opts.Margin, opts.Margin, opts.Title, "font-size:18px;fill:#000000")
		}
		canvas.End()
		return buf.Bytes(), nil
	}

	worldMinX, worldMinY := prints[0].minX, prints[0].minY
	worldMaxX, worldMaxY := prints[0].maxX, prints[0].maxY
	for _, f := range prints[1:] {
		worldMinX = min(worldMinX, f.minX)
		worldMinY = min(worldMinY, f.minY)
		worldMaxX = max(worldMaxX, f.maxX)
		worldMaxY = max(worldMaxY, f.maxY)
	}

	headerSpace := 0
	if opts.Title != "" {
		headerSpace = 30
	}
	drawW := float64(opts.Width - 2*opts.Margin)
	drawH := float64(opts.Height - 2*opts.Margin - headerSpace)
	spanX := worldMaxX - worldMinX
	spanY := worldMaxY - worldMinY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	scale := min(drawW/spanX, drawH/spanY)

	project := func(x, y float64) (int, int) {
		px := opts.Margin + int((x-worldMinX)*scale)
		// SVG y grows downward; flip so north is up.
		py := opts.Margin + headerSpace + int((worldMaxY-y)*scale)
		return px, py
	}

	for _, f := range prints {
		x0, y0 := project(f.minX, f.maxY)
		x1, y1 := project(f.maxX, f.minY)
		w, h := x1-x0, y1-y0
		if w <= 0 {
			w = 1
		}
		if h <= 0 {
			h = 1
		}
		c := citymodel.DefaultColor(f.obj.Class)
		style := fmt.Sprintf("fill:%s;stroke:#000000;stroke-width:1;fill-opacity:0.85", c.Hex())
		canvas.Rect(x0, y0, w, h, style)
		if opts.ShowLabels {
			canvas.Text(x0+2, y0+12, string(f.obj.ID), "font-size:10px;fill:#000000")
		}
	}

	if opts.Title != "" {
		canvas.Text(opts.Margin, 20, opts.Title, "font-size:18px;fill:#000000")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveFootprintsSVG renders and writes the footprint dump to path.
func SaveFootprintsSVG(model *citymodel.CityModel, path string, opts FootprintSVGOptions) error {
	data, err := DumpFootprintsSVG(model, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
