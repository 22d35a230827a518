package diagnostics

import (
	"bytes"
	"testing"

	"github.com/citygml-go/ingest/pkg/citymodel"
	"github.com/citygml-go/ingest/pkg/vecmath"
)

func TestDumpFootprintsSVGNilModel(t *testing.T) {
	if _, err := DumpFootprintsSVG(nil, DefaultFootprintSVGOptions()); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestDumpFootprintsSVGEmptyModel(t *testing.T) {
	model := citymodel.New()
	out, err := DumpFootprintsSVG(model, DefaultFootprintSVGOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out, []byte("<svg")) {
		t.Fatalf("expected SVG output, got %q", out)
	}
}

func TestDumpFootprintsSVGDrawsRootObjects(t *testing.T) {
	model := citymodel.New()

	obj := citymodel.NewCityObject("bldg-1", citymodel.Building)
	env := citymodel.NewEnvelope()
	env.AddPoint(vecmath.Vec3{X: 0, Y: 0, Z: 0})
	env.AddPoint(vecmath.Vec3{X: 10, Y: 5, Z: 3})
	env.Finalize()
	obj.Envelope = env
	model.Insert(obj)

	out, err := DumpFootprintsSVG(model, DefaultFootprintSVGOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out, []byte("bldg-1")) {
		t.Fatalf("expected object id label in output, got %q", out)
	}
	if !bytes.Contains(out, []byte("rect")) {
		t.Fatalf("expected a rect element, got %q", out)
	}
}

func TestDumpFootprintsSVGSkipsUnseeded(t *testing.T) {
	model := citymodel.New()
	obj := citymodel.NewCityObject("no-envelope", citymodel.Building)
	model.Insert(obj)

	out, err := DumpFootprintsSVG(model, DefaultFootprintSVGOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(out, []byte("no-envelope")) {
		t.Fatalf("object without a finalized envelope should not be drawn")
	}
}
