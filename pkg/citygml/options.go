package citygml

import (
	"fmt"
	"os"

	"github.com/citygml-go/ingest/pkg/citymodel"
	"github.com/citygml-go/ingest/pkg/diagnostics"
)

// Options configures one Load call (spec.md §6's "load(source, options)").
// It supports YAML parsing the same way the teacher's dungeon.Config does,
// so a CLI or batch pipeline can drive Load from a config file.
type Options struct {
	// ObjectsMask selects which city-object classes to materialize,
	// either as a pre-parsed mask or as a grammar expression (see
	// ObjectsMaskExpr). A zero mask with an empty expression means
	// "every class".
	ObjectsMask citymodel.ObjectMask `yaml:"-" json:"-"`

	// ObjectsMaskExpr is the string form: class names joined by '|'/'&',
	// each optionally prefixed with '~' or '!', with "All" expanding to
	// every concrete class. Parsed once at the start of Load.
	ObjectsMaskExpr string `yaml:"objectsMask,omitempty" json:"objectsMask,omitempty"`

	// MinLOD drops geometry with LOD < MinLOD. Default 0.
	MinLOD int `yaml:"minLOD" json:"minLOD"`

	// MaxLOD drops geometry with LOD > MaxLOD. Default 4.
	MaxLOD int `yaml:"maxLOD" json:"maxLOD"`

	// Optimize runs the polygon/geometry merge passes during Finish.
	// Default true.
	Optimize bool `yaml:"optimize" json:"optimize"`

	// PruneEmptyObjects drops city objects that end with zero
	// geometries and zero children. Default true.
	PruneEmptyObjects bool `yaml:"pruneEmptyObjects" json:"pruneEmptyObjects"`

	// Triangulate runs the tessellator; if false, polygons fall back to
	// the pass-through fan (spec.md §4.1). Default true.
	Triangulate bool `yaml:"triangulate" json:"triangulate"`

	// Sink receives warnings and errors raised during Load (spec.md §7).
	// Not YAML-serializable; a config-file load leaves this nil and the
	// caller fills it in afterward. Defaults to a stderr log sink.
	Sink diagnostics.Sink `yaml:"-" json:"-"`
}

// DefaultOptions returns the defaults spec.md §6 lists.
func DefaultOptions() Options {
	return Options{
		MinLOD:            0,
		MaxLOD:            4,
		Optimize:          true,
		PruneEmptyObjects: true,
		Triangulate:       true,
		Sink:              diagnostics.NewLogSink(os.Stderr),
	}
}

// Validate checks the configured ranges and resolves ObjectsMask from
// ObjectsMaskExpr if the mask itself was left zero.
func (o *Options) Validate() error {
	if o.MinLOD < 0 || o.MinLOD > 4 {
		return fmt.Errorf("citygml: minLOD must be in [0,4], got %d", o.MinLOD)
	}
	if o.MaxLOD < 0 || o.MaxLOD > 4 {
		return fmt.Errorf("citygml: maxLOD must be in [0,4], got %d", o.MaxLOD)
	}
	if o.MinLOD > o.MaxLOD {
		return fmt.Errorf("citygml: minLOD (%d) must be <= maxLOD (%d)", o.MinLOD, o.MaxLOD)
	}

	if o.ObjectsMask == 0 {
		mask, err := citymodel.ParseObjectMask(o.ObjectsMaskExpr)
		if err != nil {
			return fmt.Errorf("citygml: %w", err)
		}
		o.ObjectsMask = mask
	}
	return nil
}
