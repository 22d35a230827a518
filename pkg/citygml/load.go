package citygml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/citygml-go/ingest/pkg/citymodel"
)

// Load streams r as a CityGML document and returns the resulting city
// model (spec.md §6 "load(source, options)"). A nil opts.Sink discards
// every diagnostic; a nil *CityModel is returned only on fatal failure —
// XML well-formedness errors and reader initialization failures (spec.md
// §7's fatal tier) — with a non-nil error describing the cause.
func Load(r io.Reader, opts Options) (*citymodel.CityModel, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	h := newHandler(opts, opts.Sink)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("citygml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			h.onStart(t)
		case xml.EndElement:
			h.onEnd()
		case xml.CharData:
			h.onChars(string(t))
		}
	}

	h.model.Finish(opts.Optimize)
	return h.model, nil
}

// LoadFile opens path and streams it through Load.
func LoadFile(path string, opts Options) (*citymodel.CityModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("citygml: %w", err)
	}
	defer f.Close()
	return Load(f, opts)
}
