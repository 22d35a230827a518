package citygml

import "testing"

func TestLocalNameStripsKnownPrefix(t *testing.T) {
	cases := map[string]string{
		"bldg:Building":       "Building",
		"gml:posList":         "posList",
		"core:CityModel":      "CityModel",
		"Unprefixed":          "Unprefixed",
		"custom:Extension":    "custom:Extension",
		"xAL:AddressDetails":  "xAL:AddressDetails",
	}
	for in, want := range cases {
		if got := localName(in); got != want {
			t.Fatalf("localName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseLOD(t *testing.T) {
	cases := []struct {
		name string
		lod  int
		ok   bool
	}{
		{"lod0Geometry", 0, true},
		{"lod2Solid", 2, true},
		{"lod4MultiSurface", 4, true},
		{"lodXGeometry", 0, false},
		{"Geometry", 0, false},
		{"lo", 0, false},
	}
	for _, c := range cases {
		lod, ok := parseLOD(c.name)
		if ok != c.ok {
			t.Fatalf("parseLOD(%q) ok = %v, want %v", c.name, ok, c.ok)
		}
		if ok && lod != c.lod {
			t.Fatalf("parseLOD(%q) = %d, want %d", c.name, lod, c.lod)
		}
	}
}
