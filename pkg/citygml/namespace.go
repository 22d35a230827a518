package citygml

import "strings"

// knownPrefixes is the set of namespace prefixes spec.md §6 says to strip
// from a qualified element name — the rest of a qualified name (anything
// with a prefix outside this set) is retained verbatim, since it belongs
// to an extension application schema the handler doesn't try to
// interpret.
var knownPrefixes = map[string]bool{
	"gml":      true,
	"citygml":  true,
	"core":     true,
	"app":      true,
	"bldg":     true,
	"frn":      true,
	"grp":      true,
	"gen":      true,
	"luse":     true,
	"dem":      true,
	"tran":     true,
	"trans":    true,
	"veg":      true,
	"wtr":      true,
	"tex":      true,
}

// localName strips a known namespace prefix from a qualified element
// name ("bldg:Building" → "Building"); an unknown or absent prefix is
// left as-is.
func localName(qname string) string {
	prefix, local, found := strings.Cut(qname, ":")
	if !found {
		return qname
	}
	if knownPrefixes[prefix] {
		return local
	}
	return qname
}
