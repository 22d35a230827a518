// Package citymodel is the in-memory scene graph an ingested CityGML
// document is turned into: typed city objects, their multi-LOD geometric
// boundaries, and the envelope/property bookkeeping spec.md §3 describes.
//
// It owns the graph it builds the same way the teacher's pkg/graph owns
// Room/Connector maps keyed by id with duplicate/reference validation —
// generalized here to a strict ownership tree (CityModel → CityObject →
// Geometry → Polygon) instead of a general graph, since spec.md §3
// explicitly calls for "strict tree; no back-edges" between city objects.
package citymodel
