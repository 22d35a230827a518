// Package citygml drives the push-model encoding/xml.Decoder loop spec.md
// §4.4 describes: a path stack, an LOD stack, a city-object stack, and
// per-element character-data buffering, together deciding which elements
// become citymodel entities and which are filtered out by the object
// mask or LOD range. Load (and LoadFile, its file-path wrapper) together
// with Options are the package's external surface; everything else is
// internal state-machine plumbing.
package citygml
