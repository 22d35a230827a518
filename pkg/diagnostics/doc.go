// Package diagnostics provides the configurable sink spec.md §7 routes
// parse-time diagnostics through: warnings for recoverable issues
// (unknown srsDimension, a single polygon's tessellation failure) and
// errors for anything that degrades a larger unit of the document.
// Appearance targets that match no polygon, geometry or city object are
// dropped without a diagnostic. Nothing in this package is fatal — a fatal
// failure is reported as the error return of citygml.Load itself, never
// through a Sink call.
package diagnostics
