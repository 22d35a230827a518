// Package appearance models CityGML surface appearances — materials and
// textures — and the deferred resolver that binds them onto geometry and
// polygon ids discovered later in the document. It is the Go rendering of
// spec.md §4.3, generalizing the teacher's content-placement pass
// (pkg/content.ContentPass: a stage that associates generated data to
// graph node ids) to a pure id → appearance / id → texture-coordinate
// lookup with no randomness involved.
package appearance
