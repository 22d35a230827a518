// Package tessellate converts a planar polygon outline, with zero or more
// interior holes, into an indexed triangle-list mesh using the odd
// (even-odd) winding fill rule.
//
// The algorithm: holes are bridged into the outer contour to produce a
// single simple polygon (the classic "ear clipping with hole merging"
// technique), then ear-clipped into triangles. The GLU/OpenGL-style
// tessellator backend described in spec.md §4.1 (fan/strip/loose-triangle
// primitive emission, possible intersection vertices) is one valid way to
// satisfy the same contract; this package satisfies it without needing a
// native tessellator dependency, which the example corpus does not carry
// for any platform this module targets. See DESIGN.md for the grounding
// and the tradeoff.
package tessellate
