// Package vecmath provides the small set of numeric vector types the
// ingestion pipeline needs: 2-D texture coordinates, 3-D points/normals,
// and 4-D homogeneous points. It deliberately stops there — matrix and
// quaternion support belongs to the downstream converters, which are out
// of scope for this module.
package vecmath
