// Package edges converts vector paths into clipped lists of Y-monotonic
// polylines with integer coordinates, bucketed into horizontal bands,
// ready for a scanline polygon fill.
//
// A [Builder] clips every path against a rectangle.  Parts of a path
// which run outside the rectangle on the left or right are replaced by
// vertical edges along the clip boundary, so that filling the edges
// gives the same pixels inside the rectangle as filling the original
// path.  Curves are flattened into chords within a given tolerance.
// The result is collected in a [Storage].
package edges

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
