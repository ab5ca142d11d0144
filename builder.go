// seehuhn.de/go/edges - clipped edge lists for scanline rasterisers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package edges

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Default values for builder parameters.
const (
	// DefaultTolerance is the default curve flattening tolerance in
	// device pixels.
	DefaultTolerance = 0.25

	// DefaultBandHeight is the default height of a storage band in
	// device pixels.
	DefaultBandHeight = 32
)

// Builder converts paths into clipped, Y-monotonic edges with integer
// coordinates, and stores them in a [Storage].
//
// Geometry outside the clip rectangle is removed.  Where the removed
// part of a path lies to the left or to the right of the clip rectangle,
// it is replaced by vertical edges along the clip boundary, so that a
// scanline fill of the edges gives the same result inside the clip
// rectangle as filling the original path.  Open subpaths are closed
// implicitly.
//
// Calls to [Builder.AddPath] must be bracketed by [Builder.Begin] and
// [Builder.End].  The caller creates one instance and can reuse it for
// many sessions; internal buffers are kept between sessions.
type Builder struct {
	// Transform maps path coordinates to device coordinates.
	// If nil, paths are given in device coordinates.
	Transform Transform

	store     *Storage
	clip      rect.Rect
	tolerance float64

	// clip bounds, rounded inwards to integers
	xMin, xMax, yMin, yMax float64

	src   EdgeSource
	sess  session
	quad  monoQuad
	cubic monoCubic
	quads []conicQuad
}

// session holds everything which lives between Begin and End.
type session struct {
	active bool

	p0    vec.Vec2 // current point, in device coordinates
	code  Outcode  // outcode of p0
	start vec.Vec2 // start of the current subpath

	edge EdgeVector // the open edge, valid if open is set
	open bool

	left, right borderRun

	bbox  Box
	edges int
}

// borderRun is pending travel along a vertical clip boundary,
// from y0 to y1.
type borderRun struct {
	y0, y1 float64
}

// NewBuilder returns a builder which adds edges to store, clipped to clip.
// Curves are flattened with the given tolerance, in device pixels.
//
// Clip coordinates should be integers; otherwise the clip rectangle is
// rounded inwards when edge coordinates are snapped to the pixel grid.
// NewBuilder panics if clip is not a valid rectangle.
func NewBuilder(store *Storage, clip rect.Rect, tolerance float64) *Builder {
	b := &Builder{}
	b.Reset(store, clip, tolerance)
	return b
}

// Reset rebinds the builder to a new storage, clip rectangle and
// tolerance.  Internal buffers are kept.  The Transform is cleared.
func (b *Builder) Reset(store *Storage, clip rect.Rect, tolerance float64) {
	if b.sess.active {
		panic("edges: Reset called during a session")
	}
	if store == nil {
		panic("edges: nil storage")
	}
	if !ValidClip(clip) {
		panic(fmt.Sprintf("edges: invalid clip rectangle [%g,%g]×[%g,%g]",
			clip.LLx, clip.URx, clip.LLy, clip.URy))
	}

	b.Transform = nil
	b.store = store
	b.clip = clip
	b.tolerance = tolerance
	b.xMin = math.Ceil(clip.LLx)
	b.xMax = math.Floor(clip.URx)
	b.yMin = math.Ceil(clip.LLy)
	b.yMax = math.Floor(clip.URy)
}

// Storage returns the storage the builder writes to.
func (b *Builder) Storage() *Storage { return b.store }

// Clip returns the clip rectangle.
func (b *Builder) Clip() rect.Rect { return b.clip }

// Tolerance returns the curve flattening tolerance.
func (b *Builder) Tolerance() float64 { return b.tolerance }

// SetTolerance changes the curve flattening tolerance.
// It must not be called between Begin and End.
//
// A tolerance which is not positive splits every curve until the depth
// limit is reached, giving 2^16 chords per monotonic piece.  Conics share
// this budget among their quadratic pieces.
func (b *Builder) SetTolerance(tolerance float64) {
	if b.sess.active {
		panic("edges: SetTolerance called during a session")
	}
	b.tolerance = tolerance
}

// Begin starts a new session.
func (b *Builder) Begin() {
	s := &b.sess
	if s.active {
		panic("edges: Begin called twice")
	}
	s.active = true
	s.open = false
	s.left = borderRun{y0: b.clip.LLy, y1: b.clip.LLy}
	s.right = s.left
	s.bbox = EmptyBox()
	s.edges = 0
}

// End finishes the session.  Pending border runs are written to the
// storage, and the bounding box of all edges of the session is merged
// into the storage's bounding box.
func (b *Builder) End() {
	s := &b.sess
	if !s.active {
		panic("edges: End called without Begin")
	}
	b.closeEdge(s)
	b.flushBorder(s, &s.left, b.clip.LLx)
	b.flushBorder(s, &s.right, b.clip.URx)
	b.store.BBox = b.store.BBox.Union(s.bbox)
	s.active = false

	Logger().Debug("edges: session done", "edges", s.edges, "bbox", s.bbox.String())
}

// AddPath adds the edges of all subpaths of p.
// The return value is false if p is nil or contains no subpath.
// Mismatched command and point slices cause a panic.
func (b *Builder) AddPath(p *Path) bool {
	if p == nil {
		return false
	}
	s := &b.sess
	if !s.active {
		panic("edges: AddPath called outside Begin/End")
	}

	b.src.Reset(p, b.Transform)
	found := false
	for {
		p0, ok := b.src.Begin()
		if !ok {
			break
		}
		found = true
		b.subpath(s, p0)
	}
	return found
}

// subpath processes the segments following a MoveTo to p0, up to and
// including the end of the subpath.
func (b *Builder) subpath(s *session, p0 vec.Vec2) {
	s.start = p0
	s.p0, s.code = p0, b.outcode(p0)
	for {
		switch {
		case b.src.IsLineTo():
			b.lineTo(s, b.src.NextLineTo())
		case b.src.IsQuadTo():
			p1, p2 := b.src.NextQuadTo()
			b.quadTo(s, p1, p2)
		case b.src.IsCubicTo():
			p1, p2, p3 := b.src.NextCubicTo()
			b.cubicTo(s, p1, p2, p3)
		case b.src.IsConicTo():
			p1, p2, w := b.src.NextConicTo()
			b.conicTo(s, p1, p2, w)
		default:
			if b.src.IsClose() {
				b.src.NextClose()
			}
			b.closeSubpath(s)
			return
		}
	}
}

func (b *Builder) closeSubpath(s *session) {
	if s.p0 != s.start {
		b.segment(s, s.start)
	}
	b.closeEdge(s)
}

// closeEdge writes the open edge, if any, to the storage.
// Trailing horizontal steps are dropped.
func (b *Builder) closeEdge(s *session) {
	if !s.open {
		return
	}
	s.open = false

	e := &s.edge
	n := len(e.Points)
	for n > 2 && e.Points[n-2].Y == e.Points[n-1].Y {
		n--
	}
	e.Points = e.Points[:n]
	if e.Valid() {
		b.emit(s, e)
	}
}

func (b *Builder) emit(s *session, e *EdgeVector) {
	b.store.Append(e)
	s.bbox = s.bbox.addEdge(e)
	s.edges++
}

func (b *Builder) outcode(p vec.Vec2) Outcode {
	return OutcodeOf(p, b.clip)
}

// snap rounds p to the integer grid, inside the clip rectangle.
func (b *Builder) snap(p vec.Vec2) EdgePoint {
	return EdgePoint{
		X: snapCoord(p.X, b.xMin, b.xMax),
		Y: snapCoord(p.Y, b.yMin, b.yMax),
	}
}

func snapCoord(v, lo, hi float64) int32 {
	v = math.Round(v)
	if v < lo {
		v = lo
	}
	if !(v <= hi) {
		v = hi
	}
	return int32(v)
}

func (b *Builder) clampY(y float64) float64 {
	if y < b.clip.LLy {
		return b.clip.LLy
	}
	if !(y <= b.clip.URy) {
		return b.clip.URy
	}
	return y
}
