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
	"math"

	"seehuhn.de/go/geom/vec"
)

func (b *Builder) quadTo(s *session, p1, p2 vec.Vec2) {
	c1, c2 := b.outcode(p1), b.outcode(p2)
	if common := s.code & c1 & c2; common != 0 {
		b.exterior(s, p2, c2, common)
		return
	}
	inside := s.code|c1|c2 == 0

	var pieces [2][3]vec.Vec2
	n := chopQuadY([3]vec.Vec2{s.p0, p1, p2}, &pieces)
	for i := range n {
		b.quad.begin(pieces[i], b.tolerance, 0)
		b.flatten(s, &b.quad, inside)
	}
	s.p0, s.code = p2, c2
}

func (b *Builder) cubicTo(s *session, p1, p2, p3 vec.Vec2) {
	c1, c2, c3 := b.outcode(p1), b.outcode(p2), b.outcode(p3)
	if common := s.code & c1 & c2 & c3; common != 0 {
		b.exterior(s, p3, c3, common)
		return
	}
	inside := s.code|c1|c2|c3 == 0

	var pieces [3][4]vec.Vec2
	n := chopCubicY([4]vec.Vec2{s.p0, p1, p2, p3}, &pieces)
	for i := range n {
		b.cubic.begin(pieces[i], b.tolerance)
		b.flatten(s, &b.cubic, inside)
	}
	s.p0, s.code = p3, c3
}

// conicTo adds a rational quadratic curve with control point weight w.
// A weight which is not positive turns the curve into the line p0-p2,
// an infinite weight into the polyline p0-p1-p2.
//
// Half of the tolerance goes to the approximation by quads, the other
// half to flattening the quads.  Quads carry their bisection depth into
// the flattener, so that one conic never yields more chords than one
// Bézier curve.
func (b *Builder) conicTo(s *session, p1, p2 vec.Vec2, w float64) {
	switch {
	case !(w > 0):
		b.segment(s, p2)
		return
	case math.IsInf(w, 1):
		b.segment(s, p1)
		b.segment(s, p2)
		return
	}

	c1, c2 := b.outcode(p1), b.outcode(p2)
	if common := s.code & c1 & c2; common != 0 {
		b.exterior(s, p2, c2, common)
		return
	}
	inside := s.code|c1|c2 == 0

	b.quads = conicToQuads(b.quads[:0], conic{p0: s.p0, p1: p1, p2: p2, w: w}, b.tolerance/2)
	var pieces [2][3]vec.Vec2
	for _, q := range b.quads {
		n := chopQuadY(q.pts, &pieces)
		for i := range n {
			b.quad.begin(pieces[i], b.tolerance, q.depth)
			b.flatten(s, &b.quad, inside)
		}
	}
	s.p0, s.code = p2, c2
}

// exterior handles a curve whose control points all lie outside the
// clip rectangle, beyond one common boundary.  By the convex hull
// property the curve does not enter the clip rectangle, and its only
// contribution is the travel between its end points along that
// boundary.
func (b *Builder) exterior(s *session, p vec.Vec2, c, common Outcode) {
	b.closeEdge(s)
	b.accumulate(s, sideOf(common), b.clampY(s.p0.Y), b.clampY(p.Y))
	s.p0, s.code = p, c
}

// flatten converts a Y-monotonic curve into chords.  If inside is set,
// the curve lies within the clip rectangle and the chords go straight
// into a single edge.  Otherwise every chord is clipped like a line.
func (b *Builder) flatten(s *session, c monoCurve, inside bool) {
	if !inside {
		flattenMono(c, func(q vec.Vec2) {
			b.segment(s, q)
		})
		return
	}

	b.closeEdge(s)
	e := &s.edge
	e.Reset(c.direction())
	e.Points = append(e.Points, b.snap(c.first()))
	flattenMono(c, func(q vec.Vec2) {
		if p := b.snap(q); p != e.Last() {
			e.Points = append(e.Points, p)
		}
	})
	if e.Valid() {
		b.emit(s, e)
	}
}
