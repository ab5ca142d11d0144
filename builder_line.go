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
	"seehuhn.de/go/geom/vec"
)

// lineTo adds the line from the current point to p1, together with all
// lines which directly follow it in the path.
func (b *Builder) lineTo(s *session, p1 vec.Vec2) {
	c1 := b.outcode(p1)
	for {
		switch lineStateOf(s.code, c1) {
		case stateInside:
			b.appendLine(s, s.p0, p1)
		case stateCrossing:
			b.crossLine(s, p1, c1)
		case stateBorder:
			var more bool
			p1, c1, more = b.followBorder(s, p1, c1)
			if !more {
				return
			}
			continue
		}

		s.p0, s.code = p1, c1
		var ok bool
		p1, ok = b.src.MaybeNextLineTo()
		if !ok {
			return
		}
		c1 = b.outcode(p1)
	}
}

// followBorder consumes a run of lines which stay outside the clip
// rectangle on one side.  The current point becomes the end of the run.
// If the path continues with a line which leaves the side, that line's
// end point is returned with true.
func (b *Builder) followBorder(s *session, p1 vec.Vec2, c1 Outcode) (vec.Vec2, Outcode, bool) {
	b.closeEdge(s)
	side := sideOf(s.code & c1)
	y0 := b.clampY(s.p0.Y)
	for {
		s.p0, s.code = p1, c1

		next, ok := b.src.MaybeNextLineTo()
		var c Outcode
		if ok {
			c = b.outcode(next)
			if c&side != 0 {
				p1, c1 = next, c
				continue
			}
		}

		b.accumulate(s, side, y0, b.clampY(s.p0.Y))
		return next, c, ok
	}
}

// segment adds the single line from the current point to p1.
func (b *Builder) segment(s *session, p1 vec.Vec2) {
	c1 := b.outcode(p1)
	switch lineStateOf(s.code, c1) {
	case stateInside:
		b.appendLine(s, s.p0, p1)
	case stateBorder:
		b.closeEdge(s)
		b.accumulate(s, sideOf(s.code&c1), b.clampY(s.p0.Y), b.clampY(p1.Y))
	case stateCrossing:
		b.crossLine(s, p1, c1)
	}
	s.p0, s.code = p1, c1
}

// crossLine clips the line from the current point to p1, where the
// outcodes of the end points have no bit in common.
func (b *Builder) crossLine(s *session, p1 vec.Vec2, c1 Outcode) {
	p0, c0 := s.p0, s.code

	from := p0
	if c0 != 0 {
		var c Outcode
		from, c = b.boundaryPoint(p0, c0, p1)
		if c != 0 {
			// The line passes the clip rectangle without entering it.
			b.accumulateAt(s, from.X, b.clampY(p0.Y), b.clampY(p1.Y))
			return
		}
		b.closeEdge(s)
		b.accumulateAt(s, from.X, b.clampY(p0.Y), b.clampY(from.Y))
	}

	to := p1
	if c1 != 0 {
		to, _ = b.boundaryPoint(p1, c1, p0)
	}
	b.appendLine(s, from, to)

	if c1 != 0 {
		b.closeEdge(s)
		b.accumulateAt(s, to.X, b.clampY(to.Y), b.clampY(p1.Y))
	}
}

// boundaryPoint returns the point where the line from p towards q
// meets the part of the clip boundary selected by c, the outcode of p,
// together with the outcode of this point.  For corner outcodes the
// vertical boundary is tried first.  If the point found there is still
// outside in the vertical direction named by c, the horizontal boundary
// is used instead.  A non-zero outcode in the result means that the line
// misses the clip rectangle.
func (b *Builder) boundaryPoint(p vec.Vec2, c Outcode, q vec.Vec2) (vec.Vec2, Outcode) {
	d := q.Sub(p)

	var r vec.Vec2
	switch {
	case c&OutLeft != 0:
		r = atX(p, d, b.clip.LLx)
	case c&OutRight != 0:
		r = atX(p, d, b.clip.URx)
	case c&OutTop != 0:
		r = atY(p, d, b.clip.LLy)
	default:
		r = atY(p, d, b.clip.URy)
	}

	if c&(OutLeft|OutRight) != 0 {
		switch {
		case c&OutTop != 0 && r.Y < b.clip.LLy:
			r = atY(p, d, b.clip.LLy)
		case c&OutBottom != 0 && r.Y > b.clip.URy:
			r = atY(p, d, b.clip.URy)
		}
	}

	return r, b.outcode(r)
}

func atX(p, d vec.Vec2, x float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: p.Y + (x-p.X)*d.Y/d.X}
}

func atY(p, d vec.Vec2, y float64) vec.Vec2 {
	return vec.Vec2{X: p.X + (y-p.Y)*d.X/d.Y, Y: y}
}

func (b *Builder) appendLine(s *session, from, to vec.Vec2) {
	b.extend(s, b.snap(from), b.snap(to))
}

// extend adds the snapped line from a to c to the open edge, starting a
// new edge if there is none, if the line does not continue it, or if
// the direction changes.
func (b *Builder) extend(s *session, a, c EdgePoint) {
	var dir Direction
	switch {
	case a.Y == c.Y:
		// Horizontal lines do not start an edge, but an open edge
		// follows them, so that it can continue afterwards.
		if s.open && a != c && s.edge.Last() == a {
			s.edge.Points = append(s.edge.Points, c)
		}
		return
	case a.Y < c.Y:
		dir = Descending
	default:
		dir = Ascending
	}

	if s.open && s.edge.Dir == dir && s.edge.Last() == a {
		s.edge.Points = append(s.edge.Points, c)
		return
	}

	b.closeEdge(s)
	s.edge.Reset(dir)
	s.edge.Points = append(s.edge.Points, a, c)
	s.open = true
}

// accumulateAt adds exterior travel from y0 to y1 to the border run on
// the side where x lies.  Travel at an x strictly between the vertical
// clip boundaries is dropped.
func (b *Builder) accumulateAt(s *session, x, y0, y1 float64) {
	switch {
	case x <= b.clip.LLx:
		b.accumulate(s, OutLeft, y0, y1)
	case x >= b.clip.URx:
		b.accumulate(s, OutRight, y0, y1)
	}
}

// accumulate adds exterior travel from y0 to y1 to the border run of
// the given side.  Travel which continues the pending run extends it.
// Otherwise the pending run is written out as an edge first.
func (b *Builder) accumulate(s *session, side Outcode, y0, y1 float64) {
	var run *borderRun
	var x float64
	switch side {
	case OutLeft:
		run, x = &s.left, b.clip.LLx
	case OutRight:
		run, x = &s.right, b.clip.URx
	default:
		return
	}

	if y0 == y1 {
		return
	}
	if run.y1 == y0 {
		run.y1 = y1
		return
	}
	b.flushBorder(s, run, x)
	run.y0, run.y1 = y0, y1
}

// flushBorder writes the border run as a vertical edge at x.
func (b *Builder) flushBorder(s *session, run *borderRun, x float64) {
	if run.y0 == run.y1 {
		return
	}
	a := b.snap(vec.Vec2{X: x, Y: run.y0})
	c := b.snap(vec.Vec2{X: x, Y: run.y1})
	run.y0 = run.y1
	if a.Y == c.Y {
		return
	}

	dir := Descending
	if c.Y < a.Y {
		dir = Ascending
	}
	pts := [2]EdgePoint{a, c}
	b.emit(s, &EdgeVector{Points: pts[:], Dir: dir})
}
