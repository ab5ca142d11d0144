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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform maps a point from path coordinates to device coordinates.
type Transform func(vec.Vec2) vec.Vec2

// MatrixTransform returns the Transform which applies the affine map m.
func MatrixTransform(m matrix.Matrix) Transform {
	return func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
}

// EdgeSource is a read cursor over the segments of a [Path].
// All points it returns are mapped through the transform.
// The path itself is never modified.
type EdgeSource struct {
	cmds []Command
	pts  []vec.Vec2
	pos  int
	tr   Transform
}

// NewEdgeSource returns a cursor positioned at the start of p.
// If tr is nil, points are returned unchanged.
func NewEdgeSource(p *Path, tr Transform) *EdgeSource {
	s := &EdgeSource{}
	s.Reset(p, tr)
	return s
}

// Reset positions the cursor at the start of p.
func (s *EdgeSource) Reset(p *Path, tr Transform) {
	if len(p.Cmds) != len(p.Points) {
		panic(fmt.Sprintf("edges: path has %d commands but %d points",
			len(p.Cmds), len(p.Points)))
	}
	s.cmds = p.Cmds
	s.pts = p.Points
	s.pos = 0
	s.tr = tr
}

func (s *EdgeSource) apply(p vec.Vec2) vec.Vec2 {
	if s.tr == nil {
		return p
	}
	return s.tr(p)
}

// Begin skips forward to the next MoveTo and returns its point.
// The second return value is false once the path is exhausted.
func (s *EdgeSource) Begin() (vec.Vec2, bool) {
	for s.pos < len(s.cmds) {
		cmd := s.cmds[s.pos]
		s.pos++
		if cmd == CmdMoveTo {
			return s.apply(s.pts[s.pos-1]), true
		}
	}
	return vec.Vec2{}, false
}

// peek reports whether the next n slots exist and the first is tagged cmd.
func (s *EdgeSource) peek(cmd Command, n int) bool {
	return s.pos+n <= len(s.cmds) && s.cmds[s.pos] == cmd
}

// IsLineTo reports whether the next segment is a straight line.
func (s *EdgeSource) IsLineTo() bool { return s.peek(CmdLineTo, 1) }

// IsQuadTo reports whether the next segment is a quadratic Bézier curve.
func (s *EdgeSource) IsQuadTo() bool { return s.peek(CmdQuadControl, 2) }

// IsCubicTo reports whether the next segment is a cubic Bézier curve.
func (s *EdgeSource) IsCubicTo() bool { return s.peek(CmdCubicControl, 3) }

// IsConicTo reports whether the next segment is a conic.
func (s *EdgeSource) IsConicTo() bool { return s.peek(CmdConicControl, 3) }

// IsClose reports whether the next command closes the subpath.
func (s *EdgeSource) IsClose() bool { return s.peek(CmdClose, 1) }

// NextLineTo consumes a straight line and returns its end point.
// It panics if the next segment is not a line.
func (s *EdgeSource) NextLineTo() vec.Vec2 {
	if !s.IsLineTo() {
		s.misuse("NextLineTo")
	}
	p := s.apply(s.pts[s.pos])
	s.pos++
	return p
}

// NextQuadTo consumes a quadratic Bézier curve and returns its
// control point and end point.
// It panics if the next segment is not a quadratic curve.
func (s *EdgeSource) NextQuadTo() (p1, p2 vec.Vec2) {
	if !s.IsQuadTo() {
		s.misuse("NextQuadTo")
	}
	p1 = s.apply(s.pts[s.pos])
	p2 = s.apply(s.pts[s.pos+1])
	s.pos += 2
	return p1, p2
}

// NextCubicTo consumes a cubic Bézier curve and returns its two
// control points and its end point.
// It panics if the next segment is not a cubic curve.
func (s *EdgeSource) NextCubicTo() (p1, p2, p3 vec.Vec2) {
	if !s.IsCubicTo() {
		s.misuse("NextCubicTo")
	}
	p1 = s.apply(s.pts[s.pos])
	p2 = s.apply(s.pts[s.pos+1])
	p3 = s.apply(s.pts[s.pos+2])
	s.pos += 3
	return p1, p2, p3
}

// NextConicTo consumes a conic and returns its control point, its end
// point and its weight.  The weight is not transformed.
// It panics if the next segment is not a conic.
func (s *EdgeSource) NextConicTo() (p1, p2 vec.Vec2, w float64) {
	if !s.IsConicTo() {
		s.misuse("NextConicTo")
	}
	p1 = s.apply(s.pts[s.pos])
	w = s.pts[s.pos+1].X
	p2 = s.apply(s.pts[s.pos+2])
	s.pos += 3
	return p1, p2, w
}

// NextClose consumes a CmdClose.
// It panics if the next command is not a close.
func (s *EdgeSource) NextClose() {
	if !s.IsClose() {
		s.misuse("NextClose")
	}
	s.pos++
}

// MaybeNextLineTo consumes a straight line if one comes next.
func (s *EdgeSource) MaybeNextLineTo() (vec.Vec2, bool) {
	if !s.IsLineTo() {
		return vec.Vec2{}, false
	}
	return s.NextLineTo(), true
}

// MaybeNextQuadTo consumes a quadratic Bézier curve if one comes next.
func (s *EdgeSource) MaybeNextQuadTo() (p1, p2 vec.Vec2, ok bool) {
	if !s.IsQuadTo() {
		return p1, p2, false
	}
	p1, p2 = s.NextQuadTo()
	return p1, p2, true
}

// MaybeNextCubicTo consumes a cubic Bézier curve if one comes next.
func (s *EdgeSource) MaybeNextCubicTo() (p1, p2, p3 vec.Vec2, ok bool) {
	if !s.IsCubicTo() {
		return p1, p2, p3, false
	}
	p1, p2, p3 = s.NextCubicTo()
	return p1, p2, p3, true
}

// MaybeNextConicTo consumes a conic if one comes next.
func (s *EdgeSource) MaybeNextConicTo() (p1, p2 vec.Vec2, w float64, ok bool) {
	if !s.IsConicTo() {
		return p1, p2, 0, false
	}
	p1, p2, w = s.NextConicTo()
	return p1, p2, w, true
}

func (s *EdgeSource) misuse(method string) {
	what := "end of path"
	if s.pos < len(s.cmds) {
		what = s.cmds[s.pos].String()
	}
	panic(fmt.Sprintf("edges: %s called at slot %d (%s)", method, s.pos, what))
}
