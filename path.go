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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Command tags one point slot of a [Path].
type Command uint8

// These are the commands which can occur in a [Path].
const (
	CmdMoveTo       Command = iota // start of a subpath
	CmdLineTo                      // on-path point, ends every segment
	CmdQuadControl                 // control point of a quadratic Bézier
	CmdCubicControl                // control point of a cubic Bézier
	CmdConicControl                // control point of a conic
	CmdConicWeight                 // conic weight, stored in X
	CmdClose                       // end of a closed subpath
)

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadControl:
		return "QuadControl"
	case CmdCubicControl:
		return "CubicControl"
	case CmdConicControl:
		return "ConicControl"
	case CmdConicWeight:
		return "ConicWeight"
	case CmdClose:
		return "Close"
	default:
		return "Command(?)"
	}
}

// Path is a sequence of drawing commands with exactly one point per command.
//
// A segment which needs more than one point occupies several slots: control
// points come first, tagged with the matching control command, and the end
// point follows, tagged CmdLineTo.  The weight of a conic sits in the X
// coordinate of a CmdConicWeight slot between the control point and the end
// point.  The point stored with CmdClose is the start of the subpath and is
// never read.
type Path struct {
	Cmds   []Command
	Points []vec.Vec2
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, CmdMoveTo)
	p.Points = append(p.Points, pt)
	return p
}

// LineTo appends a straight line to pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, CmdLineTo)
	p.Points = append(p.Points, pt)
	return p
}

// QuadTo appends a quadratic Bézier curve with control point c.
func (p *Path) QuadTo(c, pt vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, CmdQuadControl, CmdLineTo)
	p.Points = append(p.Points, c, pt)
	return p
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2.
func (p *Path) CubeTo(c1, c2, pt vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, CmdCubicControl, CmdCubicControl, CmdLineTo)
	p.Points = append(p.Points, c1, c2, pt)
	return p
}

// ConicTo appends a rational quadratic Bézier curve with control point c
// and weight w.  A weight of 1 gives an ordinary quadratic curve, weights
// below 1 give elliptical arcs and weights above 1 hyperbolic ones.
func (p *Path) ConicTo(c, pt vec.Vec2, w float64) *Path {
	p.Cmds = append(p.Cmds, CmdConicControl, CmdConicWeight, CmdLineTo)
	p.Points = append(p.Points, c, vec.Vec2{X: w}, pt)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Cmds = append(p.Cmds, CmdClose)
	p.Points = append(p.Points, p.subpathStart())
	return p
}

func (p *Path) subpathStart() vec.Vec2 {
	for i := len(p.Cmds) - 1; i >= 0; i-- {
		if p.Cmds[i] == CmdMoveTo {
			return p.Points[i]
		}
	}
	return vec.Vec2{}
}

// Reset empties the path, keeping the allocated capacity.
func (p *Path) Reset() {
	p.Cmds = p.Cmds[:0]
	p.Points = p.Points[:0]
}

// FromData converts a path from seehuhn.de/go/geom/path.
func FromData(d *path.Data) *Path {
	p := &Path{
		Cmds:   make([]Command, 0, len(d.Coords)+len(d.Cmds)),
		Points: make([]vec.Vec2, 0, len(d.Coords)+len(d.Cmds)),
	}
	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(d.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			p.LineTo(d.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			p.QuadTo(d.Coords[coordIdx], d.Coords[coordIdx+1])
			coordIdx += 2
		case path.CmdCubeTo:
			p.CubeTo(d.Coords[coordIdx], d.Coords[coordIdx+1], d.Coords[coordIdx+2])
			coordIdx += 3
		case path.CmdClose:
			p.Close()
		}
	}
	p.Cmds = slices.Clip(p.Cmds)
	p.Points = slices.Clip(p.Points)
	return p
}

// ToData converts p to a seehuhn.de/go/geom/path path.  Conics are
// approximated by quadratic curves within the given tolerance.  A conic
// with non-positive weight becomes a line, one with infinite weight the
// polyline through its control point.  Commands before the first MoveTo
// are dropped, as is a subpath's implicit Close.
func (p *Path) ToData(tolerance float64) *path.Data {
	d := &path.Data{}
	src := NewEdgeSource(p, nil)
	var quads []conicQuad
	for {
		cur, ok := src.Begin()
		if !ok {
			break
		}
		d.MoveTo(cur)

	segments:
		for {
			switch {
			case src.IsLineTo():
				cur = src.NextLineTo()
				d.LineTo(cur)
			case src.IsQuadTo():
				c, q := src.NextQuadTo()
				d.QuadTo(c, q)
				cur = q
			case src.IsCubicTo():
				c1, c2, q := src.NextCubicTo()
				d.CubeTo(c1, c2, q)
				cur = q
			case src.IsConicTo():
				c, q, w := src.NextConicTo()
				switch {
				case !(w > 0):
					d.LineTo(q)
				case math.IsInf(w, 1):
					d.LineTo(c)
					d.LineTo(q)
				default:
					quads = conicToQuads(quads[:0], conic{p0: cur, p1: c, p2: q, w: w}, tolerance)
					for _, k := range quads {
						d.QuadTo(k.pts[1], k.pts[2])
					}
				}
				cur = q
			default:
				if src.IsClose() {
					src.NextClose()
					d.Close()
				}
				break segments
			}
		}
	}
	return d
}
