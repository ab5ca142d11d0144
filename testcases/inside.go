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

package testcases

import (
	"math"

	"seehuhn.de/go/edges"
)

var insideCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(70, 130, 100, 70, 130, 130),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(100, 100, 45),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(100, 100, 45),
		Width:  CanvasSize,
		Height: CanvasSize,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(60, 60, 140, 140),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "rectangle_on_clip",
		Path:   rectangle(50, 50, 150, 150),
		Width:  CanvasSize,
		Height: CanvasSize,
		Covers: true,
	},
	{
		Name:   "diamond",
		Path:   diamond(100, 100, 45),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "concentric_nonzero",
		Path:   concentricRectangles(100, 100, 45, 20),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "concentric_evenodd",
		Path:   concentricRectangles(100, 100, 45, 20),
		Width:  CanvasSize,
		Height: CanvasSize,
		Rule:   EvenOdd,
	},
	{
		Name:   "zigzag",
		Path:   zigzagPolygon(55, 145, 70, 130, 8),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "thin_sliver",
		Path:   triangle(60, 60, 140, 64, 60, 66),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "fractional",
		Path:   rectangle(60.3, 60.7, 139.6, 139.2),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *edges.Path {
	return addRectangle(&edges.Path{}, x1, y1, x2, y2)
}

func addRectangle(p *edges.Path, x1, y1, x2, y2 float64) *edges.Path {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *edges.Path {
	p := &edges.Path{}
	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.Close()
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}

// concentricRectangles builds two nested squares with the same
// orientation.
func concentricRectangles(cx, cy, outer, inner float64) *edges.Path {
	p := addRectangle(&edges.Path{}, cx-outer, cy-outer, cx+outer, cy+outer)
	return addRectangle(p, cx-inner, cy-inner, cx+inner, cy+inner)
}

// zigzagPolygon builds a polygon whose top and bottom sides are zigzag
// lines between x1 and x2, with n teeth each.
func zigzagPolygon(x1, x2, top, bottom float64, n int) *edges.Path {
	p := (&edges.Path{}).MoveTo(pt(x1, top))
	dx := (x2 - x1) / float64(2*n)
	for i := 1; i <= 2*n; i++ {
		y := top
		if i%2 == 1 {
			y = top + 10
		}
		p.LineTo(pt(x1+float64(i)*dx, y))
	}
	for i := 2 * n; i >= 0; i-- {
		y := bottom
		if i%2 == 1 {
			y = bottom - 10
		}
		p.LineTo(pt(x1+float64(i)*dx, y))
	}
	return p.Close()
}
