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
	"seehuhn.de/go/edges"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(30, 100, 170, 100, 40),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(30, 30, 120, 120, 80, 80, 170, 170),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(30, 30, 120, 120, 80, 80, 170, 170),
		Width:  CanvasSize,
		Height: CanvasSize,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(100, 100, 80, 30),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "ring_left",
		Path:   ringShape(40, 100, 40, 20),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "open_subpaths",
		Path:   openSubpaths(),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(13, 13),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "move_only",
		Path:   (&edges.Path{}).MoveTo(pt(100, 100)).MoveTo(pt(120, 120)),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
}

// twoTriangles builds two separate triangles of the given size.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		Close().
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size)).
		Close()
}

// overlappingRectangles builds two rectangles with the same orientation.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *edges.Path {
	p := addRectangle(&edges.Path{}, x1a, y1a, x2a, y2a)
	return addRectangle(p, x1b, y1b, x2b, y2b)
}

// ringShape builds a square with a square hole.  The inner square has
// the opposite orientation, so that the hole is empty for both fill
// rules.
func ringShape(cx, cy, outerSize, innerSize float64) *edges.Path {
	p := addRectangle(&edges.Path{}, cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return p.
		MoveTo(pt(cx-innerSize, cy-innerSize)).
		LineTo(pt(cx-innerSize, cy+innerSize)).
		LineTo(pt(cx+innerSize, cy+innerSize)).
		LineTo(pt(cx+innerSize, cy-innerSize)).
		Close()
}

// openSubpaths builds subpaths without a final Close, some of them
// ending outside the clip rectangle.
func openSubpaths() *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(20, 60)).
		LineTo(pt(120, 60)).
		LineTo(pt(120, 90)).
		MoveTo(pt(70, 110)).
		LineTo(pt(180, 110)).
		QuadTo(pt(180, 170), pt(70, 170))
}

// manySmallShapes builds a grid of small triangles covering the canvas.
func manySmallShapes(rows, cols int) *edges.Path {
	const (
		size    = 5.0
		spacing = 15.0
	)

	p := &edges.Path{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p.MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}
