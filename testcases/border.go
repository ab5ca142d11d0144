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

// leftCases have geometry to the left of the clip rectangle, which must
// be represented by edges along the left clip boundary.
var leftCases = []TestCase{
	{
		Name:   "left_outside",
		Path:   triangle(10, 20, 40, 100, 10, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
	{
		Name:   "left_straddle",
		Path:   rectangle(20, 80, 120, 120),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "left_tall",
		Path:   rectangle(20, 20, 120, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		// Only a small tip reaches into the clip rectangle, so the fill
		// depends on the left border edge over the full height of the tip.
		Name:   "left_overhang",
		Path:   triangle(10, 20, 60, 100, 10, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "left_sawtooth",
		Path:   sawtooth(10, 45, 30, 170, 6, 110),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "left_reversed",
		Path:   reversedRectangle(20, 70, 90, 130),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "left_spike",
		Path:   triangle(100, 60, 0, 100, 100, 140),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
}

// rightCases mirror leftCases at the right clip boundary.
var rightCases = []TestCase{
	{
		Name:   "right_outside",
		Path:   triangle(190, 20, 160, 100, 190, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
	{
		Name:   "right_straddle",
		Path:   rectangle(80, 80, 180, 120),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "right_tall",
		Path:   rectangle(80, 20, 180, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "right_sawtooth",
		Path:   sawtooth(190, 155, 30, 170, 6, 90),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "right_spike",
		Path:   triangle(100, 60, 200, 100, 100, 140),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "wide",
		Path:   rectangle(20, 80, 180, 120),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "around",
		Path:   rectangle(20, 20, 180, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
		Covers: true,
	},
	{
		Name:   "above",
		Path:   rectangle(20, 10, 180, 40),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
}

// sawtooth builds a polygon with a straight side at x = base and a
// sawtooth side whose teeth alternate between x = base and x = tip.
// The polygon is closed through x = far.
func sawtooth(base, tip, y1, y2 float64, n int, far float64) *edges.Path {
	p := (&edges.Path{}).MoveTo(pt(far, y1)).LineTo(pt(base, y1))
	dy := (y2 - y1) / float64(2*n)
	for i := 1; i <= 2*n; i++ {
		x := base
		if i%2 == 1 {
			x = tip
		}
		p.LineTo(pt(x, y1+float64(i)*dy))
	}
	return p.LineTo(pt(far, y2)).Close()
}

// reversedRectangle builds a rectangle with the opposite orientation to
// rectangle.
func reversedRectangle(x1, y1, x2, y2 float64) *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x1, y2)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x2, y1)).
		Close()
}
