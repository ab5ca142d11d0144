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

var conicCases = []TestCase{
	{
		Name:   "conic_circle",
		Path:   conicCircle(100, 100, 40),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "conic_circle_clipped",
		Path:   conicCircle(100, 100, 70),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "conic_parabola",
		Path:   conicCurve(60, 140, 100, 60, 140, 140, 1),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "conic_heavy",
		Path:   conicCurve(20, 170, 100, 20, 180, 170, 5),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "conic_light",
		Path:   conicCurve(20, 170, 100, -60, 180, 170, 0.2),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "conic_zero_weight",
		Path:   conicCurve(60, 140, 100, 20, 140, 60, 0).LineTo(pt(140, 140)).Close(),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "conic_outside_right",
		Path:   conicCurve(160, 20, 200, 100, 160, 180, 0.7),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
}

// conicCurve builds a shape bounded by a conic and the line back to the
// start.  The path is left open; filling closes it.
func conicCurve(x1, y1, cx, cy, x2, y2, w float64) *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(x1, y1)).
		ConicTo(pt(cx, cy), pt(x2, y2), w)
}

// conicCircle builds an exact circle from four quarter circle conics.
func conicCircle(cx, cy, r float64) *edges.Path {
	w := math.Sqrt2 / 2
	return (&edges.Path{}).
		MoveTo(pt(cx+r, cy)).
		ConicTo(pt(cx+r, cy-r), pt(cx, cy-r), w).
		ConicTo(pt(cx-r, cy-r), pt(cx-r, cy), w).
		ConicTo(pt(cx-r, cy+r), pt(cx, cy+r), w).
		ConicTo(pt(cx+r, cy+r), pt(cx+r, cy), w).
		Close()
}
