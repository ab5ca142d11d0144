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

// crossingCases have lines entering and leaving the clip rectangle.
var crossingCases = []TestCase{
	{
		Name:   "diamond_large",
		Path:   diamond(100, 100, 80),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "star_large_nonzero",
		Path:   fivePointStar(100, 105, 90),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "star_large_evenodd",
		Path:   fivePointStar(100, 105, 90),
		Width:  CanvasSize,
		Height: CanvasSize,
		Rule:   EvenOdd,
	},
	{
		Name:   "triangle_large",
		Path:   triangle(0, 190, 100, 10, 200, 190),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "hourglass",
		Path:   polygon(30, 30, 170, 170, 170, 30, 30, 170),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "vertical_bar",
		Path:   rectangle(90, 10, 110, 190),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "spiral",
		Path:   spiral(100, 100, 10, 95, 3),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
}

// cornerCases exercise lines passing near the corners of the clip
// rectangle.
var cornerCases = []TestCase{
	{
		Name:   "corner_miss",
		Path:   triangle(0, 60, 60, 0, 0, 0),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
	{
		Name:   "corner_miss_bottom_right",
		Path:   triangle(200, 140, 140, 200, 200, 200),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
	{
		Name:   "corner_cut",
		Path:   triangle(20, 100, 100, 20, 20, 20),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "corner_all",
		Path:   diamond(100, 100, 90),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "corner_to_corner",
		Path:   triangle(20, 20, 180, 180, 20, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "corner_exact",
		Path:   triangle(50, 50, 150, 150, 150, 50),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "corner_loop",
		Path:   polygon(10, 10, 190, 10, 190, 190, 10, 190, 10, 30, 30, 10),
		Width:  CanvasSize,
		Height: CanvasSize,
		Covers: true,
	},
}

// polygon builds a closed polygon from a flat list of coordinates.
func polygon(xy ...float64) *edges.Path {
	p := (&edges.Path{}).MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p.Close()
}

// spiral builds a spiral shaped polygon, which winds around the centre
// and returns along a straight line.
func spiral(cx, cy, rMin, rMax, turns float64) *edges.Path {
	const stepsPerTurn = 24
	n := int(turns * stepsPerTurn)
	p := &edges.Path{}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		r := rMin + t*(rMax-rMin)
		angle := t * turns * 2 * math.Pi
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.Close()
}
