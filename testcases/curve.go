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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(60, 140, 100, 60, 140, 140),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "quadratic_clipped",
		Path:   quadraticCurve(20, 170, 100, -40, 180, 170),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(20, 100, 180, 100),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(60, 140, 70, 60, 130, 60, 140, 140),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "cubic_clipped",
		Path:   cubicCurve(20, 180, 20, -20, 180, -20, 180, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurve(34, 154, 34, 34, 166, 166, 166, 46),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(34, 100, 184, 19, 16, 181, 166, 100),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "cubic_cusp",
		Path:   cubicCurve(34, 154, 166, 34, 34, 34, 166, 154),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "cubic_outside_left",
		Path:   cubicCurve(10, 20, 45, 60, 0, 140, 40, 180),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
	{
		Name:   "circle",
		Path:   circle(100, 100, 40),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "circle_clipped",
		Path:   circle(100, 100, 70),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "circle_left",
		Path:   circle(40, 100, 30),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "ellipse_wide",
		Path:   ellipse(100, 100, 95, 30),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:   "arc",
		Path:   arc(100, 100, 70, 0.75),
		Width:  CanvasSize,
		Height: CanvasSize,
	},
	{
		Name:      "circle_coarse",
		Path:      circle(100, 100, 60),
		Width:     CanvasSize,
		Height:    CanvasSize,
		Tolerance: 2,
	},
	{
		Name:      "circle_fine",
		Path:      circle(100, 100, 60),
		Width:     CanvasSize,
		Height:    CanvasSize,
		Tolerance: 0.05,
	},
	{
		Name:   "cubic_degenerate",
		Path:   cubicCurve(100, 100, 100, 100, 100, 100, 100, 100),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
	{
		Name:   "quadratic_degenerate",
		Path:   quadraticCurve(60, 100, 60, 100, 140, 100),
		Width:  CanvasSize,
		Height: CanvasSize,
		Empty:  true,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *edges.Path {
	return (&edges.Path{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *edges.Path {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&edges.Path{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-90), pt(midX, midY)). // first quadratic curves up
		QuadTo(pt((midX+x2)/2, y2+90), pt(x2, y2)).     // second quadratic curves down
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *edges.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *edges.Path {
	kx := rx * kappa
	ky := ry * kappa

	return (&edges.Path{}).
		MoveTo(pt(cx+rx, cy)).                                      // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).  // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).  // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).  // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).  // bottom-right quadrant
		Close()
}

// arc builds a pie slice covering the given fraction of a circle,
// rounded to whole quadrants.  The arc starts on the right.
func arc(cx, cy, r float64, fraction float64) *edges.Path {
	k := r * kappa
	quadrants := min(max(int(fraction*4), 1), 4)

	p := (&edges.Path{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	steps := [4][3][2]float64{
		{{cx + r, cy - k}, {cx + k, cy - r}, {cx, cy - r}},
		{{cx - k, cy - r}, {cx - r, cy - k}, {cx - r, cy}},
		{{cx - r, cy + k}, {cx - k, cy + r}, {cx, cy + r}},
		{{cx + k, cy + r}, {cx + r, cy + k}, {cx + r, cy}},
	}
	for _, s := range steps[:quadrants] {
		p.CubeTo(pt(s[0][0], s[0][1]), pt(s[1][0], s[1][1]), pt(s[2][0], s[2][1]))
	}
	return p.Close()
}
