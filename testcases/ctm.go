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
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 40, 40),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 300, 300),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.Scale(0.5, 0.5).Translate(25, 25),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-50, -50, 50, 50),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.RotateDeg(45).Translate(100, 100),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-80, -30, 80, 30),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.RotateDeg(5).Translate(100, 100),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 40),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.Scale(2, 1).Translate(100, 100),
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-40, -40, 40, 40),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(100, 100),
	},
	{
		Name:   "flip_y",
		Path:   triangle(20, 20, 100, 180, 180, 20),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 200},
	},
	{
		Name:   "conic_circle_sheared",
		Path:   conicCircle(0, 0, 50),
		Width:  CanvasSize,
		Height: CanvasSize,
		CTM:    matrix.Matrix{1, 0, 0.4, 1, 0, 0}.RotateDeg(30).Translate(100, 100),
	},
}
