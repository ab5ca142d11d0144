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

// Package testcases contains named paths for testing the edge builder.
// Every case fixes a canvas, a clip rectangle inside the canvas and the
// geometry; the tests compare fills of the clipped edges with reference
// renderings.
package testcases

import (
	"seehuhn.de/go/edges"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Canvas size and clip rectangle used by most cases.
const (
	CanvasSize = 200
)

// DefaultClip is the clip rectangle used when a case does not set one.
var DefaultClip = rect.Rect{LLx: 50, LLy: 50, URx: 150, URy: 150}

// TestCase defines a single edge building test.
type TestCase struct {
	Name      string        // lowercase a-z, 0-9 and _ only
	Path      *edges.Path   // the geometry, in user coordinates
	Width     int           // canvas width in pixels
	Height    int           // canvas height in pixels
	Clip      rect.Rect     // zero value means DefaultClip
	Rule      FillRule      // fill rule for comparisons
	CTM       matrix.Matrix // zero value means no transform
	Tolerance float64       // zero value means edges.DefaultTolerance

	// Empty is set for cases whose geometry never enters the clip
	// rectangle.  These must not produce any edges.
	Empty bool

	// Covers is set for cases which fill the whole clip rectangle.
	Covers bool
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// ClipRect returns the clip rectangle of the case.
func (tc *TestCase) ClipRect() rect.Rect {
	if tc.Clip == (rect.Rect{}) {
		return DefaultClip
	}
	return tc.Clip
}

// Transform returns the map from path coordinates to device coordinates,
// or nil if the case has no CTM.
func (tc *TestCase) Transform() edges.Transform {
	if tc.CTM == (matrix.Matrix{}) {
		return nil
	}
	return edges.MatrixTransform(tc.CTM)
}

// Tol returns the flattening tolerance of the case.
func (tc *TestCase) Tol() float64 {
	if tc.Tolerance == 0 {
		return edges.DefaultTolerance
	}
	return tc.Tolerance
}

// Build runs a builder session for the case and returns the resulting
// storage.  The storage covers the whole canvas.
func (tc *TestCase) Build(bandHeight int) *edges.Storage {
	return tc.BuildClipped(tc.ClipRect(), bandHeight)
}

// BuildClipped is like Build, but uses the given clip rectangle.
func (tc *TestCase) BuildClipped(clip rect.Rect, bandHeight int) *edges.Storage {
	store := edges.NewStorageFor(tc.Height, bandHeight)
	b := edges.NewBuilder(store, clip, tc.Tol())
	b.Transform = tc.Transform()
	b.Begin()
	b.AddPath(tc.Path)
	b.End()
	return store
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
