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

package edges_test

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/vector"

	"seehuhn.de/go/edges"
	"seehuhn.de/go/edges/internal/scanfill"
	"seehuhn.de/go/edges/testcases"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// noClip is large enough that no test case gets clipped.
var noClip = rect.Rect{LLx: -1000, LLy: -1000, URx: 1200, URy: 1200}

// TestAgainstReference fills the clipped edges of every test case and
// compares the result inside the clip rectangle with two references:
// the fill of the unclipped edges, and x/image/vector coverage
// thresholded at one half.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				clip := tc.ClipRect()
				r := image.Rect(int(clip.LLx), int(clip.LLy), int(clip.URx), int(clip.URy))

				f := &scanfill.Filler{}
				if tc.Rule == testcases.EvenOdd {
					f.Rule = scanfill.EvenOdd
				}

				store := tc.Build(edges.DefaultBandHeight)
				checkContained(t, store, clip)
				actual := f.Mask(store, r)

				switch {
				case tc.Empty:
					if n := store.Len(); n != 0 {
						t.Errorf("got %d edges, want none", n)
					}
					return
				case tc.Covers:
					if n := f.Count(store, r); n != r.Dx()*r.Dy() {
						t.Errorf("got %d filled pixels, want %d", n, r.Dx()*r.Dy())
					}
				}

				unclipped := f.Mask(tc.BuildClipped(noClip, edges.DefaultBandHeight), r)
				if err := compareNearby(name+"_unclipped", unclipped, actual, 2); err != nil {
					t.Error(err)
				}
				slack := 2 * boundaryLength(store, clip)
				if d := countSet(unclipped) - countSet(actual); math.Abs(float64(d)) > slack {
					t.Errorf("filled pixels differ by %d from the unclipped fill (max allowed: %.0f)", d, slack)
				}

				if tc.Rule == testcases.NonZero {
					ref := vectorMask(tc, r)
					if err := compareMasks(name+"_vector", ref, actual, 10); err != nil {
						t.Error(err)
					}
				}
			})
		}
	}
}

// checkContained verifies that all edge points lie in the clip rectangle
// and that every edge is monotonic in its direction.
func checkContained(t *testing.T, store *edges.Storage, clip rect.Rect) {
	t.Helper()
	for band, e := range store.All() {
		if !e.Valid() {
			t.Errorf("band %d: invalid edge %v", band, e.Points)
			continue
		}
		if want := store.BandID(e.MinY()); band != want {
			t.Errorf("edge %v filed in band %d, want %d", e.Points, band, want)
		}
		for i, p := range e.Points {
			x, y := float64(p.X), float64(p.Y)
			if x < clip.LLx || x > clip.URx || y < clip.LLy || y > clip.URy {
				t.Errorf("edge point %v outside clip %v", p, clip)
			}
			if i == 0 {
				continue
			}
			dy := p.Y - e.Points[i-1].Y
			if e.Dir == edges.Descending && dy < 0 || e.Dir == edges.Ascending && dy > 0 {
				t.Errorf("%s edge not monotonic: %v", e.Dir, e.Points)
				break
			}
		}
	}
}

// vectorMask renders a test case with x/image/vector and thresholds the
// coverage at 50%.
func vectorMask(tc testcases.TestCase, r image.Rectangle) *image.Gray {
	tr := tc.Transform()
	if tr == nil {
		tr = func(p vec.Vec2) vec.Vec2 { return p }
	}

	z := vector.NewRasterizer(tc.Width, tc.Height)
	open := false
	for cmd, pts := range tc.Path.ToData(0.01).Iter() {
		q := make([]vec.Vec2, len(pts))
		for i, p := range pts {
			q[i] = tr(p)
		}
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(q[0].X), float32(q[0].Y))
			open = true
		case path.CmdLineTo:
			z.LineTo(float32(q[0].X), float32(q[0].Y))
		case path.CmdQuadTo:
			z.QuadTo(float32(q[0].X), float32(q[0].Y), float32(q[1].X), float32(q[1].Y))
		case path.CmdCubeTo:
			z.CubeTo(float32(q[0].X), float32(q[0].Y), float32(q[1].X), float32(q[1].Y),
				float32(q[2].X), float32(q[2].Y))
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	cov := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

	res := image.NewGray(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if cov.AlphaAt(x, y).A >= 128 {
				res.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return res
}

// compareNearby fails if a pixel of actual differs from expected, unless
// expected has the same value within Chebyshev distance radius.  Clipping
// moves chord end points by less than a pixel, so the two fills may only
// disagree next to an edge.
func compareNearby(name string, expected, actual *image.Gray, radius int) error {
	b := expected.Bounds()
	bad := 0
	var first image.Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := actual.GrayAt(x, y)
			if expected.GrayAt(x, y) == v || hasNearby(expected, x, y, radius, v) {
				continue
			}
			if bad == 0 {
				first = image.Pt(x, y)
			}
			bad++
		}
	}
	if bad > 0 {
		_ = writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d pixels differ away from any edge, first at %v", bad, first)
	}
	return nil
}

func hasNearby(img *image.Gray, x, y, radius int, v color.Gray) bool {
	r := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(img.Bounds())
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			if img.GrayAt(xx, yy) == v {
				return true
			}
		}
	}
	return false
}

func countSet(img *image.Gray) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				n++
			}
		}
	}
	return n
}

// boundaryLength sums the lengths of all edge segments which start or end
// on the clip boundary, not counting segments along the boundary.  These
// are the segments which clipping may tilt by up to one pixel.
func boundaryLength(store *edges.Storage, clip rect.Rect) float64 {
	llx, urx := int32(math.Ceil(clip.LLx)), int32(math.Floor(clip.URx))
	lly, ury := int32(math.Ceil(clip.LLy)), int32(math.Floor(clip.URy))
	onX := func(x int32) bool { return x == llx || x == urx }
	onY := func(y int32) bool { return y == lly || y == ury }

	total := 0.0
	for _, e := range store.All() {
		for i := 1; i < len(e.Points); i++ {
			a, b := e.Points[i-1], e.Points[i]
			if a.X == b.X && onX(a.X) {
				continue
			}
			if onX(a.X) || onY(a.Y) || onX(b.X) || onY(b.Y) {
				total += math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
			}
		}
	}
	return total
}

// compareMasks fails if more than maxDiffPercent of the pixels differ.
func compareMasks(name string, expected, actual *image.Gray, maxDiffPercent int) error {
	b := expected.Bounds()
	total := b.Dx() * b.Dy()

	diffCount := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if expected.GrayAt(x, y) != actual.GrayAt(x, y) {
				diffCount++
			}
		}
	}

	maxAllowed := total * maxDiffPercent / 100
	if diffCount > maxAllowed {
		_ = writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d pixels differ (max allowed: %d)", diffCount, maxAllowed)
	}
	return nil
}

func writeDiffImage(name string, expected, actual *image.Gray) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// Create 3-panel image: actual (left), diff (middle), reference (right)
	b := expected.Bounds()
	w, h := b.Dx(), b.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	draw.Draw(img, image.Rect(0, 0, w, h), actual, b.Min, draw.Src)
	draw.Draw(img, image.Rect(2*w, 0, 3*w, h), expected, b.Min, draw.Src)
	for y := range h {
		for x := range w {
			e := expected.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			a := actual.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			var c color.RGBA
			switch {
			case e > a: // missing pixels in green
				c = color.RGBA{G: e - a, A: 255}
			case a > e: // extra pixels in red
				c = color.RGBA{R: a - e, A: 255}
			default:
				c = color.RGBA{A: 255}
			}
			img.SetRGBA(x+w, y, c)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".bmp"))
	if err != nil {
		return err
	}
	err = bmp.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestWindingOutsideBox checks that geometry to the left of the clip
// rectangle changes the winding number of every row it spans, and that
// geometry on the right does not affect the fill.
func TestWindingOutsideBox(t *testing.T) {
	clip := rect.Rect{LLx: 10, LLy: 0, URx: 20, URy: 10}
	r := image.Rect(10, 0, 20, 10)

	// A rectangle from x=0 to x=30 covering rows 2 to 6.  Inside the clip
	// rectangle only the left and right border edges remain.
	p := (&edges.Path{}).
		MoveTo(vec.Vec2{X: 0, Y: 2}).
		LineTo(vec.Vec2{X: 30, Y: 2}).
		LineTo(vec.Vec2{X: 30, Y: 7}).
		LineTo(vec.Vec2{X: 0, Y: 7}).
		Close()

	store := edges.NewStorage(1, 16)
	b := edges.NewBuilder(store, clip, edges.DefaultTolerance)
	b.Begin()
	b.AddPath(p)
	b.End()

	f := &scanfill.Filler{}
	mask := f.Mask(store, r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			want := y >= 2 && y < 7
			got := mask.GrayAt(x, y).Y != 0
			if got != want {
				t.Errorf("pixel (%d,%d): got %t, want %t", x, y, got, want)
			}
		}
	}
	if n := f.Count(store, r); n != 50 {
		t.Errorf("got %d filled pixels, want 50", n)
	}
}

// TestLeftBorderFill uses a shape which is almost entirely to the left of
// the clip rectangle.  Only the border edge along x = LLx closes the thin
// strip which remains visible.
func TestLeftBorderFill(t *testing.T) {
	clip := testcases.DefaultClip
	r := image.Rect(50, 50, 150, 150)

	p := (&edges.Path{}).
		MoveTo(vec.Vec2{X: 0, Y: 30}).
		LineTo(vec.Vec2{X: 53, Y: 30}).
		LineTo(vec.Vec2{X: 53, Y: 170}).
		LineTo(vec.Vec2{X: 0, Y: 170}).
		Close()

	store := edges.NewStorage(4, 32)
	b := edges.NewBuilder(store, clip, edges.DefaultTolerance)
	b.Begin()
	b.AddPath(p)
	b.End()

	border := false
	for _, e := range store.All() {
		if e.Points[0].X == 50 && e.Last().X == 50 {
			border = true
		}
	}
	if !border {
		t.Error("no edge along the left clip boundary")
	}

	f := &scanfill.Filler{}
	mask := f.Mask(store, r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			want := x < 53
			if got := mask.GrayAt(x, y).Y != 0; got != want {
				t.Fatalf("pixel (%d,%d): got %t, want %t", x, y, got, want)
			}
		}
	}
}
