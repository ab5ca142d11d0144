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

// Package scanfill renders the edges in an [edges.Storage] into pixel
// spans.  A pixel belongs to the filled region if its centre does.
//
// The package exists to check edge lists and to preview them; it does
// no anti-aliasing.
package scanfill

import (
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/edges"
)

// Rule selects how winding numbers are mapped to inside and outside.
type Rule int

const (
	// NonZero fills points with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

func (r Rule) inside(winding int) bool {
	if r == EvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

type crossing struct {
	x       float64
	winding int
}

// Filler converts edge lists into spans.
// The caller creates one instance and reuses it; internal buffers grow
// as needed but never shrink.
type Filler struct {
	// Rule is the fill rule.  The zero value is NonZero.
	Rule Rule

	edges  []*edges.EdgeVector // queued edges of the bands seen so far, by MinY
	active []*edges.EdgeVector // edges crossing the current row
	cross  []crossing
}

// Fill calls span for every maximal horizontal run of filled pixels
// inside r.  The run covers pixels x0 to x1-1 of row y.  Rows are
// visited from top to bottom.
//
// Edges are taken from the storage one band at a time, as the sweep
// reaches the rows of the band.  Bands above r are only consulted for
// edges which reach down into r.
func (f *Filler) Fill(s *edges.Storage, r image.Rectangle, span func(y, x0, x1 int)) {
	if r.Empty() {
		return
	}

	f.edges = f.edges[:0]
	f.active = f.active[:0]
	band := s.BandID(int32(r.Min.Y))
	for i := 0; i <= band; i++ {
		f.addBand(s, i, r)
	}

	next := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for id := s.BandID(int32(y)); band < id; {
			band++
			f.addBand(s, band, r)
		}
		yc := float64(y) + 0.5

		for next < len(f.edges) && float64(f.edges[next].MinY()) < yc {
			f.active = append(f.active, f.edges[next])
			next++
		}

		f.cross = f.cross[:0]
		for i := 0; i < len(f.active); {
			e := f.active[i]
			if float64(e.MaxY()) <= yc {
				f.active[i] = f.active[len(f.active)-1]
				f.active = f.active[:len(f.active)-1]
				continue
			}
			f.cross = append(f.cross, crossing{x: xAt(e, yc), winding: e.Dir.Winding()})
			i++
		}
		if len(f.cross) == 0 {
			continue
		}

		slices.SortFunc(f.cross, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})
		f.row(y, r, span)
	}
}

// addBand queues the edges of band i which overlap the rows of r.
// Every band starts below the previous one, so sorting the new entries
// by MinY keeps the whole queue sorted.
func (f *Filler) addBand(s *edges.Storage, i int, r image.Rectangle) {
	start := len(f.edges)
	band := s.Band(i)
	for j := range band {
		e := &band[j]
		if int(e.MaxY()) <= r.Min.Y || int(e.MinY()) >= r.Max.Y {
			continue
		}
		f.edges = append(f.edges, e)
	}
	slices.SortFunc(f.edges[start:], func(a, b *edges.EdgeVector) int {
		return cmp.Compare(a.MinY(), b.MinY())
	})
}

// row emits the spans of row y from the sorted crossings.
func (f *Filler) row(y int, r image.Rectangle, span func(y, x0, x1 int)) {
	emit := func(x0, x1 int) {
		x0 = max(x0, r.Min.X)
		x1 = min(x1, r.Max.X)
		if x0 < x1 {
			span(y, x0, x1)
		}
	}

	winding := 0
	start := 0
	for _, c := range f.cross {
		wasIn := f.Rule.inside(winding)
		winding += c.winding
		isIn := f.Rule.inside(winding)

		// first pixel whose centre is at or right of c.x
		px := int(math.Ceil(c.x - 0.5))
		switch {
		case !wasIn && isIn:
			start = px
		case wasIn && !isIn:
			emit(start, px)
		}
	}
	if f.Rule.inside(winding) {
		emit(start, r.Max.X)
	}
}

// xAt returns the X coordinate where e crosses the horizontal line at y.
// The caller guarantees MinY < y < MaxY.
func xAt(e *edges.EdgeVector, y float64) float64 {
	pts := e.Points
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		y0, y1 := float64(a.Y), float64(b.Y)
		if min(y0, y1) <= y && y < max(y0, y1) {
			x0, x1 := float64(a.X), float64(b.X)
			return x0 + (y-y0)*(x1-x0)/(y1-y0)
		}
	}
	return float64(e.Last().X)
}

// Mask renders the edges into a new greyscale image with bounds r.
// Filled pixels are 255, all others 0.
func (f *Filler) Mask(s *edges.Storage, r image.Rectangle) *image.Gray {
	img := image.NewGray(r)
	f.Fill(s, r, func(y, x0, x1 int) {
		i := img.PixOffset(x0, y)
		row := img.Pix[i : i+x1-x0]
		for j := range row {
			row[j] = 255
		}
	})
	return img
}

// Count returns the number of filled pixels inside r.
func (f *Filler) Count(s *edges.Storage, r image.Rectangle) int {
	n := 0
	f.Fill(s, r, func(_, x0, x1 int) {
		n += x1 - x0
	})
	return n
}
