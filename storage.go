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

package edges

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Direction records which way an edge runs in Y.
type Direction uint8

const (
	// Descending edges have increasing Y along their points,
	// i.e. they run down the screen.
	Descending Direction = iota

	// Ascending edges have decreasing Y along their points.
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}

// Winding returns the contribution of an edge with direction d to the
// winding number of points to its right: +1 for descending edges, -1 for
// ascending ones.
func (d Direction) Winding() int {
	if d == Ascending {
		return -1
	}
	return 1
}

// EdgePoint is a vertex of an edge, in integer device coordinates.
type EdgePoint struct {
	X, Y int32
}

// EdgeVector is a polyline which is monotonic in Y.
// For a Descending edge the Y coordinates of Points never decrease,
// for an Ascending edge they never increase.
type EdgeVector struct {
	Points []EdgePoint
	Dir    Direction
}

// Valid reports whether e has at least two points and a non-zero
// vertical extent.
func (e *EdgeVector) Valid() bool {
	n := len(e.Points)
	return n >= 2 && e.Points[0].Y != e.Points[n-1].Y
}

// First returns the first point of e.
func (e *EdgeVector) First() EdgePoint {
	return e.Points[0]
}

// Last returns the last point of e.
func (e *EdgeVector) Last() EdgePoint {
	return e.Points[len(e.Points)-1]
}

// MinY returns the smallest Y coordinate of e.
func (e *EdgeVector) MinY() int32 {
	if e.Dir == Ascending {
		return e.Last().Y
	}
	return e.First().Y
}

// MaxY returns the largest Y coordinate of e.
func (e *EdgeVector) MaxY() int32 {
	if e.Dir == Ascending {
		return e.First().Y
	}
	return e.Last().Y
}

// Reset empties e and sets its direction, keeping the allocated capacity.
func (e *EdgeVector) Reset(dir Direction) {
	e.Points = e.Points[:0]
	e.Dir = dir
}

// EdgeList is the unordered set of edges belonging to one band.
type EdgeList []EdgeVector

// Box is an axis-aligned rectangle in integer device coordinates.
// Both bounds are inclusive.
type Box struct {
	XMin, YMin, XMax, YMax int32
}

// EmptyBox returns a box which contains no points.
// The union of an empty box with any box b is b.
func EmptyBox() Box {
	return Box{
		XMin: math.MaxInt32,
		YMin: math.MaxInt32,
		XMax: math.MinInt32,
		YMax: math.MinInt32,
	}
}

// Empty reports whether b contains no points.
func (b Box) Empty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	return Box{
		XMin: min(b.XMin, o.XMin),
		YMin: min(b.YMin, o.YMin),
		XMax: max(b.XMax, o.XMax),
		YMax: max(b.YMax, o.YMax),
	}
}

func (b Box) addEdge(e *EdgeVector) Box {
	for _, p := range e.Points {
		b.XMin = min(b.XMin, p.X)
		b.YMin = min(b.YMin, p.Y)
		b.XMax = max(b.XMax, p.X)
		b.YMax = max(b.YMax, p.Y)
	}
	return b
}

func (b Box) String() string {
	if b.Empty() {
		return "empty"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.XMin, b.YMin, b.XMax, b.YMax)
}

// Storage holds the output of a [Builder]: edges bucketed into
// horizontal bands of equal height, together with the bounding box
// of all edges added by completed builder sessions.
//
// Band i holds the edges whose smallest Y coordinate lies in
// [i*BandHeight, (i+1)*BandHeight).  Coordinates above the first band
// go into band 0, coordinates below the last band into the last band.
type Storage struct {
	Bands      []EdgeList
	BandHeight int
	BBox       Box
}

// NewStorage allocates a storage with bandCount bands of height
// bandHeight.
func NewStorage(bandCount, bandHeight int) *Storage {
	if bandCount <= 0 || bandHeight <= 0 {
		panic(fmt.Sprintf("edges: invalid band geometry %d×%d", bandCount, bandHeight))
	}
	return &Storage{
		Bands:      make([]EdgeList, bandCount),
		BandHeight: bandHeight,
		BBox:       EmptyBox(),
	}
}

// NewStorageFor allocates a storage with bands of height bandHeight
// which cover device rows 0 to height-1.
func NewStorageFor(height, bandHeight int) *Storage {
	if bandHeight <= 0 {
		panic(fmt.Sprintf("edges: invalid band height %d", bandHeight))
	}
	n := max((height+bandHeight-1)/bandHeight, 1)
	return NewStorage(n, bandHeight)
}

// BandID returns the index of the band containing row y.
func (s *Storage) BandID(y int32) int {
	if y < 0 {
		return 0
	}
	return min(int(y)/s.BandHeight, len(s.Bands)-1)
}

// Append adds a copy of e to the band containing its smallest Y
// coordinate.  The bounding box is not changed; builder sessions
// update it when they end.
func (s *Storage) Append(e *EdgeVector) {
	if !e.Valid() {
		panic("edges: appending an invalid edge")
	}
	id := s.BandID(e.MinY())
	s.Bands[id] = append(s.Bands[id], EdgeVector{
		Points: slices.Clone(e.Points),
		Dir:    e.Dir,
	})
}

// Band returns the edges of band i.
func (s *Storage) Band(i int) EdgeList {
	return s.Bands[i]
}

// Len returns the total number of edges in all bands.
func (s *Storage) Len() int {
	n := 0
	for _, band := range s.Bands {
		n += len(band)
	}
	return n
}

// All iterates over all edges, band by band.
// The first value is the band index.
func (s *Storage) All() iter.Seq2[int, *EdgeVector] {
	return func(yield func(int, *EdgeVector) bool) {
		for i, band := range s.Bands {
			for j := range band {
				if !yield(i, &band[j]) {
					return
				}
			}
		}
	}
}

// Reset removes all edges and clears the bounding box,
// keeping the allocated band capacity.
func (s *Storage) Reset() {
	for i := range s.Bands {
		clear(s.Bands[i])
		s.Bands[i] = s.Bands[i][:0]
	}
	s.BBox = EmptyBox()
}

// Merge moves the edges of o into s and merges the bounding boxes.
// Both storages must have the same band geometry.
// The edge slices of o are shared with s afterwards.
func (s *Storage) Merge(o *Storage) {
	if len(o.Bands) != len(s.Bands) || o.BandHeight != s.BandHeight {
		panic(fmt.Sprintf("edges: cannot merge %d×%d bands into %d×%d",
			len(o.Bands), o.BandHeight, len(s.Bands), s.BandHeight))
	}
	for i, band := range o.Bands {
		s.Bands[i] = append(s.Bands[i], band...)
	}
	s.BBox = s.BBox.Union(o.BBox)
}
