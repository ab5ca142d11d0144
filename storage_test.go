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
	"testing"
)

func edge(dir Direction, pts ...EdgePoint) *EdgeVector {
	return &EdgeVector{Points: pts, Dir: dir}
}

func TestEdgeVector(t *testing.T) {
	e := edge(Ascending, EdgePoint{5, 40}, EdgePoint{7, 20}, EdgePoint{6, 10})
	if !e.Valid() {
		t.Error("edge not valid")
	}
	if e.MinY() != 10 || e.MaxY() != 40 {
		t.Errorf("got y range %d..%d, want 10..40", e.MinY(), e.MaxY())
	}
	if e.Dir.Winding() != -1 || Descending.Winding() != 1 {
		t.Error("wrong winding contributions")
	}

	e.Reset(Descending)
	if len(e.Points) != 0 || e.Dir != Descending || cap(e.Points) < 3 {
		t.Error("Reset did not keep capacity")
	}

	flat := edge(Descending, EdgePoint{0, 10}, EdgePoint{5, 10})
	if flat.Valid() {
		t.Error("horizontal edge reported as valid")
	}
	if edge(Descending, EdgePoint{0, 10}).Valid() {
		t.Error("single point edge reported as valid")
	}
}

func TestBox(t *testing.T) {
	empty := EmptyBox()
	if !empty.Empty() {
		t.Fatal("EmptyBox is not empty")
	}
	b := Box{XMin: 1, YMin: 2, XMax: 3, YMax: 4}
	if empty.Union(b) != b || b.Union(empty) != b {
		t.Error("union with the empty box changed b")
	}
	got := b.Union(Box{XMin: -1, YMin: 3, XMax: 2, YMax: 10})
	want := Box{XMin: -1, YMin: 2, XMax: 3, YMax: 10}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if s := empty.String(); s != "empty" {
		t.Errorf("got %q", s)
	}
}

func TestStorageBands(t *testing.T) {
	s := NewStorageFor(100, 32)
	if len(s.Bands) != 4 {
		t.Fatalf("got %d bands, want 4", len(s.Bands))
	}

	cases := []struct {
		y    int32
		band int
	}{
		{-5, 0},
		{0, 0},
		{31, 0},
		{32, 1},
		{99, 3},
		{500, 3},
	}
	for _, tc := range cases {
		if got := s.BandID(tc.y); got != tc.band {
			t.Errorf("BandID(%d) = %d, want %d", tc.y, got, tc.band)
		}
	}

	pts := []EdgePoint{{0, 70}, {0, 33}}
	s.Append(edge(Ascending, pts...))
	s.Append(edge(Descending, EdgePoint{1, 5}, EdgePoint{2, 90}))
	pts[0].X = 99

	if s.Len() != 2 {
		t.Errorf("got %d edges, want 2", s.Len())
	}
	if len(s.Band(0)) != 1 || len(s.Band(1)) != 1 {
		t.Errorf("wrong band assignment: %d, %d", len(s.Band(0)), len(s.Band(1)))
	}
	if s.Band(1)[0].First().X != 0 {
		t.Error("Append did not copy the points")
	}
	if !s.BBox.Empty() {
		t.Error("Append changed the bounding box")
	}

	var bands []int
	for i := range s.All() {
		bands = append(bands, i)
	}
	if len(bands) != 2 || bands[0] != 0 || bands[1] != 1 {
		t.Errorf("All visited bands %v", bands)
	}

	s.Reset()
	if s.Len() != 0 || !s.BBox.Empty() {
		t.Error("Reset did not clear the storage")
	}
}

func TestStorageAppendInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	NewStorage(1, 32).Append(edge(Descending, EdgePoint{0, 1}, EdgePoint{5, 1}))
}

func TestStorageMerge(t *testing.T) {
	a := NewStorage(2, 16)
	a.Append(edge(Descending, EdgePoint{0, 0}, EdgePoint{0, 10}))
	a.BBox = Box{XMin: 0, YMin: 0, XMax: 0, YMax: 10}

	b := NewStorage(2, 16)
	b.Append(edge(Ascending, EdgePoint{5, 30}, EdgePoint{5, 20}))
	b.BBox = Box{XMin: 5, YMin: 20, XMax: 5, YMax: 30}

	a.Merge(b)
	if a.Len() != 2 || len(a.Band(1)) != 1 {
		t.Errorf("got %d edges, %d in band 1", a.Len(), len(a.Band(1)))
	}
	want := Box{XMin: 0, YMin: 0, XMax: 5, YMax: 30}
	if a.BBox != want {
		t.Errorf("got bbox %s, want %s", a.BBox, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("merging different geometries did not panic")
		}
	}()
	a.Merge(NewStorage(3, 16))
}
