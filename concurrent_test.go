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
	"context"
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func concurrentPaths() []*Path {
	var paths []*Path
	for i := range 20 {
		x := float64(10 * (i % 5))
		y := float64(20 * (i / 5))
		p := (&Path{}).
			MoveTo(pt(x, y)).
			CubeTo(pt(x+40, y), pt(x+40, y+30), pt(x+5, y+35)).
			LineTo(pt(x-20, y+50)).
			Close()
		paths = append(paths, p)
	}
	return paths
}

func TestBuildConcurrent(t *testing.T) {
	clip := rect.Rect{LLx: 5, LLy: 5, URx: 60, URy: 90}
	tr := MatrixTransform(matrix.Matrix{1, 0, 0, 1, 2, 3})
	paths := concurrentPaths()

	want := NewStorage(4, 32)
	b := NewBuilder(want, clip, DefaultTolerance)
	for _, p := range paths {
		b.Transform = tr
		b.Begin()
		b.AddPath(p)
		b.End()
	}

	got := NewStorage(4, 32)
	err := BuildConcurrent(context.Background(), got, clip, DefaultTolerance, tr, paths)
	if err != nil {
		t.Fatal(err)
	}

	if got.BBox != want.BBox {
		t.Errorf("got bbox %s, want %s", got.BBox, want.BBox)
	}
	for i := range want.Bands {
		if !slices.EqualFunc(got.Band(i), want.Band(i), edgeEqual) {
			t.Errorf("band %d differs", i)
		}
	}
}

func TestBuildConcurrentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := NewStorage(2, 32)
	dst.Append(edge(Descending, EdgePoint{0, 0}, EdgePoint{0, 10}))

	err := BuildConcurrent(ctx, dst, box100, DefaultTolerance, nil, concurrentPaths())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
	if dst.Len() != 1 {
		t.Errorf("dst has %d edges, want 1", dst.Len())
	}
}

func TestBuildConcurrentMalformed(t *testing.T) {
	paths := concurrentPaths()
	paths[3] = &Path{Cmds: []Command{CmdMoveTo, CmdLineTo}, Points: []vec.Vec2{{}}}

	dst := NewStorage(4, 32)
	err := BuildConcurrent(context.Background(), dst, box100, DefaultTolerance, nil, paths)
	if err == nil {
		t.Fatal("malformed path was accepted")
	}
	if dst.Len() != 0 {
		t.Errorf("dst has %d edges after a failed build", dst.Len())
	}
}
