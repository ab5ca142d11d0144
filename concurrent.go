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
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
)

// BuildConcurrent builds the edges of several paths in parallel and adds
// them to dst.  Each path is processed in its own builder session, into a
// private storage with the band geometry of dst.  The private storages
// are merged into dst in path order, so that the result does not depend
// on scheduling.
//
// A malformed path does not crash the program; the corresponding panic
// is returned as an error.  If ctx is cancelled before all paths are
// processed, dst is left unchanged and the context's error is returned.
func BuildConcurrent(ctx context.Context, dst *Storage, clip rect.Rect, tolerance float64, tr Transform, paths []*Path) error {
	if dst == nil {
		panic("edges: nil storage")
	}
	if !ValidClip(clip) {
		panic(fmt.Sprintf("edges: invalid clip rectangle [%g,%g]×[%g,%g]",
			clip.LLx, clip.URx, clip.LLy, clip.URy))
	}

	parts := make([]*Storage, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() (err error) {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("path %d: %v", i, r)
				}
			}()

			store := NewStorage(len(dst.Bands), dst.BandHeight)
			b := NewBuilder(store, clip, tolerance)
			b.Transform = tr
			b.Begin()
			b.AddPath(p)
			b.End()
			parts[i] = store
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("edges: concurrent build: %w", err)
	}

	for _, part := range parts {
		dst.Merge(part)
	}
	Logger().Debug("edges: concurrent build done",
		"paths", len(paths), "edges", dst.Len(), "bbox", dst.BBox.String())
	return nil
}
