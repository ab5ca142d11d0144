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

// Command edgedump builds clipped edge lists from a scene file and prints
// them.  It can also write a preview of the filled edges as a BMP image.
//
// A scene file is YAML:
//
//	clip: [0, 0, 100, 100]
//	tolerance: 0.25
//	band_height: 16
//	paths:
//	  - "M 10 10 L 90 10 Q 120 50 90 90 K 50 120 10 90 0.7 Z"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/edges"
	"seehuhn.de/go/edges/internal/scanfill"
)

func main() {
	app := &cli.App{
		Name:      "edgedump",
		Usage:     "build clipped edge lists from a scene file",
		ArgsUsage: "<scene.yaml>",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "tolerance",
				Aliases: []string{"t"},
				Usage:   "curve flattening tolerance in pixels (overrides the scene)",
				EnvVars: []string{"EDGEDUMP_TOLERANCE"},
			},
			&cli.IntFlag{
				Name:    "band-height",
				Usage:   "height of a storage band in pixels (overrides the scene)",
				EnvVars: []string{"EDGEDUMP_BAND_HEIGHT"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format, json or text",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:  "bmp",
				Usage: "write a preview of the filled edges to this file",
			},
			&cli.BoolFlag{
				Name:  "evenodd",
				Usage: "use the even-odd rule for the preview",
			},
			&cli.BoolFlag{
				Name:  "concurrent",
				Usage: "build each path in its own goroutine",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log builder sessions to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "edgedump: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		edges.SetLogger(slog.New(h))
	}

	fname := c.Args().First()
	if fname == "" {
		return fmt.Errorf("missing scene file")
	}
	scene, err := loadScene(fname)
	if err != nil {
		return err
	}
	if c.IsSet("tolerance") {
		scene.Tolerance = c.Float64("tolerance")
	}
	if c.IsSet("band-height") {
		scene.BandHeight = c.Int("band-height")
		if scene.BandHeight <= 0 {
			return fmt.Errorf("invalid band height %d", scene.BandHeight)
		}
	}

	paths, err := scene.ParsePaths()
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	store, err := build(c.Context, scene, paths, c.Bool("concurrent"))
	if err != nil {
		return err
	}

	switch c.String("format") {
	case "json":
		err = writeJSON(os.Stdout, store)
	case "text":
		err = writeText(os.Stdout, store)
	default:
		err = fmt.Errorf("unknown format %q", c.String("format"))
	}
	if err != nil {
		return err
	}

	if out := c.String("bmp"); out != "" {
		f := &scanfill.Filler{}
		if c.Bool("evenodd") {
			f.Rule = scanfill.EvenOdd
		}
		img := f.Mask(store, image.Rect(0, 0, scene.Width, scene.Height))
		if err := writeBMP(out, img); err != nil {
			return err
		}
	}
	return nil
}

func loadScene(fname string) (*Scene, error) {
	r, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	scene, err := readScene(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return scene, nil
}

func build(ctx context.Context, scene *Scene, paths []*edges.Path, concurrent bool) (*edges.Storage, error) {
	store := edges.NewStorageFor(scene.Height, scene.BandHeight)
	clip := scene.ClipRect()

	if concurrent {
		err := edges.BuildConcurrent(ctx, store, clip, scene.Tolerance, scene.Matrix(), paths)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	b := edges.NewBuilder(store, clip, scene.Tolerance)
	b.Transform = scene.Matrix()
	b.Begin()
	for _, p := range paths {
		b.AddPath(p)
	}
	b.End()
	return store, nil
}

type jsonEdge struct {
	Band int        `json:"band"`
	Dir  string     `json:"dir"`
	Pts  [][2]int32 `json:"pts"`
}

func writeJSON(w io.Writer, store *edges.Storage) error {
	out := struct {
		BandHeight int        `json:"band_height"`
		Bands      int        `json:"bands"`
		BBox       []int32    `json:"bbox,omitempty"`
		Edges      []jsonEdge `json:"edges"`
	}{
		BandHeight: store.BandHeight,
		Bands:      len(store.Bands),
		Edges:      []jsonEdge{},
	}
	if b := store.BBox; !b.Empty() {
		out.BBox = []int32{b.XMin, b.YMin, b.XMax, b.YMax}
	}
	for band, e := range store.All() {
		je := jsonEdge{Band: band, Dir: e.Dir.String()}
		for _, p := range e.Points {
			je.Pts = append(je.Pts, [2]int32{p.X, p.Y})
		}
		out.Edges = append(out.Edges, je)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, store *edges.Storage) error {
	_, err := fmt.Fprintf(w, "%d edges in %d bands of height %d, bbox %s\n",
		store.Len(), len(store.Bands), store.BandHeight, store.BBox)
	if err != nil {
		return err
	}
	for i, band := range store.Bands {
		if len(band) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "band %d:\n", i); err != nil {
			return err
		}
		for _, e := range band {
			if _, err := fmt.Fprintf(w, "  %-10s %v\n", e.Dir, e.Points); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeBMP(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}
