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

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/edges"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene is the content of a scene file.
type Scene struct {
	Clip       []float64 `yaml:"clip"`        // LLx, LLy, URx, URy
	Width      int       `yaml:"width"`       // canvas width, defaults to the clip's right edge
	Height     int       `yaml:"height"`      // canvas height, defaults to the clip's bottom edge
	Tolerance  float64   `yaml:"tolerance"`   // zero means edges.DefaultTolerance
	BandHeight int       `yaml:"band_height"` // zero means edges.DefaultBandHeight
	Transform  []float64 `yaml:"transform"`   // optional affine matrix
	Paths      []string  `yaml:"paths"`
}

// readScene decodes and validates a scene file.
func readScene(r io.Reader) (*Scene, error) {
	s := &Scene{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	if len(s.Clip) != 4 {
		return nil, fmt.Errorf("clip: need 4 numbers, got %d", len(s.Clip))
	}
	if !edges.ValidClip(s.ClipRect()) {
		return nil, fmt.Errorf("clip: invalid rectangle %v", s.Clip)
	}
	if s.Transform != nil && len(s.Transform) != 6 {
		return nil, fmt.Errorf("transform: need 6 numbers, got %d", len(s.Transform))
	}
	if s.Width < 0 || s.Height < 0 || s.BandHeight < 0 {
		return nil, fmt.Errorf("negative canvas size or band height")
	}

	if s.Width == 0 {
		s.Width = max(int(math.Ceil(s.Clip[2])), 1)
	}
	if s.Height == 0 {
		s.Height = max(int(math.Ceil(s.Clip[3])), 1)
	}
	if s.Tolerance == 0 {
		s.Tolerance = edges.DefaultTolerance
	}
	if s.BandHeight == 0 {
		s.BandHeight = edges.DefaultBandHeight
	}
	return s, nil
}

// ClipRect returns the clip rectangle of the scene.
func (s *Scene) ClipRect() rect.Rect {
	return rect.Rect{LLx: s.Clip[0], LLy: s.Clip[1], URx: s.Clip[2], URy: s.Clip[3]}
}

// Matrix returns the transformation of the scene, or nil.
func (s *Scene) Matrix() edges.Transform {
	if s.Transform == nil {
		return nil
	}
	var m matrix.Matrix
	copy(m[:], s.Transform)
	return edges.MatrixTransform(m)
}

// ParsePaths converts the path strings of the scene.
func (s *Scene) ParsePaths() ([]*edges.Path, error) {
	res := make([]*edges.Path, len(s.Paths))
	for i, str := range s.Paths {
		p, err := parsePath(str)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		res[i] = p
	}
	return res, nil
}

// parsePath reads a path in a compact, SVG-like syntax:
//
//	M x y              move to
//	L x y              line to
//	Q cx cy x y        quadratic curve
//	C c1x c1y c2x c2y x y
//	                   cubic curve
//	K cx cy x y w      conic with weight w
//	Z                  close
func parsePath(s string) (*edges.Path, error) {
	tokens := strings.Fields(s)
	p := &edges.Path{}

	pos := 0
	numbers := func(cmd string, n int) ([]float64, error) {
		if pos+n > len(tokens) {
			return nil, fmt.Errorf("%s: need %d numbers", cmd, n)
		}
		res := make([]float64, n)
		for i := range res {
			x, err := strconv.ParseFloat(tokens[pos+i], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", cmd, err)
			}
			res[i] = x
		}
		pos += n
		return res, nil
	}

	started := false
	for pos < len(tokens) {
		cmd := tokens[pos]
		pos++

		if cmd != "M" && !started {
			return nil, fmt.Errorf("%s: path must start with M", cmd)
		}

		var x []float64
		var err error
		switch cmd {
		case "M":
			if x, err = numbers(cmd, 2); err == nil {
				p.MoveTo(vec.Vec2{X: x[0], Y: x[1]})
				started = true
			}
		case "L":
			if x, err = numbers(cmd, 2); err == nil {
				p.LineTo(vec.Vec2{X: x[0], Y: x[1]})
			}
		case "Q":
			if x, err = numbers(cmd, 4); err == nil {
				p.QuadTo(vec.Vec2{X: x[0], Y: x[1]}, vec.Vec2{X: x[2], Y: x[3]})
			}
		case "C":
			if x, err = numbers(cmd, 6); err == nil {
				p.CubeTo(vec.Vec2{X: x[0], Y: x[1]}, vec.Vec2{X: x[2], Y: x[3]}, vec.Vec2{X: x[4], Y: x[5]})
			}
		case "K":
			if x, err = numbers(cmd, 5); err == nil {
				p.ConicTo(vec.Vec2{X: x[0], Y: x[1]}, vec.Vec2{X: x[2], Y: x[3]}, x[4])
			}
		case "Z":
			p.Close()
		default:
			err = fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}
