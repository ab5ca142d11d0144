package edges_test

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/edges"
	"seehuhn.de/go/edges/internal/scanfill"
	"seehuhn.de/go/edges/testcases"
)

// BenchmarkBuilderO benchmarks edge construction for an "O" shape.
func BenchmarkBuilderO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			store := edges.NewStorageFor(size, edges.DefaultBandHeight)
			builder := edges.NewBuilder(store, clip, edges.DefaultTolerance)

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				store.Reset()
				builder.Begin()
				builder.AddPath(oPath)
				builder.End()
			}
		})
	}
}

// BenchmarkScanfillO benchmarks edge construction followed by a scanline
// fill of an "O" shape.  Compare with BenchmarkVectorO.
func BenchmarkScanfillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			store := edges.NewStorageFor(size, edges.DefaultBandHeight)
			builder := edges.NewBuilder(store, clip, edges.DefaultTolerance)
			f := &scanfill.Filler{Rule: scanfill.EvenOdd}

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				store.Reset()
				builder.Begin()
				builder.AddPath(oPath)
				builder.End()
				f.Fill(store, dst.Bounds(), func(y, x0, x1 int) {
					row := dst.Pix[y*dst.Stride+x0 : y*dst.Stride+x1]
					for i := range row {
						row[i] = 255
					}
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkBuildAll measures steady-state performance by reusing a single
// Builder across all test cases.
func BenchmarkBuildAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	store := edges.NewStorageFor(testcases.CanvasSize, edges.DefaultBandHeight)
	builder := edges.NewBuilder(store, testcases.DefaultClip, edges.DefaultTolerance)

	for b.Loop() {
		for _, tc := range cases {
			store.Reset()
			builder.Reset(store, tc.ClipRect(), tc.Tol())
			builder.Transform = tc.Transform()
			builder.Begin()
			builder.AddPath(tc.Path)
			builder.End()
		}
	}
}

// BenchmarkBuildConcurrent compares sequential and concurrent construction
// of many independent shapes.
func BenchmarkBuildConcurrent(b *testing.B) {
	const size = 1000
	clip := rect.Rect{LLx: 0, LLy: 0, URx: size, URy: size}

	var paths []*edges.Path
	for i := range 100 {
		c := float64(50 + 9*i)
		paths = append(paths, makeOPath(c, c, 80, 40))
	}

	b.Run("sequential", func(b *testing.B) {
		store := edges.NewStorageFor(size, edges.DefaultBandHeight)
		builder := edges.NewBuilder(store, clip, edges.DefaultTolerance)
		for b.Loop() {
			store.Reset()
			for _, p := range paths {
				builder.Begin()
				builder.AddPath(p)
				builder.End()
			}
		}
	})
	b.Run("concurrent", func(b *testing.B) {
		store := edges.NewStorageFor(size, edges.DefaultBandHeight)
		ctx := context.Background()
		for b.Loop() {
			store.Reset()
			err := edges.BuildConcurrent(ctx, store, clip, edges.DefaultTolerance, nil, paths)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

// makeOPath creates an "O" shape.
// The outer circle is counter-clockwise, the inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *edges.Path {
	p := &edges.Path{}
	addCircleToPath(p, cx, cy, outerR, false)
	addCircleToPath(p, cx, cy, innerR, true)
	return p
}

// addCircleToPath adds a circle made of four cubic Bézier curves.
func addCircleToPath(p *edges.Path, cx, cy, r float64, clockwise bool) {
	const k = 0.5522847498
	kr := k * r

	v := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	p.MoveTo(v(cx, cy-r))
	if clockwise {
		p.CubeTo(v(cx-kr, cy-r), v(cx-r, cy-kr), v(cx-r, cy))
		p.CubeTo(v(cx-r, cy+kr), v(cx-kr, cy+r), v(cx, cy+r))
		p.CubeTo(v(cx+kr, cy+r), v(cx+r, cy+kr), v(cx+r, cy))
		p.CubeTo(v(cx+r, cy-kr), v(cx+kr, cy-r), v(cx, cy-r))
	} else {
		p.CubeTo(v(cx+kr, cy-r), v(cx+r, cy-kr), v(cx+r, cy))
		p.CubeTo(v(cx+r, cy+kr), v(cx+kr, cy+r), v(cx, cy+r))
		p.CubeTo(v(cx-kr, cy+r), v(cx-r, cy+kr), v(cx-r, cy))
		p.CubeTo(v(cx-r, cy-kr), v(cx-kr, cy-r), v(cx, cy-r))
	}
	p.Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
