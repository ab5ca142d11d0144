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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// maxFlattenDepth bounds the bisection depth of the curve flattener.
// A curve segment is accepted as flat once it has been halved this many
// times, so one monotonic curve yields at most 2^maxFlattenDepth chords.
const maxFlattenDepth = 16

// monoCurve is a Y-monotonic Bézier curve being flattened by repeated
// bisection.  The current segment is split until it is flat, the right
// halves are kept on an explicit stack.
type monoCurve interface {
	// isFlat reports whether the current segment can be replaced by
	// its chord.
	isFlat() bool

	// split replaces the current segment by its left half and defers
	// the right half.
	split()

	// pop makes the most recently deferred half the current segment.
	// It returns false if nothing is left.
	pop() bool

	first() vec.Vec2
	last() vec.Vec2
	direction() Direction

	// capped reports whether some segment was accepted only because
	// the depth limit was reached.
	capped() bool
}

// flattenMono calls emit with the end point of every chord of c, in
// order.  The start point of the first chord is c.first() before the
// call.  The return value is the number of chords.
func flattenMono(c monoCurve, emit func(vec.Vec2)) int {
	n := 0
	for {
		for !c.isFlat() {
			c.split()
		}
		emit(c.last())
		n++
		if !c.pop() {
			break
		}
	}
	if c.capped() {
		Logger().Debug("edges: curve subdivision limit reached",
			"depth", maxFlattenDepth, "chords", n)
	}
	return n
}

func directionOf(y0, y1 float64) Direction {
	if y1 < y0 {
		return Ascending
	}
	return Descending
}

func mid(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// cross returns the z-component of the cross product of u and v.
func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

func toleranceSq(tolerance float64) float64 {
	if !(tolerance > 0) {
		return 0
	}
	return tolerance * tolerance
}

type quadStep struct {
	p0, p1, p2 vec.Vec2
	depth      int
}

// monoQuad flattens a Y-monotonic quadratic Bézier curve.
type monoQuad struct {
	p0, p1, p2 vec.Vec2
	depth      int
	tolSq      float64
	dir        Direction
	hitLimit   bool
	stack      []quadStep
}

// begin starts flattening the curve pts.  A curve which is itself the
// result of depth earlier bisections gets correspondingly fewer splits.
func (q *monoQuad) begin(pts [3]vec.Vec2, tolerance float64, depth int) {
	q.p0, q.p1, q.p2 = pts[0], pts[1], pts[2]
	q.depth = depth
	q.tolSq = toleranceSq(tolerance)
	q.dir = directionOf(q.p0.Y, q.p2.Y)
	q.hitLimit = false
	q.stack = q.stack[:0]
}

// isFlat tests the distance of the control point from the chord:
// with d = cross(p2-p0, p1-p0), the distance is |d|/|p2-p0|.
func (q *monoQuad) isFlat() bool {
	if q.depth >= maxFlattenDepth {
		q.hitLimit = true
		return true
	}
	v := q.p2.Sub(q.p0)
	d := cross(v, q.p1.Sub(q.p0))
	return d*d <= q.tolSq*(v.X*v.X+v.Y*v.Y)
}

func (q *monoQuad) split() {
	p01 := mid(q.p0, q.p1)
	p12 := mid(q.p1, q.p2)
	p012 := mid(p01, p12)
	q.depth++
	q.stack = append(q.stack, quadStep{p0: p012, p1: p12, p2: q.p2, depth: q.depth})
	q.p1, q.p2 = p01, p012
}

func (q *monoQuad) pop() bool {
	n := len(q.stack)
	if n == 0 {
		return false
	}
	s := q.stack[n-1]
	q.stack = q.stack[:n-1]
	q.p0, q.p1, q.p2, q.depth = s.p0, s.p1, s.p2, s.depth
	return true
}

func (q *monoQuad) first() vec.Vec2      { return q.p0 }
func (q *monoQuad) last() vec.Vec2       { return q.p2 }
func (q *monoQuad) direction() Direction { return q.dir }
func (q *monoQuad) capped() bool         { return q.hitLimit }

type cubicStep struct {
	p0, p1, p2, p3 vec.Vec2
	depth          int
}

// monoCubic flattens a Y-monotonic cubic Bézier curve.
type monoCubic struct {
	p0, p1, p2, p3 vec.Vec2
	depth          int
	tolSq          float64
	dir            Direction
	hitLimit       bool
	stack          []cubicStep
}

func (c *monoCubic) begin(pts [4]vec.Vec2, tolerance float64) {
	c.p0, c.p1, c.p2, c.p3 = pts[0], pts[1], pts[2], pts[3]
	c.depth = 0
	c.tolSq = toleranceSq(tolerance)
	c.dir = directionOf(c.p0.Y, c.p3.Y)
	c.hitLimit = false
	c.stack = c.stack[:0]
}

// isFlat requires both control points to lie within the tolerance of
// the chord.  The curve lies in the convex hull of its control points,
// so it is then within the tolerance as well.
func (c *monoCubic) isFlat() bool {
	if c.depth >= maxFlattenDepth {
		c.hitLimit = true
		return true
	}
	v := c.p3.Sub(c.p0)
	d1 := cross(v, c.p1.Sub(c.p0))
	d2 := cross(v, c.p2.Sub(c.p0))
	limit := c.tolSq * (v.X*v.X + v.Y*v.Y)
	return d1*d1 <= limit && d2*d2 <= limit
}

func (c *monoCubic) split() {
	p01 := mid(c.p0, c.p1)
	p12 := mid(c.p1, c.p2)
	p23 := mid(c.p2, c.p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)
	c.depth++
	c.stack = append(c.stack, cubicStep{p0: p0123, p1: p123, p2: p23, p3: c.p3, depth: c.depth})
	c.p1, c.p2, c.p3 = p01, p012, p0123
}

func (c *monoCubic) pop() bool {
	n := len(c.stack)
	if n == 0 {
		return false
	}
	s := c.stack[n-1]
	c.stack = c.stack[:n-1]
	c.p0, c.p1, c.p2, c.p3, c.depth = s.p0, s.p1, s.p2, s.p3, s.depth
	return true
}

func (c *monoCubic) first() vec.Vec2      { return c.p0 }
func (c *monoCubic) last() vec.Vec2       { return c.p3 }
func (c *monoCubic) direction() Direction { return c.dir }
func (c *monoCubic) capped() bool         { return c.hitLimit }

// chopQuadY splits a quadratic Bézier curve at its Y extremum.
// The pieces are stored in out, and the number of pieces is returned.
func chopQuadY(q [3]vec.Vec2, out *[2][3]vec.Vec2) int {
	y0, y1, y2 := q[0].Y, q[1].Y, q[2].Y
	if (y0-y1)*(y1-y2) >= 0 {
		out[0] = q
		return 1
	}
	t := (y0 - y1) / (y0 - 2*y1 + y2)
	p01 := lerp(q[0], q[1], t)
	p12 := lerp(q[1], q[2], t)
	p012 := lerp(p01, p12, t)

	// The tangent at the extremum is horizontal.  Make this exact,
	// so that rounding cannot break monotonicity.
	p01.Y = p012.Y
	p12.Y = p012.Y

	out[0] = [3]vec.Vec2{q[0], p01, p012}
	out[1] = [3]vec.Vec2{p012, p12, q[2]}
	return 2
}

// chopCubicY splits a cubic Bézier curve at its Y extrema.
// The pieces are stored in out, and the number of pieces is returned.
func chopCubicY(c [4]vec.Vec2, out *[3][4]vec.Vec2) int {
	y0, y1, y2, y3 := c[0].Y, c[1].Y, c[2].Y, c[3].Y

	// dy/dt is proportional to a·t² + b·t + c
	a := -y0 + 3*y1 - 3*y2 + y3
	b := 2 * (y0 - 2*y1 + y2)
	k := y1 - y0

	var buf [2]float64
	ts := unitRoots(a, b, k, buf[:0])
	if len(ts) == 0 {
		out[0] = c
		return 1
	}

	n := 0
	rest := c
	prev := 0.0
	for _, t := range ts {
		left, right := chopCubic(rest, (t-prev)/(1-prev))
		left[2].Y = left[3].Y
		right[1].Y = right[0].Y
		out[n] = left
		n++
		rest = right
		prev = t
	}
	out[n] = rest
	return n + 1
}

// chopCubic splits a cubic Bézier curve at parameter t.
func chopCubic(c [4]vec.Vec2, t float64) (left, right [4]vec.Vec2) {
	p01 := lerp(c[0], c[1], t)
	p12 := lerp(c[1], c[2], t)
	p23 := lerp(c[2], c[3], t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	p0123 := lerp(p012, p123, t)
	left = [4]vec.Vec2{c[0], p01, p012, p0123}
	right = [4]vec.Vec2{p0123, p123, p23, c[3]}
	return left, right
}

// unitRoots appends the roots of a·t² + b·t + c which lie strictly
// between 0 and 1 to dst, in increasing order.
func unitRoots(a, b, c float64, dst []float64) []float64 {
	start := len(dst)
	add := func(t float64) {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}

	if a == 0 {
		if b != 0 {
			add(-c / b)
		}
		return dst
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return dst
	}
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	add(q / a)
	if q != 0 {
		add(c / q)
	}

	roots := dst[start:]
	slices.Sort(roots)
	if len(roots) == 2 && roots[0] == roots[1] {
		dst = dst[:start+1]
	}
	return dst
}
