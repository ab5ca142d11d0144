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

	"seehuhn.de/go/geom/vec"
)

// maxConicDepth bounds the number of bisections used to approximate a
// conic by quadratic curves, giving at most 2^maxConicDepth quads.
const maxConicDepth = 10

// conic is a rational quadratic Bézier curve.  The end points have
// weight 1, the control point has weight w.
type conic struct {
	p0, p1, p2 vec.Vec2
	w          float64
}

// errorSq bounds the squared distance between the conic and the
// quadratic Bézier curve with the same control points.
func (k conic) errorSq() float64 {
	a := k.w - 1
	f := a / (4 * (2 + a))
	d := k.p0.Sub(k.p1.Mul(2)).Add(k.p2)
	return f * f * (d.X*d.X + d.Y*d.Y)
}

// split bisects the conic at t = 1/2, using the de Casteljau
// construction in homogeneous coordinates.  Both halves are
// normalised to end point weight 1.
func (k conic) split() (conic, conic) {
	s := 1 + k.w
	w1 := math.Sqrt(s / 2)
	wp1 := k.p1.Mul(k.w)
	p11 := k.p0.Add(wp1).Mul(1 / s)
	p13 := wp1.Add(k.p2).Mul(1 / s)
	p12 := mid(p11, p13)
	return conic{k.p0, p11, p12, w1}, conic{p12, p13, k.p2, w1}
}

// conicQuad is one quadratic piece of a conic.  Depth is the number of
// bisections which produced it.
type conicQuad struct {
	pts   [3]vec.Vec2
	depth int
}

// conicToQuads appends quadratic Bézier curves approximating k to dst.
// Every quad deviates from the conic by at most tolerance, unless the
// depth limit was hit.
func conicToQuads(dst []conicQuad, k conic, tolerance float64) []conicQuad {
	return appendConicQuads(dst, k, toleranceSq(tolerance), 0)
}

func appendConicQuads(dst []conicQuad, k conic, tolSq float64, depth int) []conicQuad {
	if depth >= maxConicDepth || k.errorSq() <= tolSq {
		return append(dst, conicQuad{pts: [3]vec.Vec2{k.p0, k.p1, k.p2}, depth: depth})
	}
	a, b := k.split()
	dst = appendConicQuads(dst, a, tolSq, depth+1)
	return appendConicQuads(dst, b, tolSq, depth+1)
}
