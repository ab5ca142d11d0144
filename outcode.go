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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outcode classifies a point against the four boundary lines of a
// rectangle.  Bounds are inclusive, so a point on the boundary has
// outcode 0.
type Outcode uint8

// The bits of an Outcode.  Device Y grows downwards, so OutTop means
// y < LLy.
const (
	OutLeft   Outcode = 1 << iota // x < LLx
	OutRight                      // x > URx
	OutTop                        // y < LLy
	OutBottom                     // y > URy
)

// OutcodeOf computes the outcode of p with respect to r.
func OutcodeOf(p vec.Vec2, r rect.Rect) Outcode {
	var c Outcode
	if p.X < r.LLx {
		c |= OutLeft
	} else if p.X > r.URx {
		c |= OutRight
	}
	if p.Y < r.LLy {
		c |= OutTop
	} else if p.Y > r.URy {
		c |= OutBottom
	}
	return c
}

// ValidClip reports whether r can be used as a clip rectangle.
// This requires LLx <= URx and LLy <= URy.  Rectangles with NaN
// coordinates are invalid.
func ValidClip(r rect.Rect) bool {
	return r.LLx <= r.URx && r.LLy <= r.URy
}

// lineState classifies one line segment for the clipping loop.
type lineState uint8

const (
	stateInside   lineState = iota // both end points visible
	stateBorder                    // both end points outside on a common side
	stateCrossing                  // the segment may cross the clip boundary
)

func lineStateOf(c0, c1 Outcode) lineState {
	switch {
	case c0|c1 == 0:
		return stateInside
	case c0&c1 != 0:
		return stateBorder
	default:
		return stateCrossing
	}
}

// sideOf picks the side which exterior travel with the common outcode
// bits c is attributed to.  Left and right take precedence, since only
// these need substitute edges.
func sideOf(c Outcode) Outcode {
	switch {
	case c&OutLeft != 0:
		return OutLeft
	case c&OutRight != 0:
		return OutRight
	default:
		return c & (OutTop | OutBottom)
	}
}
