// seehuhn.de/go/dux - glyph geometry and page layout for the dux script
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

package glyph

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle in page coordinates.
//
// (X, Y) is the top-left corner.  Since the y axis of the page points up,
// the rectangle covers the area [X, X+W] × [Y-H, Y].
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.W, r.H)
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Bounds returns r as a rectangle given by its lower left and upper right
// corners.
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{
		LLx: r.X,
		LLy: r.Y - r.H,
		URx: r.X + r.W,
		URy: r.Y,
	}
}

// Union returns the smallest rectangle containing all of rects.
// The result is the zero rectangle if rects is empty.
func Union(rects []Rect) rect.Rect {
	if len(rects) == 0 {
		return rect.Rect{}
	}
	bbox := rects[0].Bounds()
	for _, r := range rects[1:] {
		b := r.Bounds()
		bbox.LLx = min(bbox.LLx, b.LLx)
		bbox.LLy = min(bbox.LLy, b.LLy)
		bbox.URx = max(bbox.URx, b.URx)
		bbox.URy = max(bbox.URy, b.URy)
	}
	return bbox
}
