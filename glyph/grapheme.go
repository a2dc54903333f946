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
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dux/metric"
)

// Height selects the vertical extent of a glyph cell.
type Height uint8

// These are the supported glyph heights.
const (
	Character Height = iota
	Punctuation
)

func (h Height) String() string {
	switch h {
	case Character:
		return "Character"
	case Punctuation:
		return "Punctuation"
	default:
		return fmt.Sprintf("Height(%d)", uint8(h))
	}
}

// Size returns the height of a glyph cell of type h.
// Unknown values are treated as [Character].
func (h Height) Size(p *metric.Page) float64 {
	if h == Punctuation {
		return p.PunctuationHeight()
	}
	return p.CharHeight
}

// A Grapheme is a single glyph: a set of strokes drawn into one cell.
type Grapheme struct {
	Strokes []Stroke
	Height  Height
}

// Rects returns the rectangles of all strokes of g, in stroke order.
func (g Grapheme) Rects(p *metric.Page, anchor vec.Vec2) []Rect {
	var res []Rect
	for _, s := range g.Strokes {
		res = append(res, Rects(s, p, anchor)...)
	}
	return res
}

func (g Grapheme) String() string {
	names := make([]string, len(g.Strokes))
	for i, s := range g.Strokes {
		names[i] = s.String()
	}
	return g.Height.String() + "[" + strings.Join(names, " ") + "]"
}
