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

// Package metric implements the parametric metric model of the dux script.
//
// All stroke lengths are derived from a small number of ratios and one
// absolute character height.  The long stroke length is
//
//	LongStrokeLength = CharHeight * (1 - 2*(ShortStrokeRatio - StrokeWidthRatio))
//
// so that the defining relation
//
//	CharHeight = 2*(ShortStrokeRatio - StrokeWidthRatio)*CharHeight + LongStrokeLength
//
// holds for all values.  The short, mid and stroke width lengths are given as
// multiples of the long stroke length.
//
// Page coordinates have their origin at the centre of the page, with the y
// axis pointing up.  Derived values are recomputed on every call, so that
// changes to the fields are visible immediately.
package metric

import (
	"seehuhn.de/go/geom/rect"
)

// Page holds the base measurements and ratios of the metric model.
//
// The zero value is not useful; use [New] to obtain a Page with the default
// proportions.
type Page struct {
	// Width and Height give the size of the drawable area.
	Width, Height float64

	// MarginsTopBottom is the margin on the top and bottom edges of the
	// page, as a fraction of the page height.
	MarginsTopBottom float64

	// MarginsLeftRight is the margin on the left and right edges of the
	// page, as a fraction of the page width.
	MarginsLeftRight float64

	// CharSpacingRatio is the vertical space between glyphs, in multiples of
	// CharHeight.
	CharSpacingRatio float64

	// LineSpacing is the space between lines, in multiples of the character
	// width.
	LineSpacing float64

	// CharHeight is the total height of a character.
	CharHeight float64

	// MidStrokeRatio is the length of a mid stroke, relative to the long
	// stroke length.
	MidStrokeRatio float64

	// ShortStrokeRatio is the length of a short stroke, relative to the long
	// stroke length.
	ShortStrokeRatio float64

	// StrokeWidthRatio is the thickness of all strokes, relative to the
	// long stroke length.
	StrokeWidthRatio float64
}

// Default proportions used by [New].
const (
	DefaultMargins          = 0.02
	DefaultCharSpacingRatio = 0.065
	DefaultLineSpacing      = 0.1
	DefaultCharHeight       = 75.0
	DefaultMidStrokeRatio   = 0.5
	DefaultShortStrokeRatio = 0.2
	DefaultStrokeWidthRatio = 0.02 / 0.3
)

// New returns a page of the given size with the default proportions.
func New(width, height float64) *Page {
	return &Page{
		Width:            width,
		Height:           height,
		MarginsTopBottom: DefaultMargins,
		MarginsLeftRight: DefaultMargins,
		CharSpacingRatio: DefaultCharSpacingRatio,
		LineSpacing:      DefaultLineSpacing,
		CharHeight:       DefaultCharHeight,
		MidStrokeRatio:   DefaultMidStrokeRatio,
		ShortStrokeRatio: DefaultShortStrokeRatio,
		StrokeWidthRatio: DefaultStrokeWidthRatio,
	}
}

// UpdateDimensions replaces the size of the drawable area.
// The ratios are not changed.
func (p *Page) UpdateDimensions(width, height float64) {
	p.Width = width
	p.Height = height
}

// LongStrokeLength returns the length of a long stroke.
func (p *Page) LongStrokeLength() float64 {
	return p.CharHeight * (1 - 2*(p.ShortStrokeRatio-p.StrokeWidthRatio))
}

// MidStrokeLength returns the length of a mid stroke.
func (p *Page) MidStrokeLength() float64 {
	return p.LongStrokeLength() * p.MidStrokeRatio
}

// ShortStrokeLength returns the length of a short stroke.
func (p *Page) ShortStrokeLength() float64 {
	return p.LongStrokeLength() * p.ShortStrokeRatio
}

// StrokeWidth returns the thickness of all strokes.
func (p *Page) StrokeWidth() float64 {
	return p.LongStrokeLength() * p.StrokeWidthRatio
}

// CharWidth returns the width of a glyph cell.
func (p *Page) CharWidth() float64 {
	return p.LongStrokeLength()
}

// PunctuationHeight returns the height of a punctuation mark.
func (p *Page) PunctuationHeight() float64 {
	return p.ShortStrokeLength()
}

// CharSpacing returns the vertical gap between consecutive glyphs.
func (p *Page) CharSpacing() float64 {
	return p.CharSpacingRatio * p.CharHeight
}

// RightEdge returns the x coordinate of the right margin.
func (p *Page) RightEdge() float64 {
	return p.Width/2 - p.Width*p.MarginsLeftRight
}

// LeftEdge returns the x coordinate of the left margin.
func (p *Page) LeftEdge() float64 {
	return -p.Width/2 + p.Width*p.MarginsLeftRight
}

// TopEdge returns the y coordinate of the top margin.
func (p *Page) TopEdge() float64 {
	return p.Height/2 - p.Height*p.MarginsTopBottom
}

// BottomEdge returns the y coordinate of the bottom margin.
func (p *Page) BottomEdge() float64 {
	return -p.Height/2 + p.Height*p.MarginsTopBottom
}

// Frame returns the area inside the margins.
func (p *Page) Frame() rect.Rect {
	return rect.Rect{
		LLx: p.LeftEdge(),
		LLy: p.BottomEdge(),
		URx: p.RightEdge(),
		URy: p.TopEdge(),
	}
}

// Degenerate reports whether any of the derived lengths is zero or
// negative.  Such a model still produces rectangles, but some of them have
// no area.
func (p *Page) Degenerate() bool {
	return p.LongStrokeLength() <= 0 ||
		p.MidStrokeLength() <= 0 ||
		p.ShortStrokeLength() <= 0 ||
		p.StrokeWidth() <= 0
}
