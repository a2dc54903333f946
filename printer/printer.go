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

// Package printer lays out a stream of graphemes on the pages of a
// [metric.Page].
//
// Lines run from the top of the page to the bottom.  The first line is at
// the right edge of the page, further lines follow to the left.  When a
// glyph does not fit below the previous one, the printer wraps to the next
// line.  When a line does not fit to the left of the previous one, the
// printer starts a new page.
package printer

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dux/glyph"
	"seehuhn.de/go/dux/metric"
)

// Cursor is a snapshot of the printer state, taken just before a glyph is
// drawn.
type Cursor struct {
	Page   int
	Line   int
	Chars  int
	Puncts int

	// Anchor is the top-right corner of the glyph cell.
	Anchor vec.Vec2
}

// A Hook is called for every grapheme, after any line wrap and before the
// strokes are drawn.
type Hook func(c Cursor, g glyph.Grapheme)

// Printer is the layout cursor.
//
// The zero value is not usable; use [New] to create a Printer.
type Printer struct {
	m *metric.Page

	page   int
	line   int
	chars  int
	puncts int

	// announced is the last page reported to a PageSink.
	announced int
}

// New returns a printer positioned at the start of the first page.
// The metric model is not copied, so that changes to m are visible
// immediately.
func New(m *metric.Page) *Printer {
	return &Printer{m: m}
}

// Metrics returns the metric model used by the printer.
func (p *Printer) Metrics() *metric.Page {
	return p.m
}

// Reset moves the printer back to the start of the first page.
func (p *Printer) Reset() {
	*p = Printer{m: p.m}
}

// Position returns the anchor of the next glyph, i.e. the top-right corner
// of its cell.
func (p *Printer) Position() vec.Vec2 {
	m := p.m
	x := m.RightEdge() - m.CharWidth()*(1+m.LineSpacing)*float64(p.line)
	y := m.TopEdge() - (m.CharHeight*float64(p.chars) +
		m.PunctuationHeight()*float64(p.puncts) +
		m.CharSpacing()*float64(p.chars+p.puncts))
	return vec.Vec2{X: x, Y: y}
}

// Cursor returns a snapshot of the current state.
func (p *Printer) Cursor() Cursor {
	return Cursor{
		Page:   p.page,
		Line:   p.line,
		Chars:  p.chars,
		Puncts: p.puncts,
		Anchor: p.Position(),
	}
}

// fits reports whether a glyph of height h can be placed at the current
// position without crossing the bottom margin.
func (p *Printer) fits(h glyph.Height) bool {
	return p.Position().Y-h.Size(p.m) >= p.m.BottomEdge()
}

// PrintGrapheme draws g at the current position and advances the cursor.
// The hook may be nil.
func (p *Printer) PrintGrapheme(g glyph.Grapheme, sink Sink, hook Hook) {
	wrapped := false
	if !p.fits(g.Height) {
		p.Newline()
		wrapped = true
	}
	p.announce(sink)

	c := p.Cursor()
	if hook != nil {
		hook(c, g)
	}
	for _, s := range g.Strokes {
		for _, r := range glyph.Rects(s, p.m, c.Anchor) {
			sink.DrawRect(r)
		}
	}

	if p.fits(g.Height) {
		p.bump(g.Height)
	} else if !wrapped {
		p.Newline()
	}
	// If the glyph did not fit even on a fresh line, the page is too
	// short for a single glyph.  The wrap above already used up one line,
	// so the cursor stays where it is.
}

// Print draws all graphemes in order.
func (p *Printer) Print(gs []glyph.Grapheme, sink Sink, hook Hook) {
	for _, g := range gs {
		p.PrintGrapheme(g, sink, hook)
	}
}

// IncrementChar moves the cursor down by one character cell.
// If the current cell does not fit on the line, the printer moves to the
// next line instead.
func (p *Printer) IncrementChar() {
	p.advance(glyph.Character)
}

// IncrementPunctuation moves the cursor down by one punctuation cell.
// If the current cell does not fit on the line, the printer moves to the
// next line instead.
func (p *Printer) IncrementPunctuation() {
	p.advance(glyph.Punctuation)
}

func (p *Printer) advance(h glyph.Height) {
	if p.fits(h) {
		p.bump(h)
	} else {
		p.Newline()
	}
}

func (p *Printer) bump(h glyph.Height) {
	if h == glyph.Punctuation {
		p.puncts++
	} else {
		p.chars++
	}
}

// Newline moves the cursor to the top of the next line.
// If the next line would cross the left margin, the printer moves on to the
// first line of a new page.  The first line of a page is always used, even
// if the page is too narrow for it.
func (p *Printer) Newline() {
	p.line++
	p.chars = 0
	p.puncts = 0
	if p.Position().X-p.m.CharWidth() < p.m.LeftEdge() {
		p.page++
		p.line = 0
	}
}

// announce tells sink about pages started since the last call.
// Page changes are reported lazily, so that a trailing line break does not
// produce an empty page.
func (p *Printer) announce(sink Sink) {
	if p.announced == p.page {
		return
	}
	if ps, ok := sink.(PageSink); ok {
		for range p.page - p.announced {
			ps.NewPage()
		}
	}
	p.announced = p.page
}

// Cell returns the glyph cell of height h at the position recorded in c.
func Cell(m *metric.Page, c Cursor, h glyph.Height) glyph.Rect {
	w := m.CharWidth()
	return glyph.Rect{
		X: c.Anchor.X - w,
		Y: c.Anchor.Y,
		W: w,
		H: h.Size(m),
	}
}

// Placed describes one grapheme after layout.
type Placed struct {
	Cursor   Cursor
	Grapheme glyph.Grapheme
	Rects    []glyph.Rect
}

// Layout lays out gs on a fresh printer and returns the result grapheme by
// grapheme.
func Layout(m *metric.Page, gs []glyph.Grapheme) []Placed {
	p := New(m)
	res := make([]Placed, 0, len(gs))
	for _, g := range gs {
		var rects []glyph.Rect
		var cursor Cursor
		hook := func(c Cursor, _ glyph.Grapheme) { cursor = c }
		sink := SinkFunc(func(r glyph.Rect) { rects = append(rects, r) })
		p.PrintGrapheme(g, sink, hook)
		res = append(res, Placed{Cursor: cursor, Grapheme: g, Rects: rects})
	}
	return res
}
