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

// Package render paints laid out text onto an output device.
//
// A [Session] connects a [printer.Printer] to a [Device].  In debug mode
// the session also outlines the page frame and every glyph cell, and fills
// consecutive rectangles with different colours.
package render

import (
	"image/color"

	"seehuhn.de/go/dux/glyph"
	"seehuhn.de/go/dux/metric"
	"seehuhn.de/go/dux/printer"
	"seehuhn.de/go/dux/script"
)

// A Device paints rectangles given in page coordinates.
type Device interface {
	// FillRect paints the interior of r.
	FillRect(r glyph.Rect, c color.Color)

	// StrokeRect paints the outline of r.
	StrokeRect(r glyph.Rect, c color.Color)

	// NewPage finishes the current page and starts a new one.
	NewPage()
}

// Colours used for the debug overlay.
var (
	FrameColor color.Color = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	CellColor  color.Color = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// DebugAlpha is the opacity of filled rectangles in debug mode.
const DebugAlpha = 0.9

// DefaultPalette is used to fill rectangles in debug mode.
var DefaultPalette = []color.Color{
	color.NRGBA{0, 0, 0, 255},
	color.NRGBA{255, 0, 0, 255},
	color.NRGBA{0, 128, 0, 255},
	color.NRGBA{0, 0, 255, 255},
	color.NRGBA{255, 255, 0, 255},
	color.NRGBA{0, 255, 255, 255},
	color.NRGBA{255, 0, 255, 255},
	color.NRGBA{128, 128, 128, 255},
}

// Options control the appearance of the output.
type Options struct {
	// Debug enables the frame and cell outlines.
	Debug bool

	// Palette is cycled through when filling rectangles in debug mode.
	// If this is empty, DefaultPalette is used.
	Palette []color.Color

	// Ink is the colour of all rectangles in normal mode.
	// If this is nil, black is used.
	Ink color.Color
}

var defaultOptions = &Options{}

// Session renders text onto a single device.
type Session struct {
	m   *metric.Page
	dev Device
	opt Options

	p     *printer.Printer
	fills int
}

// NewSession starts a new session at the beginning of the first page.
// If opt is nil, default options are used.
func NewSession(m *metric.Page, dev Device, opt *Options) *Session {
	if opt == nil {
		opt = defaultOptions
	}
	s := &Session{
		m:   m,
		dev: dev,
		opt: *opt,
		p:   printer.New(m),
	}
	if len(s.opt.Palette) == 0 {
		s.opt.Palette = DefaultPalette
	}
	if s.opt.Ink == nil {
		s.opt.Ink = color.Black
	}
	s.drawFrame()
	return s
}

// Printer returns the printer used by the session.
func (s *Session) Printer() *printer.Printer {
	return s.p
}

// Text prints all paragraphs of t.  Each paragraph ends with a line
// break.
func (s *Session) Text(t script.Text) {
	s.Paragraphs(t.Paragraphs())
}

// Paragraphs prints each element of pars, followed by a line break.
func (s *Session) Paragraphs(pars [][]glyph.Grapheme) {
	for _, gs := range pars {
		s.Graphemes(gs)
		s.p.Newline()
	}
}

// Graphemes prints gs without a final line break.
func (s *Session) Graphemes(gs []glyph.Grapheme) {
	var hook printer.Hook
	if s.opt.Debug {
		hook = s.outlineCell
	}
	s.p.Print(gs, s, hook)
}

// DrawRect implements the [printer.Sink] interface.
func (s *Session) DrawRect(r glyph.Rect) {
	if !s.opt.Debug {
		s.dev.FillRect(r, s.opt.Ink)
		return
	}
	c := s.opt.Palette[s.fills%len(s.opt.Palette)]
	s.fills++
	s.dev.FillRect(r, withAlpha(c, DebugAlpha))
}

// NewPage implements the [printer.PageSink] interface.
func (s *Session) NewPage() {
	s.dev.NewPage()
	s.drawFrame()
}

func (s *Session) drawFrame() {
	if !s.opt.Debug {
		return
	}
	f := s.m.Frame()
	s.dev.StrokeRect(glyph.Rect{X: f.LLx, Y: f.URy, W: f.Dx(), H: f.Dy()}, FrameColor)
}

func (s *Session) outlineCell(c printer.Cursor, g glyph.Grapheme) {
	s.dev.StrokeRect(printer.Cell(s.m, c, g.Height), CellColor)
}

// withAlpha returns c with its opacity multiplied by alpha.
func withAlpha(c color.Color, alpha float64) color.NRGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(float64(nc.A)*alpha + 0.5)
	return nc
}
