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

package printer

import "seehuhn.de/go/dux/glyph"

// A Sink receives the rectangles produced by a [Printer].
type Sink interface {
	DrawRect(r glyph.Rect)
}

// SinkFunc adapts an ordinary function to the [Sink] interface.
type SinkFunc func(r glyph.Rect)

// DrawRect calls f(r).
func (f SinkFunc) DrawRect(r glyph.Rect) {
	f(r)
}

// A PageSink is a [Sink] which is told when the printer moves on to a new
// page.
type PageSink interface {
	Sink
	NewPage()
}

// Collector is a Sink which records all rectangles.
type Collector struct {
	Rects []glyph.Rect
	Pages int
}

// DrawRect implements the [Sink] interface.
func (c *Collector) DrawRect(r glyph.Rect) {
	c.Rects = append(c.Rects, r)
}

// NewPage implements the [PageSink] interface.
func (c *Collector) NewPage() {
	c.Pages++
}
