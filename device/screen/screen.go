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

// Package screen implements an output device which draws into a terminal
// window, and an interactive preview built on top of it.
package screen

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/dux/glyph"
	"seehuhn.de/go/dux/metric"
)

// CellAspect is the height of a terminal cell, relative to its width.
const CellAspect = 2.0

// Runes used to paint filled rectangles and outlines.
const (
	FillRune    = '█'
	OutlineRune = '·'
)

// Device paints rectangles into a rectangular area of a terminal screen.
// Only one page is shown, all other pages are discarded.
type Device struct {
	Screen tcell.Screen

	// Visible is the number of the page shown on the screen, starting
	// from 0.
	Visible int

	// Cols and Rows give the size of the drawing area, in cells.
	Cols, Rows int

	page   int
	sx, sy float64 // cells per page unit
}

// New returns a device which shows pages of the size given by m, scaled
// to fit into a cols×rows area in the top-left corner of s.
func New(s tcell.Screen, m *metric.Page, cols, rows int) *Device {
	d := &Device{
		Screen: s,
		Cols:   cols,
		Rows:   rows,
	}
	if m.Width > 0 && m.Height > 0 {
		d.sx = float64(cols) / m.Width
		d.sy = d.sx / CellAspect
		if m.Height*d.sy > float64(rows) {
			d.sy = float64(rows) / m.Height
			d.sx = d.sy * CellAspect
		}
	}
	return d
}

// Page returns the number of the page currently being drawn.
func (d *Device) Page() int {
	return d.page
}

// NewPage implements the render.Device interface.
func (d *Device) NewPage() {
	d.page++
}

// cellRange returns the cells whose centres lie within [lo, hi],
// where position i has its centre at i+0.5.  If there are no such cells,
// the cell containing the midpoint is returned.
func cellRange(lo, hi float64) (int, int) {
	first := int(math.Ceil(lo - 0.5))
	last := int(math.Floor(hi - 0.5))
	if first > last {
		mid := int(math.Floor((lo + hi) / 2))
		return mid, mid
	}
	return first, last
}

// cells returns the range of cells covered by r.
func (d *Device) cells(r glyph.Rect) (c0, c1, r0, r1 int) {
	cx := float64(d.Cols) / 2
	cy := float64(d.Rows) / 2
	c0, c1 = cellRange(cx+d.sx*r.X, cx+d.sx*(r.X+r.W))
	r0, r1 = cellRange(cy-d.sy*r.Y, cy-d.sy*(r.Y-r.H))
	return
}

func (d *Device) set(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= d.Cols || row < 0 || row >= d.Rows {
		return
	}
	d.Screen.SetContent(col, row, ch, nil, style)
}

// FillRect implements the render.Device interface.
func (d *Device) FillRect(r glyph.Rect, c color.Color) {
	if d.page != d.Visible || r.Empty() {
		return
	}
	style := Style(c)
	c0, c1, r0, r1 := d.cells(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			d.set(col, row, FillRune, style)
		}
	}
}

// StrokeRect implements the render.Device interface.
func (d *Device) StrokeRect(r glyph.Rect, c color.Color) {
	if d.page != d.Visible || r.Empty() {
		return
	}
	style := Style(c)
	c0, c1, r0, r1 := d.cells(r)
	for col := c0; col <= c1; col++ {
		d.set(col, r0, OutlineRune, style)
		d.set(col, r1, OutlineRune, style)
	}
	for row := r0; row <= r1; row++ {
		d.set(c0, row, OutlineRune, style)
		d.set(c1, row, OutlineRune, style)
	}
}

// Style returns a style with foreground colour c on a white background.
// The alpha channel is ignored.
func Style(c color.Color) tcell.Style {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	fg := tcell.NewRGBColor(int32(nc.R), int32(nc.G), int32(nc.B))
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorWhite)
}
