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

// Package canvas implements an output device based on the gg 2D graphics
// library.
package canvas

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"

	"seehuhn.de/go/dux/glyph"
	"seehuhn.de/go/dux/metric"
)

// Device paints each page into its own gg drawing context.
type Device struct {
	// Err is the first error returned by the drawing library.
	// Once set, further drawing operations are ignored.
	Err error

	// LineWidth is the width of outlines, in pixels.
	LineWidth float64

	Width, Height int

	scale float64
	pages []*gg.Context
}

// New returns a device for pages of the size given by m.
// One page unit corresponds to scale pixels.
func New(m *metric.Page, scale float64) *Device {
	d := &Device{
		LineWidth: 1,
		Width:     max(int(math.Ceil(m.Width*scale)), 1),
		Height:    max(int(math.Ceil(m.Height*scale)), 1),
		scale:     scale,
	}
	d.NewPage()
	return d
}

// NewPage starts a new, white page.
func (d *Device) NewPage() {
	dc := gg.NewContext(d.Width, d.Height)
	dc.ClearWithColor(gg.White)
	d.pages = append(d.pages, dc)
}

// Pages returns the number of pages started so far.
func (d *Device) Pages() int {
	return len(d.pages)
}

func (d *Device) current() *gg.Context {
	return d.pages[len(d.pages)-1]
}

// path adds r to the current path, converted to pixel coordinates.
func (d *Device) path(dc *gg.Context, r glyph.Rect) {
	x := d.scale*r.X + float64(d.Width)/2
	y := float64(d.Height)/2 - d.scale*r.Y
	dc.DrawRectangle(x, y, d.scale*r.W, d.scale*r.H)
}

// FillRect paints the interior of r.
func (d *Device) FillRect(r glyph.Rect, c color.Color) {
	if d.Err != nil || r.Empty() {
		return
	}
	dc := d.current()
	dc.SetColor(c)
	d.path(dc, r)
	d.Err = dc.Fill()
}

// StrokeRect paints the outline of r.
func (d *Device) StrokeRect(r glyph.Rect, c color.Color) {
	if d.Err != nil || r.Empty() {
		return
	}
	dc := d.current()
	dc.SetColor(c)
	dc.SetLineWidth(d.LineWidth)
	d.path(dc, r)
	d.Err = dc.Stroke()
}

// Image returns the contents of the given page.
// Pages are numbered from 0.
func (d *Device) Image(page int) image.Image {
	return d.pages[page].Image()
}

// WritePNG writes the given page to w, in PNG format.
func (d *Device) WritePNG(w io.Writer, page int) error {
	if d.Err != nil {
		return d.Err
	}
	return d.pages[page].EncodePNG(w)
}

// SavePNG writes the given page to a PNG file.
func (d *Device) SavePNG(page int, fname string) error {
	if d.Err != nil {
		return d.Err
	}
	return d.pages[page].SavePNG(fname)
}

// Close releases the drawing contexts of all pages.
func (d *Device) Close() error {
	var errs []error
	for _, dc := range d.pages {
		errs = append(errs, dc.Close())
	}
	d.pages = nil
	return errors.Join(errs...)
}
