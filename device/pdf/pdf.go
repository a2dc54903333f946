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

// Package pdf implements an output device which writes PDF files.
//
// Every page of the layout becomes one page of the PDF file, with the size
// given by the metric model.  Rectangles are written as vector paths.
// The document catalog carries an XMP metadata stream and an sRGB output
// intent.
package pdf

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"seehuhn.de/go/dux/glyph"
	"seehuhn.de/go/dux/internal/pdf"
	"seehuhn.de/go/dux/metric"
)

// OutlineWidth is the line width used by StrokeRect, in page units.
const OutlineWidth = 1.0

// Device writes a multi-page PDF file.
//
// Errors are sticky: the first error is stored in Err, and all further
// drawing operations are ignored.  Close returns the stored error.
type Device struct {
	Err error

	// Compress enables FlateDecode compression of the page contents.
	Compress bool

	// Title, if set, is stored as dc:title in the XMP metadata.
	Title string

	fd       io.Closer
	out      *pdf.Writer
	pagesRef *pdf.Reference
	kids     pdf.Array

	width, height float64
	content       *pdf.Content
}

// Create creates the named PDF file.  If a file with the same name exists,
// it is overwritten.  Close must be called to complete the file.
func Create(name string, m *metric.Page) (*Device, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	d, err := newDevice(fd, m)
	if err != nil {
		fd.Close()
		return nil, err
	}
	d.fd = fd
	return d, nil
}

// New returns a device which writes a PDF file to w.
// The writer w is not closed by [Device.Close].
func New(w io.Writer, m *metric.Page) (*Device, error) {
	return newDevice(struct{ io.Writer }{w}, m)
}

func newDevice(w io.Writer, m *metric.Page) (*Device, error) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g", m.Width, m.Height)
	}
	out, err := pdf.NewWriter(w)
	if err != nil {
		return nil, err
	}
	d := &Device{
		out:      out,
		pagesRef: out.Alloc(),
		width:    m.Width,
		height:   m.Height,
	}
	d.startPage()
	return d, nil
}

func (d *Device) startPage() {
	d.content = &pdf.Content{}
	// page coordinates have their origin at the centre of the page
	d.content.Transform([6]float64{1, 0, 0, 1, d.width / 2, d.height / 2})
}

// FillRect paints the interior of r.
func (d *Device) FillRect(r glyph.Rect, c color.Color) {
	if d.Err != nil || r.Empty() {
		return
	}
	cs := d.content
	col := color.NRGBAModel.Convert(c).(color.NRGBA)
	cs.PushGraphicsState()
	cs.SetFillRGB(col.R, col.G, col.B)
	if col.A < 255 {
		cs.SetAlpha(float64(col.A) / 255)
	}
	cs.Rectangle(r.X, r.Y-r.H, r.W, r.H)
	cs.Fill()
	cs.PopGraphicsState()
	d.Err = cs.Err
}

// StrokeRect paints the outline of r.
func (d *Device) StrokeRect(r glyph.Rect, c color.Color) {
	if d.Err != nil || r.Empty() {
		return
	}
	cs := d.content
	col := color.NRGBAModel.Convert(c).(color.NRGBA)
	cs.PushGraphicsState()
	cs.SetStrokeRGB(col.R, col.G, col.B)
	if col.A < 255 {
		cs.SetAlpha(float64(col.A) / 255)
	}
	cs.SetLineWidth(OutlineWidth)
	cs.Rectangle(r.X, r.Y-r.H, r.W, r.H)
	cs.Stroke()
	cs.PopGraphicsState()
	d.Err = cs.Err
}

// NewPage finishes the current page and starts a new one.
func (d *Device) NewPage() {
	if d.Err != nil {
		return
	}
	d.Err = d.finishPage()
	d.startPage()
}

// Pages returns the number of pages started so far.
func (d *Device) Pages() int {
	return len(d.kids) + 1
}

func (d *Device) finishPage() error {
	if d.content.Err != nil {
		return d.content.Err
	}
	stm := &pdf.Stream{Data: d.content.Data()}
	if d.Compress {
		var err error
		stm, err = pdf.FlateStream(stm.Data)
		if err != nil {
			return err
		}
	}
	contentRef, err := d.out.WriteIndirect(stm, nil)
	if err != nil {
		return err
	}
	page := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   d.pagesRef,
		"Contents": contentRef,
	}
	if res := d.content.Resources(); res != nil {
		page["Resources"] = res
	}
	pageRef, err := d.out.WriteIndirect(page, nil)
	if err != nil {
		return err
	}
	d.kids = append(d.kids, pageRef)
	return nil
}

// Close writes the last page and completes the PDF file.
// Files opened by [Create] are closed, even if an error occurred.
func (d *Device) Close() error {
	err := d.close()
	if err != nil && d.fd != nil {
		d.fd.Close()
	}
	return err
}

func (d *Device) close() error {
	if d.Err != nil {
		return d.Err
	}
	err := d.finishPage()
	if err != nil {
		return err
	}

	_, err = d.out.WriteIndirect(pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     d.kids,
		"Count":    pdf.Integer(len(d.kids)),
		"MediaBox": pdf.Rectangle(0, 0, d.width, d.height),
	}, d.pagesRef)
	if err != nil {
		return err
	}
	meta, err := d.writeMetadata()
	if err != nil {
		return err
	}
	intents, err := d.writeOutputIntents()
	if err != nil {
		return err
	}
	catalog, err := d.out.WriteIndirect(pdf.Dict{
		"Type":          pdf.Name("Catalog"),
		"Pages":         d.pagesRef,
		"Metadata":      meta,
		"OutputIntents": intents,
	}, nil)
	if err != nil {
		return err
	}
	return d.out.Close(catalog)
}
