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

// Package raster implements an output device which paints into images,
// using an anti-aliasing rasterizer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dux/glyph"
	"seehuhn.de/go/dux/metric"
)

// Device paints pages into RGBA images.
type Device struct {
	// Pages holds one image per page.  The last element is the page
	// currently being drawn.
	Pages []*image.RGBA

	// LineWidth is the width of outlines, in pixels.
	LineWidth float64

	Width, Height int

	ctm    matrix.Matrix
	raster *vector.Rasterizer
}

// New returns a device for pages of the size given by m.
// One page unit corresponds to scale pixels.
func New(m *metric.Page, scale float64) *Device {
	width := max(int(math.Ceil(m.Width*scale)), 1)
	height := max(int(math.Ceil(m.Height*scale)), 1)

	// Page coordinates have the origin at the centre and the y axis
	// pointing up, image coordinates start at the top left.
	ctm := matrix.Scale(scale, -scale).Mul(matrix.Translate(float64(width)/2, float64(height)/2))

	d := &Device{
		LineWidth: 1,
		Width:     width,
		Height:    height,
		ctm:       ctm,
		raster:    vector.NewRasterizer(width, height),
	}
	d.NewPage()
	return d
}

// NewPage starts a new, white page.
func (d *Device) NewPage() {
	img := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	d.Pages = append(d.Pages, img)
}

func (d *Device) current() *image.RGBA {
	return d.Pages[len(d.Pages)-1]
}

// deviceCoords maps page coordinates to pixel coordinates.
func (d *Device) deviceCoords(x, y float64) vec.Vec2 {
	px, py := d.ctm.Apply(x, y)
	return vec.Vec2{X: px, Y: py}
}

// corners returns the corners of r in pixel coordinates, top left first,
// in clockwise order on screen.
func (d *Device) corners(r glyph.Rect) [4]vec.Vec2 {
	return [4]vec.Vec2{
		d.deviceCoords(r.X, r.Y),
		d.deviceCoords(r.X+r.W, r.Y),
		d.deviceCoords(r.X+r.W, r.Y-r.H),
		d.deviceCoords(r.X, r.Y-r.H),
	}
}

func (d *Device) addPath(pts [4]vec.Vec2, reverse bool) {
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	d.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		d.raster.LineTo(float32(p.X), float32(p.Y))
	}
	d.raster.ClosePath()
}

func (d *Device) paint(c color.Color) {
	img := d.current()
	d.raster.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	d.raster.Reset(d.Width, d.Height)
}

// FillRect paints the interior of r.
func (d *Device) FillRect(r glyph.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	d.raster.Reset(d.Width, d.Height)
	d.addPath(d.corners(r), false)
	d.paint(c)
}

// StrokeRect paints the outline of r.  The outline is centred on the
// boundary of r.
func (d *Device) StrokeRect(r glyph.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	outer := d.corners(r)
	lw := d.LineWidth / 2
	outer[0] = outer[0].Add(vec.Vec2{X: -lw, Y: -lw})
	outer[1] = outer[1].Add(vec.Vec2{X: lw, Y: -lw})
	outer[2] = outer[2].Add(vec.Vec2{X: lw, Y: lw})
	outer[3] = outer[3].Add(vec.Vec2{X: -lw, Y: lw})

	d.raster.Reset(d.Width, d.Height)
	d.addPath(outer, false)
	inner := d.corners(r)
	if inner[2].X-inner[0].X > 2*lw && inner[2].Y-inner[0].Y > 2*lw {
		inner[0] = inner[0].Add(vec.Vec2{X: lw, Y: lw})
		inner[1] = inner[1].Add(vec.Vec2{X: -lw, Y: lw})
		inner[2] = inner[2].Add(vec.Vec2{X: -lw, Y: -lw})
		inner[3] = inner[3].Add(vec.Vec2{X: lw, Y: -lw})
		d.addPath(inner, true)
	}
	d.paint(c)
}

// WritePNG writes the given page to w, in PNG format.
// Pages are numbered from 0.
func (d *Device) WritePNG(w io.Writer, page int) error {
	return png.Encode(w, d.Pages[page])
}
