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

package pdf

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Content accumulates the operators of a page content stream.
//
// Errors are sticky: once Err is set, all further operations are ignored.
type Content struct {
	Err error

	buf        bytes.Buffer
	extGStates map[float64]Name
}

// Data returns the content stream.
func (c *Content) Data() []byte {
	return c.buf.Bytes()
}

func (c *Content) op(args ...any) {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf, args...)
}

func coord(x float64) string {
	if xInt := math.Round(x); math.Abs(x-xInt) < 1e-6 {
		return strconv.FormatFloat(xInt, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', 3, 64)
}

// Transform modifies the current transformation matrix.
//
// This implements the PDF graphics operator "cm".
func (c *Content) Transform(m [6]float64) {
	c.op(coord(m[0]), coord(m[1]), coord(m[2]), coord(m[3]), coord(m[4]), coord(m[5]), "cm")
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (c *Content) PushGraphicsState() {
	c.op("q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (c *Content) PopGraphicsState() {
	c.op("Q")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (c *Content) SetLineWidth(width float64) {
	if c.Err == nil && width < 0 {
		c.Err = fmt.Errorf("SetLineWidth: negative width %f", width)
		return
	}
	c.op(coord(width), "w")
}

func colorComponent(x uint8) string {
	return strconv.FormatFloat(float64(x)/255, 'f', -1, 64)
}

// SetFillRGB sets the fill colour.
//
// This implements the PDF graphics operator "rg".
func (c *Content) SetFillRGB(r, g, b uint8) {
	c.op(colorComponent(r), colorComponent(g), colorComponent(b), "rg")
}

// SetStrokeRGB sets the stroke colour.
//
// This implements the PDF graphics operator "RG".
func (c *Content) SetStrokeRGB(r, g, b uint8) {
	c.op(colorComponent(r), colorComponent(g), colorComponent(b), "RG")
}

// SetAlpha selects an extended graphics state which sets both the fill and
// the stroke opacity.
//
// This implements the PDF graphics operator "gs".
func (c *Content) SetAlpha(alpha float64) {
	if c.extGStates == nil {
		c.extGStates = make(map[float64]Name)
	}
	name, ok := c.extGStates[alpha]
	if !ok {
		name = Name("GS" + strconv.Itoa(len(c.extGStates)))
		c.extGStates[alpha] = name
	}
	if c.Err != nil {
		return
	}
	buf := &bytes.Buffer{}
	c.Err = name.PDF(buf)
	c.op(buf.String(), "gs")
}

// Rectangle appends a rectangle to the current path.
// The rectangle has lower left corner (x, y).
//
// This implements the PDF graphics operator "re".
func (c *Content) Rectangle(x, y, width, height float64) {
	c.op(coord(x), coord(y), coord(width), coord(height), "re")
}

// Fill fills the current path.
//
// This implements the PDF graphics operator "f".
func (c *Content) Fill() {
	c.op("f")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (c *Content) Stroke() {
	c.op("S")
}

// Resources returns the resource dictionary for the content stream, or nil
// if no resources are used.
func (c *Content) Resources() Dict {
	if len(c.extGStates) == 0 {
		return nil
	}
	gs := Dict{}
	for alpha, name := range c.extGStates {
		gs[name] = Dict{
			"Type": Name("ExtGState"),
			"ca":   Real(alpha),
			"CA":   Real(alpha),
		}
	}
	return Dict{"ExtGState": gs}
}
