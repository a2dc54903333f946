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

package metric

import (
	"errors"
	"fmt"
	"strings"
)

// Attribute identifies one of the tunable fields of a [Page].
type Attribute uint8

// These are the tunable attributes, in the order used by [Attribute.Next].
const (
	MarginsTopBottom Attribute = iota
	MarginsLeftRight
	CharSpacingRatio
	LineSpacingRatio
	CharHeight
	MidStrokeRatio
	ShortStrokeRatio
	StrokeWidthRatio
)

// Attributes lists all attributes in cycling order.
var Attributes = []Attribute{
	MarginsTopBottom,
	MarginsLeftRight,
	CharSpacingRatio,
	LineSpacingRatio,
	CharHeight,
	MidStrokeRatio,
	ShortStrokeRatio,
	StrokeWidthRatio,
}

var attributeNames = map[Attribute]string{
	MarginsTopBottom: "MarginsTopBottom",
	MarginsLeftRight: "MarginsLeftRight",
	CharSpacingRatio: "CharSpacingRatio",
	LineSpacingRatio: "LineSpacingRatio",
	CharHeight:       "CharHeight",
	MidStrokeRatio:   "MidStrokeRatio",
	ShortStrokeRatio: "ShortStrokeRatio",
	StrokeWidthRatio: "StrokeWidthRatio",
}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attribute(%d)", uint8(a))
}

// Step returns the amount by which interactive tuning changes the
// attribute.  Unknown attributes have step 0.
func (a Attribute) Step() float64 {
	switch a {
	case MarginsTopBottom, MarginsLeftRight, CharSpacingRatio, LineSpacingRatio:
		return 0.005
	case CharHeight:
		return 2
	case MidStrokeRatio, ShortStrokeRatio:
		return 0.0025
	case StrokeWidthRatio:
		return 0.001
	default:
		return 0
	}
}

// Next returns the attribute following a, wrapping around after the last.
func (a Attribute) Next() Attribute {
	i := a.index()
	return Attributes[(i+1)%len(Attributes)]
}

// Prev returns the attribute preceding a, wrapping around before the first.
func (a Attribute) Prev() Attribute {
	i := a.index()
	return Attributes[(i+len(Attributes)-1)%len(Attributes)]
}

// index returns the position of a in Attributes.
// Unknown attributes are treated as the first one.
func (a Attribute) index() int {
	for i, b := range Attributes {
		if a == b {
			return i
		}
	}
	return 0
}

// ErrUnknownAttribute is returned by [ParseAttribute] for names which do not
// correspond to an attribute.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ParseAttribute returns the attribute with the given name.
// The comparison ignores case.
func ParseAttribute(name string) (Attribute, error) {
	for _, a := range Attributes {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAttribute)
}

// field returns a pointer to the field of p which stores a.
func (p *Page) field(a Attribute) *float64 {
	switch a {
	case MarginsTopBottom:
		return &p.MarginsTopBottom
	case MarginsLeftRight:
		return &p.MarginsLeftRight
	case CharSpacingRatio:
		return &p.CharSpacingRatio
	case LineSpacingRatio:
		return &p.LineSpacing
	case CharHeight:
		return &p.CharHeight
	case MidStrokeRatio:
		return &p.MidStrokeRatio
	case ShortStrokeRatio:
		return &p.ShortStrokeRatio
	case StrokeWidthRatio:
		return &p.StrokeWidthRatio
	default:
		return nil
	}
}

// Attribute returns the current value of a.
func (p *Page) Attribute(a Attribute) float64 {
	if f := p.field(a); f != nil {
		return *f
	}
	return 0
}

// SetAttribute sets the value of a.
func (p *Page) SetAttribute(a Attribute, value float64) {
	if f := p.field(a); f != nil {
		*f = value
	}
}

// ChangeAttribute adds modifier times the step size of a to the attribute.
//
// The result is not clamped.  Values which make derived lengths negative
// are accepted, see [Page.Degenerate].
func (p *Page) ChangeAttribute(a Attribute, modifier float64) {
	if f := p.field(a); f != nil {
		*f += modifier * a.Step()
	}
}
