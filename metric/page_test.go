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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
)

const eps = 1e-9

func checkIdentity(t *testing.T, p *Page) {
	t.Helper()
	lhs := 2*(p.ShortStrokeRatio-p.StrokeWidthRatio)*p.CharHeight + p.LongStrokeLength()
	if math.Abs(lhs-p.CharHeight) > eps*math.Max(1, math.Abs(p.CharHeight)) {
		t.Errorf("metric identity violated: 2*(shortRatio-widthRatio)*height+long = %g, char height = %g",
			lhs, p.CharHeight)
	}
}

func TestDefaults(t *testing.T) {
	p := New(1000, 1000)

	long := 75 * (1 - 2*(0.2-0.02/0.3))
	type lengths struct {
		Long, Mid, Short, Width, CharWidth, Punct, Spacing float64
	}
	got := lengths{
		Long:      p.LongStrokeLength(),
		Mid:       p.MidStrokeLength(),
		Short:     p.ShortStrokeLength(),
		Width:     p.StrokeWidth(),
		CharWidth: p.CharWidth(),
		Punct:     p.PunctuationHeight(),
		Spacing:   p.CharSpacing(),
	}
	want := lengths{
		Long:      long,
		Mid:       long * 0.5,
		Short:     long * 0.2,
		Width:     long * 0.02 / 0.3,
		CharWidth: long,
		Punct:     long * 0.2,
		Spacing:   0.065 * 75,
	}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, eps)); d != "" {
		t.Errorf("derived lengths (-want +got):\n%s", d)
	}

	checkIdentity(t, p)
	if p.Degenerate() {
		t.Error("default page reported as degenerate")
	}
}

func TestEdges(t *testing.T) {
	p := New(1000, 500)
	got := p.Frame()
	want := rect.Rect{LLx: -480, LLy: -240, URx: 480, URy: 240}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, eps)); d != "" {
		t.Errorf("frame (-want +got):\n%s", d)
	}

	p.UpdateDimensions(200, 100)
	if math.Abs(p.RightEdge()-96) > eps || math.Abs(p.TopEdge()-48) > eps {
		t.Errorf("edges not updated: right=%g top=%g", p.RightEdge(), p.TopEdge())
	}
	if p.CharHeight != DefaultCharHeight {
		t.Error("UpdateDimensions changed the ratios")
	}
}

// The defaults give long = 55 and short = 11, so the identity must be
// taken in terms of the ratios: 2*(0.2-0.02/0.3)*75 + 55 = 75, while
// 2*(short-width) + long is only about 69.67.
func TestIdentityDefaults(t *testing.T) {
	p := New(1000, 1000)
	if math.Abs(p.LongStrokeLength()-55) > eps {
		t.Errorf("long stroke %g, expected 55", p.LongStrokeLength())
	}
	checkIdentity(t, p)

	lengths := 2*(p.ShortStrokeLength()-p.StrokeWidth()) + p.LongStrokeLength()
	if math.Abs(lengths-p.CharHeight) < 1 {
		t.Errorf("length form %g unexpectedly matches char height %g", lengths, p.CharHeight)
	}
}

func TestIdentityAfterChanges(t *testing.T) {
	p := New(800, 600)
	for _, a := range Attributes {
		for _, m := range []float64{1, -3, 17, -40} {
			p.ChangeAttribute(a, m)
			checkIdentity(t, p)
		}
	}

	// push the model far into degenerate territory
	p.ChangeAttribute(ShortStrokeRatio, 1000)
	checkIdentity(t, p)
	if !p.Degenerate() {
		t.Errorf("long stroke %g, expected a degenerate model", p.LongStrokeLength())
	}
}

func TestChangeAttribute(t *testing.T) {
	for _, a := range Attributes {
		p := New(100, 100)
		before := p.Attribute(a)
		p.ChangeAttribute(a, 3)
		after := p.Attribute(a)
		if math.Abs(after-before-3*a.Step()) > eps {
			t.Errorf("%s: changed by %g, expected %g", a, after-before, 3*a.Step())
		}

		p.SetAttribute(a, 0.25)
		if p.Attribute(a) != 0.25 {
			t.Errorf("%s: SetAttribute not visible", a)
		}
	}
}

func TestAttributeFields(t *testing.T) {
	p := &Page{}
	for i, a := range Attributes {
		p.SetAttribute(a, float64(i+1))
	}
	want := Page{
		MarginsTopBottom: 1,
		MarginsLeftRight: 2,
		CharSpacingRatio: 3,
		LineSpacing:      4,
		CharHeight:       5,
		MidStrokeRatio:   6,
		ShortStrokeRatio: 7,
		StrokeWidthRatio: 8,
	}
	if d := cmp.Diff(want, *p); d != "" {
		t.Errorf("field mapping (-want +got):\n%s", d)
	}
}

func TestAttributeCycle(t *testing.T) {
	for _, start := range Attributes {
		a := start
		seen := map[Attribute]bool{}
		for range Attributes {
			seen[a] = true
			a = a.Next()
		}
		if a != start {
			t.Errorf("Next does not cycle from %s, ended at %s", start, a)
		}
		if len(seen) != len(Attributes) {
			t.Errorf("Next from %s visits %d attributes", start, len(seen))
		}
		if start.Next().Prev() != start || start.Prev().Next() != start {
			t.Errorf("Next and Prev are not inverse at %s", start)
		}
	}

	if MarginsTopBottom.Prev() != StrokeWidthRatio {
		t.Errorf("Prev of the first attribute is %s", MarginsTopBottom.Prev())
	}
}

func TestUnknownAttribute(t *testing.T) {
	bad := Attribute(200)
	p := New(100, 100)
	before := *p
	p.ChangeAttribute(bad, 10)
	p.SetAttribute(bad, 10)
	if d := cmp.Diff(before, *p); d != "" {
		t.Errorf("unknown attribute modified the page:\n%s", d)
	}
	if bad.Step() != 0 || p.Attribute(bad) != 0 {
		t.Error("unknown attribute has a value")
	}
	if bad.Next() != MarginsLeftRight {
		t.Errorf("unknown attribute: Next = %s", bad.Next())
	}
}

func TestParseAttribute(t *testing.T) {
	for _, a := range Attributes {
		b, err := ParseAttribute(a.String())
		if err != nil || b != a {
			t.Errorf("ParseAttribute(%q) = %s, %v", a.String(), b, err)
		}
	}
	a, err := ParseAttribute("charheight")
	if err != nil || a != CharHeight {
		t.Errorf("case insensitive lookup failed: %s, %v", a, err)
	}
	_, err = ParseAttribute("Kerning")
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("expected ErrUnknownAttribute, got %v", err)
	}
}
