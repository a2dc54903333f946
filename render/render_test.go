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

package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/dux/glyph"
	"seehuhn.de/go/dux/metric"
	"seehuhn.de/go/dux/printer"
	"seehuhn.de/go/dux/script"
)

type op struct {
	Kind string
	Rect glyph.Rect
	C    color.NRGBA
}

type recorder struct {
	ops []op
}

func (r *recorder) FillRect(rect glyph.Rect, c color.Color) {
	r.ops = append(r.ops, op{"fill", rect, color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func (r *recorder) StrokeRect(rect glyph.Rect, c color.Color) {
	r.ops = append(r.ops, op{"stroke", rect, color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func (r *recorder) NewPage() {
	r.ops = append(r.ops, op{Kind: "page"})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

func sample(t *testing.T) script.Text {
	t.Helper()
	text, err := script.Parse("ga^-xu,y-ze~ xu,y-ye` li~")
	if err != nil {
		t.Fatal(err)
	}
	return text
}

func TestNormalMode(t *testing.T) {
	m := metric.New(1000, 1000)
	text := sample(t)

	dev := &recorder{}
	NewSession(m, dev, nil).Text(text)

	coll := &printer.Collector{}
	p := printer.New(m)
	for _, gs := range text.Paragraphs() {
		p.Print(gs, coll, nil)
		p.Newline()
	}

	var want []op
	for _, r := range coll.Rects {
		want = append(want, op{"fill", r, color.NRGBA{0, 0, 0, 255}})
	}
	if d := cmp.Diff(want, dev.ops); d != "" {
		t.Errorf("device operations (-want +got):\n%s", d)
	}
}

func TestDebugMode(t *testing.T) {
	m := metric.New(1000, 1000)
	text := sample(t)

	dev := &recorder{}
	s := NewSession(m, dev, &Options{Debug: true})
	s.Text(text)

	if len(dev.ops) == 0 || dev.ops[0].Kind != "stroke" {
		t.Fatal("frame not drawn first")
	}
	frame := dev.ops[0]
	wantFrame := glyph.Rect{
		X: m.LeftEdge(),
		Y: m.TopEdge(),
		W: m.RightEdge() - m.LeftEdge(),
		H: m.TopEdge() - m.BottomEdge(),
	}
	if d := cmp.Diff(wantFrame, frame.Rect); d != "" {
		t.Errorf("frame (-want +got):\n%s", d)
	}
	if frame.C != FrameColor {
		t.Errorf("frame colour %v", frame.C)
	}

	graphemes := 0
	for _, gs := range text.Paragraphs() {
		graphemes += len(gs)
	}
	if n := dev.count("stroke"); n != graphemes+1 {
		t.Errorf("%d outlines, want %d", n, graphemes+1)
	}

	k := 0
	for _, o := range dev.ops {
		if o.Kind != "fill" {
			continue
		}
		base := color.NRGBAModel.Convert(DefaultPalette[k%len(DefaultPalette)]).(color.NRGBA)
		base.A = 230
		if o.C != base {
			t.Errorf("fill %d has colour %v, want %v", k, o.C, base)
			break
		}
		k++
	}
}

func TestDebugFlagIsPerSession(t *testing.T) {
	m := metric.New(1000, 1000)
	text := sample(t)

	debug := &recorder{}
	NewSession(m, debug, &Options{Debug: true})
	plain := &recorder{}
	NewSession(m, plain, nil).Text(text)

	if plain.count("stroke") != 0 {
		t.Error("debug output in a normal session")
	}
}

func TestPages(t *testing.T) {
	m := metric.New(200, 200)
	text := sample(t)

	dev := &recorder{}
	s := NewSession(m, dev, &Options{Debug: true, Ink: color.White})
	for range 5 {
		s.Text(text)
	}

	pages := dev.count("page")
	if pages == 0 {
		t.Fatal("no page break on a small page")
	}
	if got := s.Printer().Cursor().Page; got < pages {
		t.Errorf("printer on page %d after %d page breaks", got, pages)
	}
	// every new page gets its own frame
	for i, o := range dev.ops {
		if o.Kind == "page" {
			if i+1 >= len(dev.ops) || dev.ops[i+1].Kind != "stroke" || dev.ops[i+1].C != FrameColor {
				t.Errorf("page break at %d not followed by a frame", i)
			}
		}
	}
}
