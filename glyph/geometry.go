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

package glyph

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dux/metric"
)

// shapes holds the rectangle templates for one glyph cell.
// All strokes are assembled from these.
type shapes struct {
	topLong, topMid, bottomMid Rect

	blunt                  Rect
	sharpLongL, sharpLongR Rect
	sharpMidL, sharpMidR   Rect

	pWingL, pWingR Rect // centred on the long bar
	tWingL, tWingR Rect // reaching up to the cell top
	kWingL, kWingR Rect // hanging down from the long bar
	sWingL, sWingR Rect // centred on the mid bar

	xTopWingL, xTopWingR       Rect
	xBottomWingL, xBottomWingR Rect
	hTopWingL, hTopWingR       Rect
	hBottomWingL, hBottomWingR Rect

	topWTop, topWBottom       Rect
	bottomWTop, bottomWBottom Rect
	topYTop, bottomYTop       Rect

	nullCodaWing Rect

	aL, aR         Rect
	eBar, eStem    Rect
	i, o, u        Rect
	highL, highR   Rect
	peakL, peakR   Rect
	nasalL, nasalR Rect

	wordBreak               Rect
	phraseTop, phraseBottom Rect
	sentenceL, sentenceR    Rect
}

func newShapes(p *metric.Page, anchor vec.Vec2) *shapes {
	x, y := anchor.X, anchor.Y

	long := p.LongStrokeLength()
	mid := p.MidStrokeLength()
	short := p.ShortStrokeLength()
	w := p.StrokeWidth()
	ch := p.CharHeight
	punct := p.PunctuationHeight()

	// centre of the cell
	cx := x - p.CharWidth()/2
	cy := y - ch/2

	s := &shapes{}

	// The horizontal bars sit one short stroke (less the stroke width)
	// below the top of the cell, so that upward wings end at the top.
	barY := y - (short - w)
	midX := x - long/2 - mid/2
	bottomY := y - ch + short

	s.topLong = Rect{X: x - long, Y: barY, W: long, H: w}
	s.topMid = Rect{X: midX, Y: barY, W: mid, H: w}
	s.bottomMid = Rect{X: midX, Y: bottomY, W: mid, H: w}

	s.blunt = Rect{X: x - long/2 - w/2, Y: y, W: w, H: short}

	s.sharpLongL = Rect{X: cx - mid/2, Y: y, W: w, H: short}
	s.sharpLongR = Rect{X: cx + mid/2 - w, Y: y, W: w, H: short}
	s.sharpMidL = Rect{
		X: x - long + (long-mid)/2 - w/2 + mid/3,
		Y: y, W: w, H: short,
	}
	s.sharpMidR = Rect{X: s.sharpMidL.X + mid/3, Y: y, W: w, H: short}

	centred := barY + (short-w)/2
	s.pWingL = Rect{X: x - long, Y: centred, W: w, H: short}
	s.pWingR = Rect{X: x - w, Y: centred, W: w, H: short}
	s.tWingL = Rect{X: x - long, Y: y, W: w, H: short}
	s.tWingR = Rect{X: x - w, Y: y, W: w, H: short}
	s.kWingL = Rect{X: x - long, Y: barY, W: w, H: short}
	s.kWingR = Rect{X: x - w, Y: barY, W: w, H: short}

	midRight := midX + mid - w
	s.sWingL = Rect{X: midX, Y: centred, W: w, H: short}
	s.sWingR = Rect{X: midRight, Y: centred, W: w, H: short}

	s.xTopWingL = Rect{X: midX, Y: barY, W: w, H: short}
	s.xTopWingR = Rect{X: midRight, Y: barY, W: w, H: short}
	s.xBottomWingL = Rect{X: midX, Y: bottomY, W: w, H: short}
	s.xBottomWingR = Rect{X: midRight, Y: bottomY, W: w, H: short}

	s.hTopWingL = Rect{X: midRight, Y: y, W: w, H: short}
	s.hTopWingR = Rect{X: midX, Y: y, W: w, H: short}
	s.hBottomWingL = Rect{X: midRight, Y: bottomY, W: w, H: short}
	s.hBottomWingR = Rect{X: midX, Y: bottomY, W: w, H: short}

	// glide bar pairs, one stroke width apart
	s.topWTop = Rect{X: x - long, Y: y, W: long, H: w}
	s.topWBottom = Rect{X: midX, Y: y - 2*w, W: mid, H: w}
	s.bottomWBottom = Rect{X: midX, Y: y - ch + w, W: mid, H: w}
	s.bottomWTop = Rect{X: x - long, Y: s.bottomWBottom.Y + 2*w, W: long, H: w}
	s.topYTop = Rect{X: midX, Y: y, W: mid, H: w}
	s.bottomYTop = Rect{X: midX, Y: s.bottomWTop.Y, W: mid, H: w}

	s.nullCodaWing = Rect{X: s.blunt.X, Y: bottomY, W: w, H: short}

	// vowels and tones are centred on the middle of the cell
	s.aL = Rect{X: cx - short/2, Y: cy + short/2, W: w, H: short}
	s.aR = Rect{X: cx + short/2 - w, Y: cy + short/2, W: w, H: short}
	s.eBar = Rect{X: cx - mid/2, Y: cy + w/2, W: mid, H: w}
	s.eStem = Rect{X: cx - w/2, Y: cy + w/2, W: w, H: short}
	s.i = Rect{X: cx - w/2, Y: cy + mid/2, W: w, H: mid}
	s.o = Rect{X: cx - w/2, Y: cy + short/2, W: w, H: short}
	s.u = Rect{X: cx - w/2, Y: cy + long/2, W: w, H: long}

	s.highL, s.highR = tonePair(cx, cy, mid, w, short)
	s.peakL, s.peakR = tonePair(cx, cy, mid, w, mid)
	s.nasalL, s.nasalR = tonePair(cx, cy, mid, w, long)

	// break marks live in the shorter punctuation cell
	s.wordBreak = Rect{
		X: x - p.CharWidth()/2 - short/2,
		Y: y - punct/2 + w/2,
		W: short, H: w,
	}
	s.phraseTop = Rect{X: s.wordBreak.X, Y: y, W: short, H: w}
	s.phraseBottom = Rect{X: s.wordBreak.X, Y: y - punct + w, W: short, H: w}
	s.sentenceL = Rect{
		X: s.wordBreak.X,
		Y: s.wordBreak.Y + short/2 - w/2,
		W: w, H: short,
	}
	s.sentenceR = Rect{X: s.wordBreak.X + short - w, Y: s.sentenceL.Y, W: w, H: short}

	return s
}

// tonePair returns two verticals of height h, a mid stroke apart, centred
// at (cx, cy).
func tonePair(cx, cy, mid, w, h float64) (Rect, Rect) {
	l := Rect{X: cx - mid/2, Y: cy + h/2, W: w, H: h}
	r := Rect{X: cx + mid/2 - w, Y: cy + h/2, W: w, H: h}
	return l, r
}

// Rects returns the rectangles which make up stroke s in the glyph cell
// with top-right corner anchor.  The list is empty for [Nil] and for
// values outside the stroke vocabulary.
func Rects(s Stroke, p *metric.Page, anchor vec.Vec2) []Rect {
	if s == Nil || s >= numStrokes {
		return nil
	}
	return newShapes(p, anchor).strokeRects(s)
}

func (t *shapes) strokeRects(s Stroke) []Rect {
	switch s {
	case P:
		return []Rect{t.topLong, t.pWingL, t.pWingR}
	case B:
		return []Rect{t.topLong, t.pWingL, t.pWingR, t.blunt}
	case Py:
		return []Rect{t.topLong, t.pWingL, t.pWingR, t.sharpLongL, t.sharpLongR}
	case T:
		return []Rect{t.topLong, t.tWingL, t.tWingR}
	case D:
		return []Rect{t.topLong, t.tWingL, t.tWingR, t.blunt}
	case Ty:
		return []Rect{t.topLong, t.tWingL, t.tWingR, t.sharpLongL, t.sharpLongR}
	case K:
		return []Rect{t.topLong, t.kWingL, t.kWingR}
	case G:
		return []Rect{t.topLong, t.kWingL, t.kWingR, t.blunt}
	case Ky:
		return []Rect{t.topLong, t.kWingL, t.kWingR, t.sharpLongL, t.sharpLongR}
	case S:
		return []Rect{t.topMid, t.sWingL, t.sWingR}
	case Z:
		return []Rect{t.topMid, t.sWingL, t.sWingR, t.blunt}
	case Sy:
		return []Rect{t.topMid, t.sWingL, t.sWingR, t.sharpMidL, t.sharpMidR}
	case R:
		return []Rect{t.topMid}
	case Rw:
		return []Rect{t.topMid, t.blunt}
	case L:
		return []Rect{t.topMid, t.sharpMidL, t.sharpMidR}

	case WTop:
		return []Rect{t.topWTop, t.topWBottom}
	case WBottom:
		return []Rect{t.bottomWTop, t.bottomWBottom}
	case YTop:
		return []Rect{t.topYTop, t.topWBottom}
	case YBottom:
		return []Rect{t.bottomYTop, t.bottomWBottom}
	case XTop:
		return []Rect{t.topMid, t.xTopWingL, t.xTopWingR}
	case XBottom:
		return []Rect{t.bottomMid, t.xBottomWingL, t.xBottomWingR}
	case HTop:
		return []Rect{t.topMid, t.hTopWingL, t.hTopWingR}
	case HBottom:
		return []Rect{t.bottomMid, t.hBottomWingL, t.hBottomWingR}

	case NullCoda:
		return []Rect{t.bottomWTop, t.nullCodaWing}

	case A:
		return []Rect{t.aL, t.aR}
	case E:
		return []Rect{t.eBar, t.eStem}
	case I:
		return []Rect{t.i}
	case O:
		return []Rect{t.o}
	case U:
		return []Rect{t.u}

	case HighTone:
		return []Rect{t.highL, t.highR}
	case PeakingTone:
		return []Rect{t.peakL, t.peakR}
	case NasalTone:
		return []Rect{t.nasalL, t.nasalR}

	case WordBreak:
		return []Rect{t.wordBreak}
	case PhraseBreak:
		return []Rect{t.phraseTop, t.phraseBottom}
	case SentenceBreak:
		return []Rect{t.wordBreak, t.sentenceL, t.sentenceR}
	}
	return nil
}
