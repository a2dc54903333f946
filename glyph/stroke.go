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

// Package glyph defines the stroke vocabulary of the dux script and the
// geometry of each stroke.
//
// A stroke is one of a closed set of marks.  Its shape is a short list of
// rectangles, computed from a [metric.Page] and an anchor point, the
// top-right corner of the glyph cell.  The shape never depends on the other
// strokes drawn in the same cell, so strokes can be combined freely.
package glyph

import "fmt"

// Stroke is a primitive mark of the dux script.
type Stroke uint8

// The consonant strokes come in groups of three for each of the five stems:
// plain, blunt (voiced) and sharp (palatalised).
const (
	Nil Stroke = iota

	P
	B
	Py
	T
	D
	Ty
	K
	G
	Ky
	S
	Z
	Sy
	R
	Rw
	L

	WTop
	WBottom
	YTop
	YBottom
	XTop
	XBottom
	HTop
	HBottom

	NullCoda

	A
	E
	I
	O
	U

	HighTone
	PeakingTone
	NasalTone

	WordBreak
	PhraseBreak
	SentenceBreak

	numStrokes
)

// Strokes lists all strokes, including [Nil].
var Strokes []Stroke

func init() {
	Strokes = make([]Stroke, numStrokes)
	for i := range Strokes {
		Strokes[i] = Stroke(i)
	}
}

var strokeNames = [numStrokes]string{
	Nil:           "Nil",
	P:             "P",
	B:             "B",
	Py:            "Py",
	T:             "T",
	D:             "D",
	Ty:            "Ty",
	K:             "K",
	G:             "G",
	Ky:            "Ky",
	S:             "S",
	Z:             "Z",
	Sy:            "Sy",
	R:             "R",
	Rw:            "Rw",
	L:             "L",
	WTop:          "WTop",
	WBottom:       "WBottom",
	YTop:          "YTop",
	YBottom:       "YBottom",
	XTop:          "XTop",
	XBottom:       "XBottom",
	HTop:          "HTop",
	HBottom:       "HBottom",
	NullCoda:      "NullCoda",
	A:             "A",
	E:             "E",
	I:             "I",
	O:             "O",
	U:             "U",
	HighTone:      "HighTone",
	PeakingTone:   "PeakingTone",
	NasalTone:     "NasalTone",
	WordBreak:     "WordBreak",
	PhraseBreak:   "PhraseBreak",
	SentenceBreak: "SentenceBreak",
}

func (s Stroke) String() string {
	if s < numStrokes {
		return strokeNames[s]
	}
	return fmt.Sprintf("Stroke(%d)", uint8(s))
}

// IsPunctuation reports whether s is one of the break marks.
func (s Stroke) IsPunctuation() bool {
	return s == WordBreak || s == PhraseBreak || s == SentenceBreak
}
