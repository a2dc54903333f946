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

// Package script implements the linguistic units of the dux script and
// their mapping to graphemes.
//
// Text is written in a plain notation.  A syllable consists of an onset,
// a vowel carrying a tone mark and an optional coda, for example "tá",
// "kya^" or "lo~h".  Syllables are joined into words with "-", words are
// separated by white space, phrases by ": ", sentences by ". " and
// paragraphs by line breaks.
package script

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/dux/glyph"
)

// Stem is the place of articulation of a consonant onset.
type Stem uint8

// These are the consonant stems.
const (
	P Stem = iota
	T
	K
	S
	R
)

// Manner modifies a consonant stem.
type Manner uint8

// These are the manners of articulation.
const (
	Strong Manner = iota
	Blunt
	Sharp
)

// consonants gives the notation and the stroke of each consonant.
var consonants = [5][3]struct {
	letters string
	stroke  glyph.Stroke
}{
	P: {{"p", glyph.P}, {"b", glyph.B}, {"py", glyph.Py}},
	T: {{"t", glyph.T}, {"d", glyph.D}, {"ty", glyph.Ty}},
	K: {{"k", glyph.K}, {"g", glyph.G}, {"ky", glyph.Ky}},
	S: {{"s", glyph.S}, {"z", glyph.Z}, {"sy", glyph.Sy}},
	R: {{"r", glyph.R}, {"rw", glyph.Rw}, {"l", glyph.L}},
}

// Glide is one of the four semivowels.  Glides can be used both as onset
// and as coda.
type Glide uint8

// These are the glides.
const (
	W Glide = iota
	Y
	X
	H
)

var glideLetters = [4]string{W: "w", Y: "y", X: "x", H: "h"}

func (g Glide) String() string {
	if int(g) < len(glideLetters) {
		return glideLetters[g]
	}
	return fmt.Sprintf("Glide(%d)", uint8(g))
}

// topStroke returns the stroke used when g is the onset.
func (g Glide) topStroke() glyph.Stroke {
	switch g {
	case W:
		return glyph.WTop
	case Y:
		return glyph.YTop
	case X:
		return glyph.XTop
	default:
		return glyph.HTop
	}
}

// bottomStroke returns the stroke used when g is the coda.
func (g Glide) bottomStroke() glyph.Stroke {
	switch g {
	case W:
		return glyph.WBottom
	case Y:
		return glyph.YBottom
	case X:
		return glyph.XBottom
	default:
		return glyph.HBottom
	}
}

// Onset is the initial sound of a syllable.  It is either a glide, or a
// consonant stem with a manner.
type Onset struct {
	IsGlide bool
	Glide   Glide
	Stem    Stem
	Manner  Manner
}

// Consonant returns the onset for stem s in manner m.
func Consonant(s Stem, m Manner) Onset {
	return Onset{Stem: s, Manner: m}
}

// GlideOnset returns the onset consisting of glide g.
func GlideOnset(g Glide) Onset {
	return Onset{IsGlide: true, Glide: g}
}

func (o Onset) String() string {
	if o.IsGlide {
		return o.Glide.String()
	}
	if o.Stem > R || o.Manner > Sharp {
		return "?"
	}
	return consonants[o.Stem][o.Manner].letters
}

// Stroke returns the stroke which represents o.
func (o Onset) Stroke() glyph.Stroke {
	if o.IsGlide {
		return o.Glide.topStroke()
	}
	if o.Stem > R || o.Manner > Sharp {
		return glyph.Nil
	}
	return consonants[o.Stem][o.Manner].stroke
}

// Vowel is the nucleus of a syllable.
type Vowel uint8

// These are the vowels.
const (
	A Vowel = iota
	E
	I
	O
	U
)

var vowels = [5]struct {
	letter rune
	stroke glyph.Stroke
}{
	A: {'a', glyph.A},
	E: {'e', glyph.E},
	I: {'i', glyph.I},
	O: {'o', glyph.O},
	U: {'u', glyph.U},
}

func (v Vowel) String() string {
	if int(v) < len(vowels) {
		return string(vowels[v].letter)
	}
	return fmt.Sprintf("Vowel(%d)", uint8(v))
}

// Tone is the tone of a syllable.
type Tone uint8

// These are the tones.
const (
	High Tone = iota
	Low
	Peaking
	Nasal
)

var tones = [4]struct {
	mark   rune // combining diacritic
	ascii  rune
	stroke glyph.Stroke
}{
	High:    {'\u0301', ',', glyph.HighTone},
	Low:     {'\u0300', '`', glyph.Nil},
	Peaking: {'\u0302', '^', glyph.PeakingTone},
	Nasal:   {'\u0303', '~', glyph.NasalTone},
}

func (t Tone) String() string {
	switch t {
	case High:
		return "High"
	case Low:
		return "Low"
	case Peaking:
		return "Peaking"
	case Nasal:
		return "Nasal"
	default:
		return fmt.Sprintf("Tone(%d)", uint8(t))
	}
}

// Syllable is the basic unit of the script.  Each syllable is written as
// one character glyph.
type Syllable struct {
	Onset Onset
	Vowel Vowel
	Tone  Tone
	Coda  *Glide
}

// Grapheme returns the glyph for s.
//
// The strokes are the onset, the vowel, the tone and the coda, in this
// order.  The low tone has no mark and is left out.  A missing coda is
// written as [glyph.NullCoda].
func (s Syllable) Grapheme() glyph.Grapheme {
	strokes := make([]glyph.Stroke, 0, 4)
	strokes = append(strokes, s.Onset.Stroke(), s.vowelStroke())
	if t := s.toneStroke(); t != glyph.Nil {
		strokes = append(strokes, t)
	}
	if s.Coda != nil {
		strokes = append(strokes, s.Coda.bottomStroke())
	} else {
		strokes = append(strokes, glyph.NullCoda)
	}
	return glyph.Grapheme{Strokes: strokes, Height: glyph.Character}
}

func (s Syllable) vowelStroke() glyph.Stroke {
	if int(s.Vowel) < len(vowels) {
		return vowels[s.Vowel].stroke
	}
	return glyph.Nil
}

func (s Syllable) toneStroke() glyph.Stroke {
	if int(s.Tone) < len(tones) {
		return tones[s.Tone].stroke
	}
	return glyph.Nil
}

// String returns the notation of s, with the tone written as a diacritic
// on the vowel.
func (s Syllable) String() string {
	return s.format(false)
}

// ASCII returns the notation of s, with the tone written as a punctuation
// character after the vowel.
func (s Syllable) ASCII() string {
	return s.format(true)
}

func (s Syllable) format(ascii bool) string {
	b := &strings.Builder{}
	b.WriteString(s.Onset.String())
	b.WriteString(s.Vowel.String())
	if int(s.Tone) < len(tones) {
		if ascii {
			b.WriteRune(tones[s.Tone].ascii)
		} else {
			b.WriteRune(tones[s.Tone].mark)
		}
	}
	if s.Coda != nil {
		b.WriteString(s.Coda.String())
	}
	if ascii {
		return b.String()
	}
	return norm.NFC.String(b.String())
}
