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

package script

import (
	"strings"

	"seehuhn.de/go/dux/glyph"
)

// Punctuation is a break between two units of text.
type Punctuation uint8

// These are the break marks, in order of increasing strength.
const (
	WordBreak Punctuation = iota
	PhraseBreak
	SentenceBreak
)

// Grapheme returns the glyph for p.
func (p Punctuation) Grapheme() glyph.Grapheme {
	var s glyph.Stroke
	switch p {
	case WordBreak:
		s = glyph.WordBreak
	case PhraseBreak:
		s = glyph.PhraseBreak
	case SentenceBreak:
		s = glyph.SentenceBreak
	}
	return glyph.Grapheme{Strokes: []glyph.Stroke{s}, Height: glyph.Punctuation}
}

// A Word is a sequence of syllables.
type Word []Syllable

// Graphemes returns one glyph per syllable.
func (w Word) Graphemes() []glyph.Grapheme {
	res := make([]glyph.Grapheme, len(w))
	for i, s := range w {
		res[i] = s.Grapheme()
	}
	return res
}

func (w Word) String() string {
	parts := make([]string, len(w))
	for i, s := range w {
		parts[i] = s.String()
	}
	return strings.Join(parts, "-")
}

// A Phrase is a sequence of words.
type Phrase []Word

// Graphemes returns the glyphs of all words, separated by word breaks.
func (p Phrase) Graphemes() []glyph.Grapheme {
	return join(p, WordBreak)
}

func (p Phrase) String() string {
	return joinString(p, " ")
}

// A Sentence is a sequence of phrases.
type Sentence []Phrase

// Graphemes returns the glyphs of all phrases, separated by phrase breaks.
func (s Sentence) Graphemes() []glyph.Grapheme {
	return join(s, PhraseBreak)
}

func (s Sentence) String() string {
	return joinString(s, ": ")
}

// A Paragraph is a sequence of sentences.
type Paragraph []Sentence

// Graphemes returns the glyphs of all sentences, separated by sentence
// breaks.
func (p Paragraph) Graphemes() []glyph.Grapheme {
	return join(p, SentenceBreak)
}

// String returns the notation of p.  Every sentence is terminated by a
// full stop.
func (p Paragraph) String() string {
	if len(p) == 0 {
		return ""
	}
	return joinString(p, ". ") + "."
}

// Text is a sequence of paragraphs.
type Text []Paragraph

// Paragraphs returns the glyphs of each paragraph.  When printing, the
// paragraphs are separated by line breaks.
func (t Text) Paragraphs() [][]glyph.Grapheme {
	res := make([][]glyph.Grapheme, len(t))
	for i, p := range t {
		res[i] = p.Graphemes()
	}
	return res
}

func (t Text) String() string {
	return joinString(t, "\n")
}

type grapheming interface {
	Graphemes() []glyph.Grapheme
}

func join[T grapheming](parts []T, sep Punctuation) []glyph.Grapheme {
	var res []glyph.Grapheme
	for i, part := range parts {
		if i > 0 {
			res = append(res, sep.Grapheme())
		}
		res = append(res, part.Graphemes()...)
	}
	return res
}

func joinString[T interface{ String() string }](parts []T, sep string) string {
	s := make([]string, len(parts))
	for i, part := range parts {
		s[i] = part.String()
	}
	return strings.Join(s, sep)
}

// ASCII returns the notation of t, with all tones written as punctuation
// characters after the vowels.
func (t Text) ASCII() string {
	b := &strings.Builder{}
	for i, par := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, sent := range par {
			if j > 0 {
				b.WriteByte(' ')
			}
			for k, phr := range sent {
				if k > 0 {
					b.WriteString(": ")
				}
				for l, w := range phr {
					if l > 0 {
						b.WriteByte(' ')
					}
					for m, syl := range w {
						if m > 0 {
							b.WriteByte('-')
						}
						b.WriteString(syl.ASCII())
					}
				}
			}
			b.WriteByte('.')
		}
	}
	return b.String()
}
