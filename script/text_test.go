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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/dux/glyph"
)

func char(strokes ...glyph.Stroke) glyph.Grapheme {
	return glyph.Grapheme{Strokes: strokes, Height: glyph.Character}
}

func mark(s glyph.Stroke) glyph.Grapheme {
	return glyph.Grapheme{Strokes: []glyph.Stroke{s}, Height: glyph.Punctuation}
}

func TestSyllableGrapheme(t *testing.T) {
	cases := []struct {
		in   string
		want glyph.Grapheme
	}{
		{"tá", char(glyph.T, glyph.A, glyph.HighTone, glyph.NullCoda)},
		{"tà", char(glyph.T, glyph.A, glyph.NullCoda)},
		{"dê", char(glyph.D, glyph.E, glyph.PeakingTone, glyph.NullCoda)},
		{"syĩw", char(glyph.Sy, glyph.I, glyph.NasalTone, glyph.WBottom)},
		{"rwòy", char(glyph.Rw, glyph.O, glyph.YBottom)},
		{"lúx", char(glyph.L, glyph.U, glyph.HighTone, glyph.XBottom)},
		{"hàh", char(glyph.HTop, glyph.A, glyph.HBottom)},
		{"wá", char(glyph.WTop, glyph.A, glyph.HighTone, glyph.NullCoda)},
		{"yá", char(glyph.YTop, glyph.A, glyph.HighTone, glyph.NullCoda)},
		{"xá", char(glyph.XTop, glyph.A, glyph.HighTone, glyph.NullCoda)},
		{"gà", char(glyph.G, glyph.A, glyph.NullCoda)},
		{"kyà", char(glyph.Ky, glyph.A, glyph.NullCoda)},
		{"bà", char(glyph.B, glyph.A, glyph.NullCoda)},
		{"pyà", char(glyph.Py, glyph.A, glyph.NullCoda)},
		{"zà", char(glyph.Z, glyph.A, glyph.NullCoda)},
	}
	for _, tc := range cases {
		syl, err := ParseSyllable(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(tc.want, syl.Grapheme()); d != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestParagraphGraphemes(t *testing.T) {
	par, err := ParseParagraph("tà-kà sà: pà. rà")
	if err != nil {
		t.Fatal(err)
	}
	want := []glyph.Grapheme{
		char(glyph.T, glyph.A, glyph.NullCoda),
		char(glyph.K, glyph.A, glyph.NullCoda),
		mark(glyph.WordBreak),
		char(glyph.S, glyph.A, glyph.NullCoda),
		mark(glyph.PhraseBreak),
		char(glyph.P, glyph.A, glyph.NullCoda),
		mark(glyph.SentenceBreak),
		char(glyph.R, glyph.A, glyph.NullCoda),
	}
	if d := cmp.Diff(want, par.Graphemes()); d != "" {
		t.Errorf("graphemes (-want +got):\n%s", d)
	}
}

func TestTextParagraphs(t *testing.T) {
	text, err := Parse("tà\n\nkà sà\n")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]glyph.Grapheme{
		{char(glyph.T, glyph.A, glyph.NullCoda)},
		{
			char(glyph.K, glyph.A, glyph.NullCoda),
			mark(glyph.WordBreak),
			char(glyph.S, glyph.A, glyph.NullCoda),
		},
	}
	if d := cmp.Diff(want, text.Paragraphs()); d != "" {
		t.Errorf("paragraphs (-want +got):\n%s", d)
	}
}

func TestOnsetStrings(t *testing.T) {
	seen := map[string]bool{}
	for stem := P; stem <= R; stem++ {
		for manner := Strong; manner <= Sharp; manner++ {
			o := Consonant(stem, manner)
			s := o.String()
			if seen[s] {
				t.Errorf("duplicate notation %q", s)
			}
			seen[s] = true
			if got := onsetByLetters[s]; got != o {
				t.Errorf("%q maps to %+v", s, got)
			}
		}
	}
	if len(seen) != 15 {
		t.Errorf("%d consonants", len(seen))
	}
	if Consonant(7, Strong).Stroke() != glyph.Nil {
		t.Error("invalid stem has a stroke")
	}
}
