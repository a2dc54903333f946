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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func glide(g Glide) *Glide {
	return &g
}

func TestParseSyllable(t *testing.T) {
	cases := []struct {
		in   string
		want Syllable
	}{
		{"tá", Syllable{Onset: Consonant(T, Strong), Vowel: A, Tone: High}},
		{"ta,", Syllable{Onset: Consonant(T, Strong), Vowel: A, Tone: High}},
		{"ta\u0301", Syllable{Onset: Consonant(T, Strong), Vowel: A, Tone: High}},
		{"ba`", Syllable{Onset: Consonant(P, Blunt), Vowel: A, Tone: Low}},
		{"kyô", Syllable{Onset: Consonant(K, Sharp), Vowel: O, Tone: Peaking}},
		{"rwi~h", Syllable{Onset: Consonant(R, Blunt), Vowel: I, Tone: Nasal, Coda: glide(H)}},
		{"lù", Syllable{Onset: Consonant(R, Sharp), Vowel: U, Tone: Low}},
		{"wéy", Syllable{Onset: GlideOnset(W), Vowel: E, Tone: High, Coda: glide(Y)}},
		{"xa^x", Syllable{Onset: GlideOnset(X), Vowel: A, Tone: Peaking, Coda: glide(X)}},
		{"zo´", Syllable{Onset: Consonant(S, Blunt), Vowel: O, Tone: High}},
	}
	for _, tc := range cases {
		got, err := ParseSyllable(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in     string
		column int
	}{
		{"", 1},
		{"qá", 1},
		{"twá", 1},
		{"tá-qa,", 4},
		{"t", 2},
		{"tx,", 2},
		{"ta", 3},
		{"tab", 3},
		{"táwx", 4},
		{"tá. ", 1},
		{"tá:  : kó", 5},
		{"tá. . kó", 5},
	}
	for _, tc := range cases {
		_, err := ParseParagraph(tc.in)
		if tc.in == "tá. " {
			// a trailing full stop is allowed
			if err != nil {
				t.Errorf("%q: %v", tc.in, err)
			}
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected a syntax error, got %v", tc.in, err)
			continue
		}
		var pErr *ParseError
		if !errors.As(err, &pErr) {
			t.Errorf("%q: not a ParseError: %v", tc.in, err)
			continue
		}
		if pErr.Column != tc.column || pErr.Line != 1 || pErr.Input != tc.in {
			t.Errorf("%q: error at line %d, column %d (%s)",
				tc.in, pErr.Line, pErr.Column, pErr.Msg)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := Parse("tá kó\n\nsú: qa,\n")
	var pErr *ParseError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if pErr.Line != 3 || pErr.Column != 5 {
		t.Errorf("error at %d:%d, want 3:5", pErr.Line, pErr.Column)
	}
	if pErr.Error() != "line 3, column 5: invalid onset 'q'" {
		t.Errorf("unexpected message %q", pErr.Error())
	}
}

func TestParseStructure(t *testing.T) {
	text, err := Parse("tá-kò sú: pâ. mì\r\nyá\n")
	if err == nil {
		t.Fatal("'m' accepted as an onset")
	}

	text, err = Parse("tá-kò sú: pâ. rì\r\n\nyá\n")
	if err != nil {
		t.Fatal(err)
	}
	type shape [][][]int // syllables per word, per phrase, per sentence
	var got []shape
	for _, par := range text {
		var s shape
		for _, sen := range par {
			var ph [][]int
			for _, phrase := range sen {
				var ws []int
				for _, w := range phrase {
					ws = append(ws, len(w))
				}
				ph = append(ph, ws)
			}
			s = append(s, ph)
		}
		got = append(got, s)
	}
	want := []shape{
		{{{2, 1}, {1}}, {{1}}},
		{{{1}}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("structure (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	in := "tá-kò sú: pâ-lũh. rìw\nyá-gyé"
	text, err := Parse(in)
	if err == nil {
		t.Fatal("'gy' accepted as an onset")
	}

	in = "tá-kò sú: pâ-lũh. rìw.\nyá-kyé."
	text, err = Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := text.String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}

	again, err := Parse(text.String())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(text, again); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestASCII(t *testing.T) {
	for _, in := range []string{"tá", "kyò", "syô", "rwẽh", "wa,y"} {
		syl, err := ParseSyllable(in)
		if err != nil {
			t.Fatal(err)
		}
		back, err := ParseSyllable(syl.ASCII())
		if err != nil {
			t.Errorf("%q: cannot parse %q: %v", in, syl.ASCII(), err)
			continue
		}
		if d := cmp.Diff(syl, back); d != "" {
			t.Errorf("%q (-want +got):\n%s", in, d)
		}
	}

	syl, _ := ParseSyllable("tá")
	if got := syl.ASCII(); got != "ta," {
		t.Errorf("ASCII() = %q", got)
	}
}
