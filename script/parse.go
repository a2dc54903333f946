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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrSyntax is wrapped by all errors returned from the parsing functions.
var ErrSyntax = errors.New("syntax error")

// ParseError describes a problem in the notation of a text.
type ParseError struct {
	Line   int    // 1-based line number
	Column int    // 1-based column, counted in runes
	Input  string // the offending line
	Msg    string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", err.Line, err.Column, err.Msg)
}

// Unwrap returns [ErrSyntax].
func (err *ParseError) Unwrap() error {
	return ErrSyntax
}

var (
	onsetByLetters = map[string]Onset{}
	vowelByLetter  = map[rune]Vowel{}
	toneByRune     = map[rune]Tone{'´': High}
	glideByLetter  = map[rune]Glide{}
)

func init() {
	for stem := range consonants {
		for manner, c := range consonants[stem] {
			onsetByLetters[c.letters] = Consonant(Stem(stem), Manner(manner))
		}
	}
	for g, letter := range glideLetters {
		onsetByLetters[letter] = GlideOnset(Glide(g))
		glideByLetter[rune(letter[0])] = Glide(g)
	}
	for v, info := range vowels {
		vowelByLetter[info.letter] = Vowel(v)
	}
	for t, info := range tones {
		toneByRune[info.mark] = Tone(t)
		toneByRune[info.ascii] = Tone(t)
	}
}

// Parse parses a text.  Every non-blank line of s is one paragraph.
func Parse(s string) (Text, error) {
	var res Text
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		par, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		res = append(res, par)
	}
	return res, nil
}

// ParseParagraph parses a single paragraph.
func ParseParagraph(s string) (Paragraph, error) {
	return parseLine(s, 1)
}

// ParseWord parses a single word.
func ParseWord(s string) (w Word, err error) {
	p := &parser{line: 1, input: s}
	defer p.recover(&err)
	return p.word(span{s, 0}), nil
}

// ParseSyllable parses a single syllable.
func ParseSyllable(s string) (syl Syllable, err error) {
	p := &parser{line: 1, input: s}
	defer p.recover(&err)
	return p.syllable(span{s, 0}), nil
}

func parseLine(line string, lineNo int) (par Paragraph, err error) {
	p := &parser{line: lineNo, input: line}
	defer p.recover(&err)
	return p.paragraph(), nil
}

// span is a piece of the input line, together with its byte offset.
type span struct {
	text string
	off  int
}

func (s span) end() int {
	return s.off + len(s.text)
}

// split cuts s around each instance of sep.
func (s span) split(sep string) []span {
	var res []span
	off := s.off
	for _, part := range strings.Split(s.text, sep) {
		res = append(res, span{part, off})
		off += len(part) + len(sep)
	}
	return res
}

// fields splits s around runs of white space.
func (s span) fields() []span {
	var res []span
	start := -1
	for i, r := range s.text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				res = append(res, span{s.text[start:i], s.off + start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		res = append(res, span{s.text[start:], s.off + start})
	}
	return res
}

type parser struct {
	line  int
	input string
}

type parseError struct {
	pos int
	msg string
}

func (p *parser) fatal(pos int, format string, a ...any) {
	panic(&parseError{pos: pos, msg: fmt.Sprintf(format, a...)})
}

func (p *parser) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*parseError)
	if !ok {
		panic(r)
	}
	pos := min(max(e.pos, 0), len(p.input))
	*err = &ParseError{
		Line:   p.line,
		Column: utf8.RuneCountInString(p.input[:pos]) + 1,
		Input:  p.input,
		Msg:    e.msg,
	}
}

func (p *parser) paragraph() Paragraph {
	body := span{p.input, 0}
	trimmed := strings.TrimLeftFunc(body.text, unicode.IsSpace)
	body.off += len(body.text) - len(trimmed)
	body.text = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	body.text = strings.TrimSuffix(body.text, ".")

	var res Paragraph
	for _, s := range body.split(". ") {
		res = append(res, p.sentence(s))
	}
	return res
}

func (p *parser) sentence(s span) Sentence {
	if strings.TrimSpace(s.text) == "" {
		p.fatal(s.off, "empty sentence")
	}
	var res Sentence
	for _, ph := range s.split(": ") {
		res = append(res, p.phrase(ph))
	}
	return res
}

func (p *parser) phrase(s span) Phrase {
	words := s.fields()
	if len(words) == 0 {
		p.fatal(s.off, "empty phrase")
	}
	res := make(Phrase, len(words))
	for i, w := range words {
		res[i] = p.word(w)
	}
	return res
}

func (p *parser) word(s span) Word {
	var res Word
	for _, syl := range s.split("-") {
		res = append(res, p.syllable(syl))
	}
	return res
}

// unit is a rune of the canonically decomposed input, together with the
// byte offset of the input rune it came from.
type unit struct {
	r   rune
	pos int
}

func (p *parser) syllable(s span) Syllable {
	if s.text == "" {
		p.fatal(s.off, "empty syllable")
	}

	var units []unit
	for i, r := range s.text {
		for _, d := range norm.NFD.String(string(r)) {
			units = append(units, unit{d, s.off + i})
		}
	}
	k := 0
	expect := func(what string) unit {
		if k >= len(units) {
			p.fatal(s.end(), "%s: missing %s", s.text, what)
		}
		return units[k]
	}

	var res Syllable

	first := expect("onset")
	if k+1 < len(units) && (units[k+1].r == 'y' || units[k+1].r == 'w') {
		letters := string([]rune{first.r, units[k+1].r})
		onset, ok := onsetByLetters[letters]
		if !ok {
			p.fatal(first.pos, "invalid onset %q", letters)
		}
		res.Onset = onset
		k += 2
	} else {
		onset, ok := onsetByLetters[string(first.r)]
		if !ok {
			p.fatal(first.pos, "invalid onset %q", first.r)
		}
		res.Onset = onset
		k++
	}

	v := expect("vowel")
	vowel, ok := vowelByLetter[v.r]
	if !ok {
		p.fatal(v.pos, "expected a vowel, found %q", v.r)
	}
	res.Vowel = vowel
	k++

	t := expect("tone mark")
	tone, ok := toneByRune[t.r]
	if !ok {
		p.fatal(t.pos, "expected a tone mark, found %q", t.r)
	}
	res.Tone = tone
	k++

	if k < len(units) {
		if g, ok := glideByLetter[units[k].r]; ok {
			res.Coda = &g
			k++
		}
	}
	if k < len(units) {
		p.fatal(units[k].pos, "unexpected %q after syllable", units[k].r)
	}
	return res
}
