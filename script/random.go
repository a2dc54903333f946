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

import "math/rand"

// RandomSyllable returns a syllable with uniformly chosen vowel and tone.
// About one onset in four is a glide, and four syllables out of five have
// a coda.
func RandomSyllable(rng *rand.Rand) Syllable {
	var onset Onset
	if rng.Intn(15) < 4 {
		onset = GlideOnset(Glide(rng.Intn(4)))
	} else {
		onset = Consonant(Stem(rng.Intn(5)), Manner(rng.Intn(3)))
	}
	syl := Syllable{
		Onset: onset,
		Vowel: Vowel(rng.Intn(5)),
		Tone:  Tone(rng.Intn(4)),
	}
	if rng.Intn(5) < 4 {
		coda := Glide(rng.Intn(4))
		syl.Coda = &coda
	}
	return syl
}

// repeat calls gen at least once.  After the n-th element, another one is
// added with probability 1/(n+1).
func repeat[T any](rng *rand.Rand, gen func(*rand.Rand) T) []T {
	var res []T
	for n := 1; ; n++ {
		if n > 1 && rng.Intn(n) != 0 {
			break
		}
		res = append(res, gen(rng))
	}
	return res
}

// RandomWord returns a random word.
func RandomWord(rng *rand.Rand) Word {
	return repeat(rng, RandomSyllable)
}

// RandomPhrase returns a random phrase.
func RandomPhrase(rng *rand.Rand) Phrase {
	return repeat(rng, RandomWord)
}

// RandomSentence returns a random sentence.
func RandomSentence(rng *rand.Rand) Sentence {
	return repeat(rng, RandomPhrase)
}

// RandomParagraph returns a random paragraph.
func RandomParagraph(rng *rand.Rand) Paragraph {
	return repeat(rng, RandomSentence)
}

// RandomText returns a random text.  The result is never empty.
func RandomText(rng *rand.Rand) Text {
	return repeat(rng, RandomParagraph)
}
