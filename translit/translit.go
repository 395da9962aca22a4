// Package translit maps an English phoneme sequence to Japanese phonetic
// units in one forward pass, applying nasal assimilation, affricate
// contraction, default vowels and diphthong glides along the way.
package translit

import "github.com/ieee0824/katakana-eigo/phoneme"

// Pending is the English consonant held back until the next element shows
// how it should be written. The zero value holds nothing.
type Pending struct {
	Consonant phoneme.Consonant
	Valid     bool
}

// hold returns the pending state after cur: its consonant if it is one.
func hold(cur phoneme.Phoneme) Pending {
	if cur.IsConsonant() {
		return Pending{Consonant: cur.Consonant, Valid: true}
	}
	return Pending{}
}

// Transliterate converts ps, which must be free of tombstones for the
// result to be meaningful, into a new unit sequence. A consonant still
// pending when ps ends without a boundary produces nothing.
func Transliterate(ps []phoneme.Phoneme) []phoneme.Unit {
	out := make([]phoneme.Unit, 0, 2*len(ps))
	var pending Pending
	for i, cur := range ps {
		var next phoneme.Phoneme
		hasNext := i+1 < len(ps)
		if hasNext {
			next = ps[i+1]
		}
		out, pending = Step(out, pending, cur, next, hasNext)
	}
	return out
}

// Step consumes one element. It appends the units cur produces to out and
// returns the new pending state. The last unit of out and the following
// element (next, when hasNext) are read but never modified.
func Step(out []phoneme.Unit, pending Pending, cur, next phoneme.Phoneme, hasNext bool) ([]phoneme.Unit, Pending) {
	out, pending = apply(out, pending, cur, next, hasNext)
	return augment(out, cur), pending
}

// apply runs the first matching rule.
func apply(out []phoneme.Unit, pending Pending, cur, next phoneme.Phoneme, hasNext bool) ([]phoneme.Unit, Pending) {
	if !pending.Valid {
		switch cur.Kind {
		case phoneme.KindVowel:
			return append(out, phoneme.VowelUnit(MapVowel(cur.Vowel))), Pending{}
		case phoneme.KindConsonant:
			return out, hold(cur)
		}
	}

	switch cur.Kind {
	case phoneme.KindTombstone:
		return out, pending
	case phoneme.KindBoundary:
		if pending.Valid {
			out = release(out, pending.Consonant)
		}
		return out, Pending{}
	case phoneme.KindConsonant:
		k := pending.Consonant
		switch {
		case k == phoneme.M && (cur.Is(phoneme.B) || cur.Is(phoneme.P) || cur.Is(phoneme.M)):
			return append(out, phoneme.ConsonantUnit(phoneme.MoraNasal)), hold(cur)
		case k == phoneme.T && cur.Is(phoneme.S) && wordFinal(next, hasNext):
			return append(out, phoneme.ConsonantUnit(phoneme.KanaTs), phoneme.VowelUnit(phoneme.KanaU)), Pending{}
		case k == phoneme.D && cur.Is(phoneme.Z) && wordFinal(next, hasNext):
			return append(out, phoneme.ConsonantUnit(phoneme.KanaZ), phoneme.VowelUnit(phoneme.KanaU)), Pending{}
		}
		return release(out, k), hold(cur)
	case phoneme.KindVowel:
		return pair(out, pending.Consonant, MapVowel(cur.Vowel)), Pending{}
	}
	return out, pending
}

func wordFinal(next phoneme.Phoneme, hasNext bool) bool {
	return !hasNext || next.IsBoundary()
}

// release writes a pending consonant that is not followed by a vowel.
func release(out []phoneme.Unit, k phoneme.Consonant) []phoneme.Unit {
	switch {
	case k == phoneme.N:
		return append(out, phoneme.ConsonantUnit(phoneme.MoraNasal))
	case k == phoneme.R && lastIs(out, phoneme.VowelUnit(phoneme.KanaA)):
		return append(out, phoneme.ConsonantUnit(phoneme.LongMark))
	case k == phoneme.D:
		return append(out, phoneme.ConsonantUnit(phoneme.KanaD), phoneme.VowelUnit(phoneme.KanaO))
	}
	return pair(out, k, phoneme.KanaU)
}

// pair writes consonant k with vowel v. NG keeps its nasal as ン.
func pair(out []phoneme.Unit, k phoneme.Consonant, v phoneme.KanaVowel) []phoneme.Unit {
	if k == phoneme.NG {
		out = append(out, phoneme.ConsonantUnit(phoneme.MoraNasal))
	}
	return append(out, phoneme.ConsonantUnit(MapConsonant(k)), phoneme.VowelUnit(v))
}

func lastIs(out []phoneme.Unit, u phoneme.Unit) bool {
	return len(out) > 0 && out[len(out)-1] == u
}

// augment appends what cur adds regardless of the rule that fired.
func augment(out []phoneme.Unit, cur phoneme.Phoneme) []phoneme.Unit {
	switch cur.Kind {
	case phoneme.KindVowel:
		switch cur.Vowel {
		case phoneme.ER, phoneme.IY, phoneme.UH, phoneme.UW:
			out = append(out, phoneme.ConsonantUnit(phoneme.LongMark))
		case phoneme.AY, phoneme.EY, phoneme.OY:
			out = append(out, phoneme.VowelUnit(phoneme.KanaI))
		case phoneme.AW, phoneme.OW:
			out = append(out, phoneme.VowelUnit(phoneme.KanaU))
		}
	case phoneme.KindBoundary:
		out = append(out, phoneme.BoundaryUnit)
	}
	return out
}
