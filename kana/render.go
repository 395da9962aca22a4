package kana

import (
	"strings"

	"github.com/ieee0824/katakana-eigo/phoneme"
)

// Render writes a unit sequence as katakana. A consonant is held until the
// next vowel and written together with it; ン and ー stand alone and a
// boundary becomes a space.
//
// Render panics with *InvariantError on a consonant and vowel pair missing
// from the mora table.
func Render(units []phoneme.Unit) string {
	var sb strings.Builder
	sb.Grow(3 * len(units))

	var pending phoneme.KanaConsonant
	hasPending := false
	for _, u := range units {
		switch u.Kind {
		case phoneme.UnitConsonant:
			switch u.Consonant {
			case phoneme.MoraNasal:
				sb.WriteString(moraNasal)
			case phoneme.LongMark:
				sb.WriteString(longMark)
			default:
				pending, hasPending = u.Consonant, true
			}
		case phoneme.UnitVowel:
			if !hasPending {
				sb.WriteString(Vowel(u.Vowel))
				continue
			}
			s, ok := Mora(pending, u.Vowel)
			if !ok {
				panic(&InvariantError{Consonant: pending, Vowel: u.Vowel})
			}
			sb.WriteString(s)
			hasPending = false
		case phoneme.UnitBoundary:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
