package phoneme

import (
	"fmt"
	"strings"
)

// KanaConsonant is a katakana consonant row, or one of the two
// pseudo-consonants that stand alone as a mora.
type KanaConsonant uint8

const (
	KanaB KanaConsonant = iota
	KanaCh
	KanaD
	KanaDy // voiced dental fricative, written ザ/ゼ/ジョ
	KanaF
	KanaG
	KanaH
	KanaJ
	KanaK
	KanaM
	KanaN // plain ナ row, not the mora nasal
	KanaP
	KanaR
	KanaS
	KanaSh
	KanaT
	KanaTs
	KanaV
	KanaW
	KanaY
	KanaZ

	// Pseudo-consonants: rendered on their own, never paired with a vowel.
	MoraNasal // ン
	LongMark  // ー

	numKanaConsonants
)

var kanaConsonantNames = [numKanaConsonants]string{
	KanaB: "b", KanaCh: "ch", KanaD: "d", KanaDy: "dy", KanaF: "f",
	KanaG: "g", KanaH: "h", KanaJ: "j", KanaK: "k", KanaM: "m",
	KanaN: "n", KanaP: "p", KanaR: "r", KanaS: "s", KanaSh: "sh",
	KanaT: "t", KanaTs: "ts", KanaV: "v", KanaW: "w", KanaY: "y",
	KanaZ: "z", MoraNasal: "N", LongMark: "long",
}

func (c KanaConsonant) String() string {
	if c < numKanaConsonants {
		return kanaConsonantNames[c]
	}
	return fmt.Sprintf("KanaConsonant(%d)", uint8(c))
}

// Standalone reports whether c is rendered without a following vowel.
func (c KanaConsonant) Standalone() bool {
	return c == MoraNasal || c == LongMark
}

// KanaVowel is one of the five Japanese vowels.
type KanaVowel uint8

const (
	KanaA KanaVowel = iota
	KanaI
	KanaU
	KanaE
	KanaO

	NumKanaVowels
)

var kanaVowelNames = [NumKanaVowels]string{"a", "i", "u", "e", "o"}

func (v KanaVowel) String() string {
	if v < NumKanaVowels {
		return kanaVowelNames[v]
	}
	return fmt.Sprintf("KanaVowel(%d)", uint8(v))
}

// UnitKind tags the variant held by a Unit.
type UnitKind uint8

const (
	UnitConsonant UnitKind = iota + 1
	UnitVowel
	UnitBoundary
)

// Unit is one Japanese phonetic unit.
type Unit struct {
	Kind      UnitKind
	Consonant KanaConsonant
	Vowel     KanaVowel
}

// ConsonantUnit returns a consonant unit.
func ConsonantUnit(c KanaConsonant) Unit {
	return Unit{Kind: UnitConsonant, Consonant: c}
}

// VowelUnit returns a vowel unit.
func VowelUnit(v KanaVowel) Unit {
	return Unit{Kind: UnitVowel, Vowel: v}
}

// BoundaryUnit separates words in a unit sequence.
var BoundaryUnit = Unit{Kind: UnitBoundary}

func (u Unit) String() string {
	switch u.Kind {
	case UnitConsonant:
		return u.Consonant.String()
	case UnitVowel:
		return u.Vowel.String()
	case UnitBoundary:
		return "|"
	}
	return "?"
}

// JoinUnits formats a unit sequence as space separated names.
func JoinUnits(us []Unit) string {
	ss := make([]string, len(us))
	for i, u := range us {
		ss[i] = u.String()
	}
	return strings.Join(ss, " ")
}

// AllKanaConsonants returns every consonant row, excluding the
// pseudo-consonants.
func AllKanaConsonants() []KanaConsonant {
	cs := make([]KanaConsonant, 0, MoraNasal)
	for c := KanaB; c < MoraNasal; c++ {
		cs = append(cs, c)
	}
	return cs
}
