// Package phoneme defines the two closed alphabets the conversion pipeline
// works on: English ARPAbet phonemes and Japanese phonetic units.
package phoneme

import (
	"fmt"
	"strings"
)

// Vowel is an ARPAbet vowel class.
type Vowel uint8

const (
	AA Vowel = iota
	AE
	AH
	AO
	AW
	AY
	EH
	ER
	EY
	IH
	IY
	OW
	OY
	UH
	UW

	numVowels
)

var vowelNames = [numVowels]string{
	AA: "AA", AE: "AE", AH: "AH", AO: "AO", AW: "AW",
	AY: "AY", EH: "EH", ER: "ER", EY: "EY", IH: "IH",
	IY: "IY", OW: "OW", OY: "OY", UH: "UH", UW: "UW",
}

func (v Vowel) String() string {
	if v < numVowels {
		return vowelNames[v]
	}
	return fmt.Sprintf("Vowel(%d)", uint8(v))
}

// Consonant is an ARPAbet consonant class.
type Consonant uint8

const (
	B Consonant = iota
	CH
	D
	DH
	F
	G
	HH
	JH
	K
	L
	M
	N
	NG
	P
	R
	S
	SH
	T
	TH
	V
	W
	Y
	Z
	ZH

	numConsonants
)

var consonantNames = [numConsonants]string{
	B: "B", CH: "CH", D: "D", DH: "DH", F: "F", G: "G",
	HH: "HH", JH: "JH", K: "K", L: "L", M: "M", N: "N",
	NG: "NG", P: "P", R: "R", S: "S", SH: "SH", T: "T",
	TH: "TH", V: "V", W: "W", Y: "Y", Z: "Z", ZH: "ZH",
}

func (c Consonant) String() string {
	if c < numConsonants {
		return consonantNames[c]
	}
	return fmt.Sprintf("Consonant(%d)", uint8(c))
}

// Accent is the stress mark carried by a vowel. It is parsed and kept but
// no conversion rule reads it.
type Accent uint8

const (
	AccentNone        Accent = iota // "0"
	AccentPrimary                   // "1"
	AccentSecondary                 // "2"
	AccentUnspecified               // no digit, or anything else
)

func (a Accent) suffix() string {
	switch a {
	case AccentNone:
		return "0"
	case AccentPrimary:
		return "1"
	case AccentSecondary:
		return "2"
	}
	return ""
}

// Kind tags the variant held by a Phoneme.
type Kind uint8

const (
	KindVowel Kind = iota + 1
	KindConsonant
	KindBoundary
	// KindTombstone marks an element deleted by the allophonic pass. It is
	// purged before the sequence leaves that pass.
	KindTombstone
)

// Phoneme is one element of an English phoneme sequence. Only the fields
// belonging to Kind are set, so two phonemes are equal under == exactly when
// they are the same vowel with the same accent, the same consonant, or the
// same marker.
type Phoneme struct {
	Kind      Kind
	Vowel     Vowel
	Accent    Accent
	Consonant Consonant
}

// VowelOf returns a vowel phoneme.
func VowelOf(v Vowel, a Accent) Phoneme {
	return Phoneme{Kind: KindVowel, Vowel: v, Accent: a}
}

// ConsonantOf returns a consonant phoneme.
func ConsonantOf(c Consonant) Phoneme {
	return Phoneme{Kind: KindConsonant, Consonant: c}
}

// Boundary separates words in a sequence.
var Boundary = Phoneme{Kind: KindBoundary}

// Tombstone marks a deleted element.
var Tombstone = Phoneme{Kind: KindTombstone}

func (p Phoneme) IsVowel() bool     { return p.Kind == KindVowel }
func (p Phoneme) IsConsonant() bool { return p.Kind == KindConsonant }
func (p Phoneme) IsBoundary() bool  { return p.Kind == KindBoundary }
func (p Phoneme) IsTombstone() bool { return p.Kind == KindTombstone }

// Is reports whether p is the consonant c.
func (p Phoneme) Is(c Consonant) bool {
	return p.Kind == KindConsonant && p.Consonant == c
}

// String returns the ARPAbet symbol. Boundary prints as "|" and Tombstone
// as "_"; neither parses back.
func (p Phoneme) String() string {
	switch p.Kind {
	case KindVowel:
		return p.Vowel.String() + p.Accent.suffix()
	case KindConsonant:
		return p.Consonant.String()
	case KindBoundary:
		return "|"
	case KindTombstone:
		return "_"
	}
	return "?"
}

// ParseError reports a token that is neither a consonant nor a vowel symbol.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("phoneme: invalid ARPAbet symbol %q", e.Token)
}

var (
	consonantIndex = func() map[string]Consonant {
		m := make(map[string]Consonant, numConsonants)
		for c, name := range consonantNames {
			m[name] = Consonant(c)
		}
		return m
	}()
	vowelIndex = func() map[string]Vowel {
		m := make(map[string]Vowel, numVowels)
		for v, name := range vowelNames {
			m[name] = Vowel(v)
		}
		return m
	}()
)

// Parse parses one ARPAbet token. Consonants must match exactly. Vowels are
// a two-letter code followed by a stress digit; a missing or unknown digit
// yields AccentUnspecified.
func Parse(token string) (Phoneme, error) {
	if c, ok := consonantIndex[token]; ok {
		return ConsonantOf(c), nil
	}
	if len(token) < 2 {
		return Phoneme{}, &ParseError{Token: token}
	}
	v, ok := vowelIndex[token[:2]]
	if !ok {
		return Phoneme{}, &ParseError{Token: token}
	}
	accent := AccentUnspecified
	switch token[2:] {
	case "0":
		accent = AccentNone
	case "1":
		accent = AccentPrimary
	case "2":
		accent = AccentSecondary
	}
	return VowelOf(v, accent), nil
}

// ParseSequence parses every token, stopping at the first failure.
func ParseSequence(tokens []string) ([]Phoneme, error) {
	ps := make([]Phoneme, 0, len(tokens))
	for _, tok := range tokens {
		p, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// Join formats a sequence as space separated symbols.
func Join(ps []Phoneme) string {
	ss := make([]string, len(ps))
	for i, p := range ps {
		ss[i] = p.String()
	}
	return strings.Join(ss, " ")
}

// AllVowels returns the 15 vowel classes.
func AllVowels() []Vowel {
	vs := make([]Vowel, numVowels)
	for i := range vs {
		vs[i] = Vowel(i)
	}
	return vs
}

// AllConsonants returns the 24 consonant classes.
func AllConsonants() []Consonant {
	cs := make([]Consonant, numConsonants)
	for i := range cs {
		cs[i] = Consonant(i)
	}
	return cs
}
