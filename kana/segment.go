package kana

import (
	"sync"

	"github.com/ieee0824/katakana-eigo/phoneme"
)

// glyphIndex maps katakana back to units. Two-rune entries (digraphs such as
// チャ) are kept apart from single runes so lookup can try the longest match
// first.
type glyphIndex struct {
	two map[string][]phoneme.Unit
	one map[string][]phoneme.Unit
}

func (ix *glyphIndex) add(s string, us ...phoneme.Unit) {
	m := ix.one
	if len([]rune(s)) == 2 {
		m = ix.two
	}
	// The first spelling registered wins, so bare vowels beat ウ/イ from the
	// W and Y rows.
	if _, ok := m[s]; !ok {
		m[s] = us
	}
}

var loadIndex = sync.OnceValue(func() *glyphIndex {
	ix := &glyphIndex{
		two: make(map[string][]phoneme.Unit),
		one: make(map[string][]phoneme.Unit),
	}
	for v, s := range bareVowels {
		ix.add(s, phoneme.VowelUnit(phoneme.KanaVowel(v)))
	}
	ix.add(moraNasal, phoneme.ConsonantUnit(phoneme.MoraNasal))
	ix.add(longMark, phoneme.ConsonantUnit(phoneme.LongMark))
	for c, row := range moraTable {
		for v, s := range row {
			if s == "" {
				continue
			}
			ix.add(s, phoneme.ConsonantUnit(phoneme.KanaConsonant(c)), phoneme.VowelUnit(phoneme.KanaVowel(v)))
		}
	}
	return ix
})

// Segment converts katakana to a unit sequence, the inverse of Render.
// Spaces become boundaries; characters outside the mora table are skipped.
// Where several units spell the same glyph one is chosen consistently, so
// Render(Segment(s)) reproduces s for any s built from table glyphs.
func Segment(s string) []phoneme.Unit {
	ix := loadIndex()
	runes := []rune(s)
	var result []phoneme.Unit
	for i := 0; i < len(runes); {
		if runes[i] == ' ' {
			result = append(result, phoneme.BoundaryUnit)
			i++
			continue
		}
		// Try 2-char match first (longest match)
		if i+1 < len(runes) {
			if us, ok := ix.two[string(runes[i:i+2])]; ok {
				result = append(result, us...)
				i += 2
				continue
			}
		}
		if us, ok := ix.one[string(runes[i])]; ok {
			result = append(result, us...)
		}
		i++
	}
	return result
}
