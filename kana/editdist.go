package kana

import "github.com/ieee0824/katakana-eigo/phoneme"

// EditDistance counts the unit insertions, deletions and substitutions
// needed to turn a into b. A consonant row and its vowel are separate
// units, so ト against トゥ costs one.
func EditDistance(a, b []phoneme.Unit) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i, ua := range a {
		diag := row[0]
		row[0] = i + 1
		for j, ub := range b {
			sub := diag
			if ua != ub {
				sub++
			}
			diag = row[j+1]
			row[j+1] = min(row[j+1]+1, row[j]+1, sub)
		}
	}
	return row[len(b)]
}

// Distance is the unit edit distance between two katakana strings.
func Distance(x, y string) int {
	return EditDistance(Segment(x), Segment(y))
}
