// Package allophone simplifies connected-speech artifacts in an English
// phoneme stream before transliteration.
package allophone

import (
	"slices"

	"github.com/ieee0824/katakana-eigo/phoneme"
)

// window is a view of the elements around a cursor. Offsets outside the
// sequence are reported as absent; nothing is padded.
type window struct {
	ps []phoneme.Phoneme
	i  int
}

func (w window) at(off int) (*phoneme.Phoneme, bool) {
	j := w.i + off
	if j < 0 || j >= len(w.ps) {
		return nil, false
	}
	return &w.ps[j], true
}

// Preprocess rewrites ps in place and returns the compacted sequence with
// every tombstone removed. Rewrites made at one cursor are seen by the
// following cursors.
func Preprocess(ps []phoneme.Phoneme) []phoneme.Phoneme {
	for i := range ps {
		w := window{ps: ps, i: i}
		if degeminate(w) {
			continue
		}
		flap(w)
	}
	return Purge(ps)
}

// Purge removes tombstones in place.
func Purge(ps []phoneme.Phoneme) []phoneme.Phoneme {
	return slices.DeleteFunc(ps, phoneme.Phoneme.IsTombstone)
}

// degeminate drops the first of two equal elements separated by a single
// boundary: "bus stop" loses one /s/.
func degeminate(w window) bool {
	a, _ := w.at(0)
	sep, ok := w.at(1)
	if !ok || !sep.IsBoundary() {
		return false
	}
	b, ok := w.at(2)
	if !ok || *a != *b {
		return false
	}
	*a = phoneme.Tombstone
	return true
}

// flap turns a word-final /t/ between vowels into /l/ and joins the two
// words, as in "get up".
func flap(w window) bool {
	a, _ := w.at(0)
	b, ok1 := w.at(1)
	d, ok2 := w.at(2)
	c, ok3 := w.at(3)
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	if !d.IsBoundary() || !a.IsVowel() || !b.Is(phoneme.T) || !c.IsVowel() {
		return false
	}
	*d = phoneme.Tombstone
	*b = phoneme.ConsonantOf(phoneme.L)
	return true
}
