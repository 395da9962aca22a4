// Package lexicon loads English pronunciation dictionaries (CMUdict text,
// xz-compressed CMUdict, PLS XML) and serves them from memory or SQLite.
package lexicon

import (
	"context"

	"github.com/ieee0824/katakana-eigo/phoneme"
)

// Source looks up the primary pronunciation of an upper-cased word.
// A miss returns ok == false and a nil error. Callers must not modify the
// returned slice.
type Source interface {
	Pronounce(ctx context.Context, word string) (ps []phoneme.Phoneme, ok bool, err error)
}

var (
	_ Source = (*Dictionary)(nil)
	_ Source = (*Store)(nil)
)

// Info summarizes a source for health reporting.
type Info struct {
	Words       int    `json:"words"`
	Fingerprint string `json:"fingerprint"`
}

// Describe reports the size and fingerprint of a Dictionary or Store. Other
// sources yield a zero Info.
func Describe(ctx context.Context, src Source) (Info, error) {
	switch s := src.(type) {
	case *Dictionary:
		return Info{Words: s.Len(), Fingerprint: s.Fingerprint}, nil
	case *Store:
		n, err := s.Len(ctx)
		if err != nil {
			return Info{}, err
		}
		fp, err := s.Fingerprint(ctx)
		if err != nil {
			return Info{}, err
		}
		return Info{Words: n, Fingerprint: fp}, nil
	}
	return Info{}, nil
}
