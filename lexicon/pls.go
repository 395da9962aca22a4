package lexicon

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/zeebo/blake3"

	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/phoneme"
)

// ErrUnsupportedAlphabet is returned for PLS lexicons whose phonemes are not
// written in ARPAbet.
var ErrUnsupportedAlphabet = errors.New("lexicon: unsupported PLS alphabet")

// PLS documents usually carry the W3C default namespace, so element tests go
// through local-name().
var (
	lexiconExpr  = xpath.MustCompile("/*[local-name()='lexicon']")
	lexemeExpr   = xpath.MustCompile("//*[local-name()='lexeme']")
	graphemeExpr = xpath.MustCompile("./*[local-name()='grapheme']")
	phonemeExpr  = xpath.MustCompile("./*[local-name()='phoneme']")
)

func arpabetAlphabet(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "x-arpabet", "arpabet", "x-cmu":
		return true
	}
	return false
}

// LoadPLS reads a W3C Pronunciation Lexicon Specification document whose
// alphabet is ARPAbet. Graphemes are upper-cased into dictionary keys; each
// phoneme element of a lexeme becomes one variant.
func LoadPLS(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing PLS: %w", err)
	}
	lexicon := xmlquery.QuerySelector(root, lexiconExpr)
	if lexicon == nil {
		return nil, fmt.Errorf("parsing PLS: missing lexicon element")
	}
	alphabet := lexicon.SelectAttr("alphabet")
	if !arpabetAlphabet(alphabet) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlphabet, alphabet)
	}

	d := NewDictionary()
	for _, lexeme := range xmlquery.QuerySelectorAll(lexicon, lexemeExpr) {
		var variants [][]phoneme.Phoneme
		for _, ph := range xmlquery.QuerySelectorAll(lexeme, phonemeExpr) {
			if a := ph.SelectAttr("alphabet"); a != "" && !arpabetAlphabet(a) {
				return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlphabet, a)
			}
			ps, err := phoneme.ParseSequence(strings.Fields(ph.InnerText()))
			if err != nil {
				return nil, fmt.Errorf("lexeme %q: %w", lexeme.InnerText(), err)
			}
			if len(ps) > 0 {
				variants = append(variants, ps)
			}
		}
		if len(variants) == 0 {
			logging.Warn("lexeme_skipped", "lexeme", strings.TrimSpace(lexeme.InnerText()), "reason", "no phonemes")
			d.Stats.SkippedLines++
			continue
		}
		for _, g := range xmlquery.QuerySelectorAll(lexeme, graphemeExpr) {
			word := strings.ToUpper(strings.TrimSpace(g.InnerText()))
			if word == "" {
				continue
			}
			for i, ps := range variants {
				d.Add(word, i, ps)
			}
		}
	}

	sum := blake3.Sum256(data)
	d.Fingerprint = hex.EncodeToString(sum[:])
	return d, nil
}
