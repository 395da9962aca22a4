// Package notation parses a plain-text phoneme notation such as
// "DH AH0 | D AO1 G": ARPAbet symbols separated by whitespace, words
// separated by "|".
package notation

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ieee0824/katakana-eigo/phoneme"
)

// Utterance is the parsed form of a notation string.
type Utterance struct {
	Items []*Item `@@*`
}

// Item is one symbol or one word separator.
type Item struct {
	Sep    bool    `  @"|"`
	Symbol *string `| @Symbol`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Anything alphanumeric lexes as a symbol; phoneme.Parse decides validity.
	{Name: "Symbol", Pattern: `[A-Za-z0-9]+`},
	{Name: "Sep", Pattern: `\|`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var notationParser = participle.MustBuild[Utterance](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace"),
)

// Parse converts a notation string into a phoneme sequence with a Boundary
// after every non-empty word. Unknown symbols fail with *phoneme.ParseError.
func Parse(s string) ([]phoneme.Phoneme, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	u, err := notationParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("notation %q: %w", s, err)
	}

	var out []phoneme.Phoneme
	inWord := false
	for _, it := range u.Items {
		if it.Sep {
			if inWord {
				out = append(out, phoneme.Boundary)
				inWord = false
			}
			continue
		}
		p, err := phoneme.Parse(*it.Symbol)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		inWord = true
	}
	if inWord {
		out = append(out, phoneme.Boundary)
	}
	return out, nil
}

// Format writes ps back in notation form. Boundaries become " | " except a
// trailing one, which is dropped.
func Format(ps []phoneme.Phoneme) string {
	var b strings.Builder
	for i, p := range ps {
		if p.IsBoundary() && i == len(ps)-1 {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	return b.String()
}
