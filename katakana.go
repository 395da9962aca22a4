// Package katakana renders English words as katakana from their ARPAbet
// pronunciations.
package katakana

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/width"

	"github.com/ieee0824/katakana-eigo/allophone"
	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/internal/parallel"
	"github.com/ieee0824/katakana-eigo/kana"
	"github.com/ieee0824/katakana-eigo/lexicon"
	"github.com/ieee0824/katakana-eigo/phoneme"
	"github.com/ieee0824/katakana-eigo/translit"
)

// Pipeline preprocesses, transliterates and renders a boundary-delimited
// phoneme sequence. ps is rewritten in place.
func Pipeline(ps []phoneme.Phoneme) string {
	return kana.Render(translit.Transliterate(allophone.Preprocess(ps)))
}

// Converter turns English sentences into katakana using a pronunciation
// source. It is safe for concurrent use if its source is.
type Converter struct {
	Source     lexicon.Source
	Logger     *slog.Logger
	Preprocess bool // apply degemination and flapping
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for lookup misses.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.Logger = l
	}
}

// WithoutPreprocess skips the allophonic pass.
func WithoutPreprocess() Option {
	return func(c *Converter) {
		c.Preprocess = false
	}
}

// NewConverter creates a Converter from a dictionary file (CMUdict text,
// .xz or PLS).
func NewConverter(dictPath string, opts ...Option) (*Converter, error) {
	dict, err := lexicon.LoadFile(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return NewConverterFromSource(dict, opts...), nil
}

// NewConverterFromSource creates a Converter from an already opened source.
func NewConverterFromSource(src lexicon.Source, opts ...Option) *Converter {
	c := &Converter{
		Source:     src,
		Logger:     logging.GetLogger(),
		Preprocess: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', ',', '.', '\t':
		return true
	}
	return false
}

// Words splits text into upper-cased dictionary keys. Full-width ASCII is
// folded to narrow first.
func Words(text string) []string {
	fields := strings.FieldsFunc(width.Fold.String(text), isSeparator)
	for i, w := range fields {
		fields[i] = strings.ToUpper(w)
	}
	return fields
}

// Phonemes looks up every word of text and returns the sentence's phoneme
// sequence, each found word followed by a Boundary. Unknown words are omitted.
func (c *Converter) Phonemes(ctx context.Context, text string) ([]phoneme.Phoneme, error) {
	var out []phoneme.Phoneme
	for _, word := range Words(text) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ps, ok, err := c.Source.Pronounce(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", word, err)
		}
		if !ok {
			c.Logger.Debug("word_not_found", "word", word)
			continue
		}
		out = append(out, ps...)
		out = append(out, phoneme.Boundary)
	}
	return out, nil
}

// Katakanize converts a sentence. The pipeline runs once over the whole
// sentence so preprocessing can act across word boundaries.
func (c *Converter) Katakanize(ctx context.Context, text string) (string, error) {
	ps, err := c.Phonemes(ctx, text)
	if err != nil {
		return "", err
	}
	return c.Render(ps), nil
}

// Render runs the pipeline on ps, honoring the Preprocess setting.
func (c *Converter) Render(ps []phoneme.Phoneme) string {
	if c.Preprocess {
		ps = allophone.Preprocess(ps)
	}
	return kana.Render(translit.Transliterate(ps))
}

// ConvertBatch converts lines with at most workers goroutines. The result is
// in input order. The first error stops scheduling and is returned.
func (c *Converter) ConvertBatch(ctx context.Context, lines []string, workers int) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]string, len(lines))
	var (
		once     sync.Once
		firstErr error
	)
	err := parallel.ForEach(ctx, len(lines), workers, func(i int) {
		s, err := c.Katakanize(ctx, lines[i])
		if err != nil {
			once.Do(func() {
				firstErr = fmt.Errorf("line %d: %w", i+1, err)
				cancel()
			})
			return
		}
		out[i] = s
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
