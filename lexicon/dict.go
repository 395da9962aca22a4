package lexicon

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/phoneme"
)

var commentPrefix = []byte(";;;")

// Entry represents a single pronunciation for a word.
type Entry struct {
	Word     string
	Variant  int               // 0 for the primary pronunciation, n for WORD(n)
	Phonemes []phoneme.Phoneme // phoneme sequence, no boundary
}

// Stats describes a completed load.
type Stats struct {
	Lines        int // lines read, including comments and blanks
	SkippedLines int // lines dropped as invalid UTF-8 or without phonemes
}

// Dictionary holds word-to-pronunciation mappings.
// It must not be modified once shared between goroutines.
type Dictionary struct {
	Entries     map[string][]Entry // word -> list of alternative pronunciations
	Fingerprint string             // hex BLAKE3 of the decoded source
	Stats       Stats
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]Entry),
	}
}

// Add adds a pronunciation entry to the dictionary.
func (d *Dictionary) Add(word string, variant int, phonemes []phoneme.Phoneme) {
	d.Entries[word] = append(d.Entries[word], Entry{
		Word:     word,
		Variant:  variant,
		Phonemes: phonemes,
	})
}

// Load reads a CMUdict-format dictionary.
// Format: WORD<space>PH1 PH2 ... PHn, with ";;;" comment lines.
// A token that is not ARPAbet aborts the load with a wrapped
// *phoneme.ParseError. Lines that are not valid UTF-8 are logged and skipped.
func Load(r io.Reader) (*Dictionary, error) {
	h := blake3.New()
	d := NewDictionary()
	scanner := bufio.NewScanner(io.TeeReader(r, h))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := -1

	for scanner.Scan() {
		lineNum++
		d.Stats.Lines++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 || bytes.HasPrefix(raw, commentPrefix) {
			continue
		}
		if !utf8.Valid(raw) {
			logging.LineSkipped(lineNum, "invalid UTF-8")
			d.Stats.SkippedLines++
			continue
		}
		line := string(raw)

		var tokens []string
		for _, tok := range strings.Split(line, " ") {
			tok = strings.TrimRight(tok, "\r")
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
		if len(tokens) < 2 {
			logging.LineSkipped(lineNum, "no phonemes")
			d.Stats.SkippedLines++
			continue
		}

		phonemes, err := phoneme.ParseSequence(tokens[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		word, variant := splitVariant(tokens[0])
		d.Add(word, variant, phonemes)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	d.Fingerprint = hex.EncodeToString(h.Sum(nil))
	return d, nil
}

// splitVariant splits "WORD(2)" into ("WORD", 2).
func splitVariant(tok string) (string, int) {
	open := strings.LastIndexByte(tok, '(')
	if open <= 0 || !strings.HasSuffix(tok, ")") {
		return tok, 0
	}
	n, err := strconv.Atoi(tok[open+1 : len(tok)-1])
	if err != nil || n < 0 {
		return tok, 0
	}
	return tok[:open], n
}

// LoadFile opens a dictionary file, choosing the decoder by extension:
// .xz for xz-compressed CMUdict, .pls or .xml for a PLS lexicon, anything
// else for plain CMUdict text.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var d *Dictionary
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		xr, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		d, err = Load(xr)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	case ".pls", ".xml":
		d, err = LoadPLS(f)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	default:
		d, err = Load(f)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	logging.DictionaryLoaded(path, d.Len(), d.Stats.SkippedLines, d.Fingerprint)
	return d, nil
}

// Lookup returns all pronunciation variants for a word.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.Entries[word]
}

// PhonemeSequence returns the phoneme sequence for a word (first pronunciation).
func (d *Dictionary) PhonemeSequence(word string) ([]phoneme.Phoneme, bool) {
	entries := d.Entries[word]
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0].Phonemes, true
}

// Pronounce implements Source.
func (d *Dictionary) Pronounce(_ context.Context, word string) ([]phoneme.Phoneme, bool, error) {
	ps, ok := d.PhonemeSequence(word)
	return ps, ok, nil
}

// Words returns all words in the dictionary.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	return words
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.Entries)
}
