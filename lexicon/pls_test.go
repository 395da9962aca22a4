package lexicon

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/phoneme"
)

const testPLS = `<?xml version="1.0" encoding="UTF-8"?>
<lexicon version="1.0"
      xmlns="http://www.w3.org/2005/01/pronunciation-lexicon"
      alphabet="x-arpabet" xml:lang="en-US">
  <lexeme>
    <grapheme>dog</grapheme>
    <phoneme>D AO1 G</phoneme>
  </lexeme>
  <lexeme>
    <grapheme>the</grapheme>
    <phoneme>DH AH0</phoneme>
    <phoneme>DH IY0</phoneme>
  </lexeme>
  <lexeme>
    <grapheme>colour</grapheme>
    <grapheme>color</grapheme>
    <phoneme>K AH1 L ER0</phoneme>
  </lexeme>
  <lexeme>
    <grapheme>UN</grapheme>
    <alias>United Nations</alias>
  </lexeme>
</lexicon>`

func TestLoadPLS(t *testing.T) {
	d, err := LoadPLS(strings.NewReader(testPLS))
	if err != nil {
		t.Fatalf("LoadPLS error: %v", err)
	}

	tests := []struct {
		word     string
		variants int
		first    string
	}{
		{"DOG", 1, "D AO1 G"},
		{"THE", 2, "DH AH0"},
		{"COLOUR", 1, "K AH1 L ER0"},
		{"COLOR", 1, "K AH1 L ER0"},
	}
	for _, tt := range tests {
		entries := d.Lookup(tt.word)
		if len(entries) != tt.variants {
			t.Errorf("%s variants = %d, want %d", tt.word, len(entries), tt.variants)
			continue
		}
		if got := phoneme.Join(entries[0].Phonemes); got != tt.first {
			t.Errorf("%s = %s, want %s", tt.word, got, tt.first)
		}
	}
	if _, ok := d.PhonemeSequence("UN"); ok {
		t.Error("alias-only lexeme should be skipped")
	}
	if d.Stats.SkippedLines != 1 {
		t.Errorf("SkippedLines = %d, want 1", d.Stats.SkippedLines)
	}
	if d.Fingerprint == "" {
		t.Error("missing fingerprint")
	}
}

func TestLoadPLSLogsSkippedLexeme(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.LevelWarn, logging.FormatText, &buf)
	defer logging.Init(logging.LevelInfo, logging.FormatText, os.Stderr)

	if _, err := LoadPLS(strings.NewReader(testPLS)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "lexeme_skipped") || !strings.Contains(out, "United Nations") {
		t.Errorf("log = %q, want lexeme_skipped for UN", out)
	}
}

func TestLoadPLSUnsupportedAlphabet(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"lexicon ipa", strings.Replace(testPLS, `alphabet="x-arpabet"`, `alphabet="ipa"`, 1)},
		{"phoneme ipa", strings.Replace(testPLS, `<phoneme>D AO1 G</phoneme>`, `<phoneme alphabet="ipa">dɔg</phoneme>`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPLS(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrUnsupportedAlphabet) {
				t.Errorf("err = %v, want ErrUnsupportedAlphabet", err)
			}
		})
	}
}

func TestLoadPLSBadSymbol(t *testing.T) {
	doc := strings.Replace(testPLS, "D AO1 G", "D QQ1 G", 1)
	_, err := LoadPLS(strings.NewReader(doc))
	var pe *phoneme.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *phoneme.ParseError", err)
	}
}

func TestLoadPLSMalformed(t *testing.T) {
	if _, err := LoadPLS(strings.NewReader("<words/>")); err == nil {
		t.Error("expected error for missing lexicon element")
	}
}

func TestLoadFilePLS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.pls")
	if err := os.WriteFile(path, []byte(testPLS), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if d.Len() != 4 {
		t.Errorf("Len = %d, want 4", d.Len())
	}
}
