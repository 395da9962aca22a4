package lexicon

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ieee0824/katakana-eigo/phoneme"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(context.Background(), filepath.Join(t.TempDir(), "dict.db"))
	if err != nil {
		t.Fatalf("OpenStore error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreImportAndPronounce(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	fp, err := s.Fingerprint(ctx)
	if err != nil || fp != "" {
		t.Fatalf("empty store Fingerprint = %q, %v", fp, err)
	}

	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Import(ctx, d); err != nil {
		t.Fatalf("Import error: %v", err)
	}

	n, err := s.Len(ctx)
	if err != nil || n != d.Len() {
		t.Errorf("Len = %d, %v; want %d", n, err, d.Len())
	}
	fp, err = s.Fingerprint(ctx)
	if err != nil || fp != d.Fingerprint {
		t.Errorf("Fingerprint = %q, %v; want %q", fp, err, d.Fingerprint)
	}

	for _, word := range []string{"DOG", "THE", "CATS"} {
		want, _ := d.PhonemeSequence(word)
		got, ok, err := s.Pronounce(ctx, word)
		if err != nil || !ok {
			t.Fatalf("Pronounce(%s) = %v, %v", word, ok, err)
		}
		if phoneme.Join(got) != phoneme.Join(want) {
			t.Errorf("Pronounce(%s) = %s, want %s", word, phoneme.Join(got), phoneme.Join(want))
		}
	}

	if _, ok, err := s.Pronounce(ctx, "NOTAWORD"); ok || err != nil {
		t.Errorf("Pronounce miss = %v, %v; want false, nil", ok, err)
	}
}

func TestStoreImportReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first, _ := Load(strings.NewReader(testDict))
	if err := s.Import(ctx, first); err != nil {
		t.Fatal(err)
	}
	second, _ := Load(strings.NewReader("CAT  K AE1 T\n"))
	if err := s.Import(ctx, second); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := s.Pronounce(ctx, "DOG"); ok {
		t.Error("DOG survived a replacing import")
	}
	if n, _ := s.Len(ctx); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
	if fp, _ := s.Fingerprint(ctx); fp != second.Fingerprint {
		t.Errorf("Fingerprint = %q, want %q", fp, second.Fingerprint)
	}
}

func TestStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dict.db")

	s, err := OpenStore(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	d, _ := Load(strings.NewReader(testDict))
	if err := s.Import(ctx, d); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenStore(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, ok, err := s.Pronounce(ctx, "STOP"); !ok || err != nil {
		t.Errorf("Pronounce(STOP) after reopen = %v, %v", ok, err)
	}
}

func TestDescribe(t *testing.T) {
	ctx := context.Background()
	d, _ := Load(strings.NewReader(testDict))
	s := openTestStore(t)
	if err := s.Import(ctx, d); err != nil {
		t.Fatal(err)
	}

	for _, src := range []Source{d, s} {
		info, err := Describe(ctx, src)
		if err != nil {
			t.Fatal(err)
		}
		if info.Words != d.Len() || info.Fingerprint != d.Fingerprint {
			t.Errorf("Describe(%T) = %+v, want %d words and %s", src, info, d.Len(), d.Fingerprint)
		}
	}
}
