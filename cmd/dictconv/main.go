// Command dictconv normalizes a pronunciation dictionary (CMUdict text, .xz
// or PLS) into sorted CMUdict text.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/alecthomas/kong"

	katakana "github.com/ieee0824/katakana-eigo"
	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/lexicon"
	"github.com/ieee0824/katakana-eigo/phoneme"
)

var CLI struct {
	Output string   `name:"output" short:"o" type:"path" help:"Output file (default: stdout)"`
	Corpus []string `name:"corpus" help:"Keep only words that occur in these text files (globs allowed)"`
	Inputs []string `arg:"" help:"Dictionary files; glob patterns are expanded"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("dictconv"),
		kong.Description("Merge dictionaries into normalized CMUdict text"),
		kong.UsageOnError(),
	)

	files, err := expandGlobs(CLI.Inputs)
	kctx.FatalIfErrorf(err)

	merged, err := loadAll(files)
	kctx.FatalIfErrorf(err)

	if len(CLI.Corpus) > 0 {
		corpusFiles, err := expandGlobs(CLI.Corpus)
		kctx.FatalIfErrorf(err)
		words, err := corpusWords(corpusFiles)
		kctx.FatalIfErrorf(err)
		missing := filter(merged, words)
		logging.Info("corpus_filter", "corpus_words", len(words), "kept", merged.Len())
		if missing > 0 {
			logging.Warn("corpus_words_missing", "count", missing)
		}
	}

	var w io.Writer = os.Stdout
	if CLI.Output != "" {
		f, err := os.Create(CLI.Output)
		kctx.FatalIfErrorf(err)
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	n := write(bw, merged)
	kctx.FatalIfErrorf(bw.Flush())

	logging.Info("dictconv_complete", "entries", n, "words", merged.Len(), "files", len(files))
}

func expandGlobs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if matches == nil {
			// No glob match, treat as literal path
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}
	return files, nil
}

// loadAll merges every file into one dictionary. Any file that fails to
// load fails the whole run, so no partial merge is written.
func loadAll(paths []string) (*lexicon.Dictionary, error) {
	merged := lexicon.NewDictionary()
	for _, path := range paths {
		d, err := lexicon.LoadFile(path)
		if err != nil {
			logging.Error("load_failed", "path", path, "error", err)
			return nil, err
		}
		logging.Debug("dictionary_merged", "path", path, "words", d.Len(), "total", merged.Len())
		merge(merged, d)
	}
	return merged, nil
}

// merge appends src's pronunciations to dst, dropping duplicates.
func merge(dst, src *lexicon.Dictionary) {
	for word, entries := range src.Entries {
		seen := make(map[string]bool)
		for _, e := range dst.Entries[word] {
			seen[phoneme.Join(e.Phonemes)] = true
		}
		for _, e := range entries {
			key := phoneme.Join(e.Phonemes)
			if seen[key] {
				continue
			}
			seen[key] = true
			dst.Add(word, len(dst.Entries[word]), e.Phonemes)
		}
	}
}

// write prints d sorted by word, alternates as WORD(n), and returns the
// number of lines written.
func write(w io.Writer, d *lexicon.Dictionary) int {
	words := d.Words()
	sort.Strings(words)
	n := 0
	for _, word := range words {
		for i, e := range d.Entries[word] {
			key := word
			if i > 0 {
				key = fmt.Sprintf("%s(%d)", word, i)
			}
			fmt.Fprintf(w, "%s  %s\n", key, phoneme.Join(e.Phonemes))
			n++
		}
	}
	return n
}

// corpusWords collects the upper-cased words of every file, split the way
// sentences are split for conversion.
func corpusWords(paths []string) (map[string]bool, error) {
	words := make(map[string]bool)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			for _, w := range katakana.Words(sc.Text()) {
				words[w] = true
			}
		}
		f.Close()
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return words, nil
}

// filter drops every word of d not in keep and returns how many words of
// keep d lacks.
func filter(d *lexicon.Dictionary, keep map[string]bool) int {
	for word := range d.Entries {
		if !keep[word] {
			delete(d.Entries, word)
		}
	}
	missing := 0
	for w := range keep {
		if _, ok := d.Entries[w]; !ok {
			missing++
		}
	}
	return missing
}
