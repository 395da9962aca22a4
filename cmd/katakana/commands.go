package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	katakana "github.com/ieee0824/katakana-eigo"
	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/internal/server"
	"github.com/ieee0824/katakana-eigo/internal/textenc"
	"github.com/ieee0824/katakana-eigo/lexicon"
	"github.com/ieee0824/katakana-eigo/notation"
)

// ConvertCmd converts its arguments, or every stdin line when run without any.
type ConvertCmd struct {
	NoPreprocess bool     `name:"no-preprocess" help:"Skip degemination and flapping"`
	Text         []string `arg:"" optional:"" help:"Sentence to convert"`
}

func (c *ConvertCmd) Run(ctx context.Context, g *Globals) error {
	var opts []katakana.Option
	if c.NoPreprocess {
		opts = append(opts, katakana.WithoutPreprocess())
	}
	conv, closeFn, err := g.converter(ctx, opts...)
	defer closeFn()
	if err != nil {
		return err
	}

	out := g.stdout()
	defer out.Close()

	if len(c.Text) > 0 {
		s, err := conv.Katakanize(ctx, strings.Join(c.Text, " "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	}
	return convertLoop(ctx, conv, g.stdin(), out)
}

// convertLoop answers every input line with "-> <katakana>".
func convertLoop(ctx context.Context, conv *katakana.Converter, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		s, err := conv.Katakanize(ctx, sc.Text())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "-> %s\n", s); err != nil {
			return err
		}
	}
	return sc.Err()
}

// PhonemesCmd renders phonemes given in notation form without a dictionary.
type PhonemesCmd struct {
	Notation []string `arg:"" help:"ARPAbet symbols, words separated by |"`
}

func (c *PhonemesCmd) Run(g *Globals) error {
	ps, err := notation.Parse(strings.Join(c.Notation, " "))
	if err != nil {
		return err
	}
	out := g.stdout()
	defer out.Close()
	_, err = fmt.Fprintln(out, katakana.Pipeline(ps))
	return err
}

// BatchCmd converts a file line by line with a worker pool.
type BatchCmd struct {
	File    string `arg:"" help:"Input file, one sentence per line ('-' for stdin)"`
	Workers int    `name:"workers" short:"w" default:"4" help:"Concurrent conversions"`
}

func (c *BatchCmd) Run(ctx context.Context, g *Globals) error {
	conv, closeFn, err := g.converter(ctx)
	defer closeFn()
	if err != nil {
		return err
	}

	var in io.Reader
	if c.File == "-" {
		in = g.stdin()
	} else {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = textenc.NewReader(f, g.enc)
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}
	results, err := conv.ConvertBatch(ctx, lines, c.Workers)
	if err != nil {
		return err
	}

	out := g.stdout()
	defer out.Close()
	w := bufio.NewWriter(out)
	for _, s := range results {
		fmt.Fprintln(w, s)
	}
	logging.Info("batch_complete", "lines", len(lines), "workers", c.Workers)
	return w.Flush()
}

// ImportCmd loads a dictionary file into the --store database.
type ImportCmd struct {
	Source string `arg:"" type:"existingfile" help:"Dictionary to import (CMUdict text, .xz or PLS)"`
	Force  bool   `name:"force" short:"f" help:"Import even if the store already holds this dictionary"`
}

func (c *ImportCmd) Run(ctx context.Context, g *Globals) error {
	if g.Store == "" {
		return fmt.Errorf("import requires --store")
	}
	imported, err := importDictionary(ctx, g.Store, c.Source, c.Force)
	if err != nil {
		return err
	}
	if !imported {
		logging.Info("store_up_to_date", "store", g.Store, "source", c.Source)
	}
	return nil
}

// importDictionary reports whether the store was rewritten.
func importDictionary(ctx context.Context, storePath, dictPath string, force bool) (bool, error) {
	d, err := lexicon.LoadFile(dictPath)
	if err != nil {
		return false, err
	}
	s, err := lexicon.OpenStore(ctx, storePath)
	if err != nil {
		return false, err
	}
	defer s.Close()

	if !force {
		fp, err := s.Fingerprint(ctx)
		if err != nil {
			return false, err
		}
		if fp == d.Fingerprint {
			return false, nil
		}
	}
	if err := s.Import(ctx, d); err != nil {
		return false, fmt.Errorf("import %s: %w", dictPath, err)
	}
	logging.Info("store_imported", "store", storePath, "words", d.Len(), "fingerprint", d.Fingerprint)
	return true, nil
}

// ServeCmd runs the HTTP service until interrupted.
type ServeCmd struct {
	Addr           string   `name:"addr" env:"KATAKANA_ADDR" default:":8080" help:"Listen address"`
	AllowedOrigins []string `name:"allowed-origin" help:"WebSocket origins to accept (default: any)"`
}

func (c *ServeCmd) Run(ctx context.Context, g *Globals) error {
	conv, closeFn, err := g.converter(ctx)
	defer closeFn()
	if err != nil {
		return err
	}
	cfg := server.DefaultConfig()
	cfg.Addr = c.Addr
	cfg.AllowedOrigins = c.AllowedOrigins
	return server.New(cfg, conv).ListenAndServe(ctx)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
