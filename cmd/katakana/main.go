// Command katakana converts English text to katakana through a pronunciation
// dictionary.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	katakana "github.com/ieee0824/katakana-eigo"
	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/internal/textenc"
	"github.com/ieee0824/katakana-eigo/lexicon"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Dict      string `name:"dict" short:"d" env:"KATAKANA_DICT" type:"path" help:"Pronunciation dictionary (CMUdict text, .xz or PLS)"`
	Store     string `name:"store" type:"path" help:"SQLite dictionary store (overrides --dict)"`
	Encoding  string `name:"encoding" short:"e" env:"KATAKANA_ENCODING" default:"utf-8" help:"Input/output encoding: utf-8, sjis, euc-jp"`
	LogLevel  string `name:"log-level" env:"KATAKANA_LOG_LEVEL" default:"info" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	enc textenc.Type
}

// CLI defines the command-line interface.
var CLI struct {
	Globals

	Convert  ConvertCmd  `cmd:"" default:"withargs" help:"Convert text from arguments or an interactive loop"`
	Phonemes PhonemesCmd `cmd:"" help:"Render an ARPAbet notation string such as 'DH AH0 | D AO1 G'"`
	Batch    BatchCmd    `cmd:"" help:"Convert every line of a file concurrently"`
	Import   ImportCmd   `cmd:"" help:"Load a dictionary into the SQLite store"`
	Eval     EvalCmd     `cmd:"" help:"Score output against WORD<TAB>katakana references"`
	Serve    ServeCmd    `cmd:"" help:"Run the HTTP and WebSocket service"`
}

// setup configures logging and the stream encoding before any command runs.
func (g *Globals) setup() error {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return err
	}
	logging.Init(level, format, os.Stderr)

	g.enc, err = textenc.Parse(g.Encoding)
	return err
}

// source opens the configured dictionary. The returned close func is never nil.
func (g *Globals) source(ctx context.Context) (lexicon.Source, func(), error) {
	switch {
	case g.Store != "":
		s, err := lexicon.OpenStore(ctx, g.Store)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() { s.Close() }, nil
	case g.Dict != "":
		d, err := lexicon.LoadFile(g.Dict)
		if err != nil {
			return nil, func() {}, err
		}
		return d, func() {}, nil
	}
	return nil, func() {}, fmt.Errorf("no dictionary: set --dict, KATAKANA_DICT or --store")
}

func (g *Globals) converter(ctx context.Context, opts ...katakana.Option) (*katakana.Converter, func(), error) {
	src, closeFn, err := g.source(ctx)
	if err != nil {
		return nil, closeFn, err
	}
	return katakana.NewConverterFromSource(src, opts...), closeFn, nil
}

func (g *Globals) stdin() io.Reader {
	return textenc.NewReader(os.Stdin, g.enc)
}

func (g *Globals) stdout() io.WriteCloser {
	return textenc.NewWriter(os.Stdout, g.enc)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&CLI,
		kong.Name("katakana"),
		kong.Description("English to katakana transcription via ARPAbet pronunciations"),
		kong.UsageOnError(),
		kong.Bind(&CLI.Globals),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	kctx.FatalIfErrorf(CLI.Globals.setup())
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
