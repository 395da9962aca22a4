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
	"github.com/ieee0824/katakana-eigo/internal/textenc"
	"github.com/ieee0824/katakana-eigo/kana"
)

// EvalCmd scores conversions against reference katakana.
type EvalCmd struct {
	File    string `arg:"" type:"existingfile" help:"TSV of WORD<TAB>reference katakana"`
	Verbose bool   `name:"verbose" short:"v" help:"Print every mismatch"`
}

func (c *EvalCmd) Run(ctx context.Context, g *Globals) error {
	conv, closeFn, err := g.converter(ctx)
	defer closeFn()
	if err != nil {
		return err
	}
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	out := g.stdout()
	defer out.Close()

	var mismatches io.Writer
	if c.Verbose {
		mismatches = out
	}
	rep, err := evaluate(ctx, conv, textenc.NewReader(f, g.enc), mismatches)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rep)
	return err
}

type evalReport struct {
	Total     int // references with a dictionary entry
	Missing   int // references whose word is not in the dictionary
	Exact     int
	TotalDist int // summed unit edit distance
}

func (r evalReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "words:     %d (%d not in dictionary)\n", r.Total, r.Missing)
	if r.Total == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "exact:     %d (%.1f%%)\n", r.Exact, 100*float64(r.Exact)/float64(r.Total))
	fmt.Fprintf(&b, "mean dist: %.3f units\n", float64(r.TotalDist)/float64(r.Total))
	return b.String()
}

// evaluate reads WORD<TAB>reference lines. Mismatches are written to w when
// it is non-nil.
func evaluate(ctx context.Context, conv *katakana.Converter, r io.Reader, w io.Writer) (evalReport, error) {
	var rep evalReport
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, ref, ok := strings.Cut(line, "\t")
		if !ok {
			return rep, fmt.Errorf("line %d: expected WORD<TAB>katakana", lineNum)
		}
		ref = strings.TrimSpace(ref)

		got, err := conv.Katakanize(ctx, word)
		if err != nil {
			return rep, fmt.Errorf("line %d: %w", lineNum, err)
		}
		got = strings.TrimSpace(got)
		if got == "" {
			logging.Debug("reference_word_missing", "line", lineNum, "word", word)
			rep.Missing++
			continue
		}

		rep.Total++
		if got == ref {
			rep.Exact++
			continue
		}
		d := kana.Distance(got, ref)
		rep.TotalDist += d
		if w != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", word, got, ref, d)
		}
	}
	return rep, sc.Err()
}
