// Package textenc wraps CLI input and output streams in a Japanese legacy
// encoding when the terminal or files are not UTF-8.
package textenc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Type is a supported stream encoding.
type Type int

const (
	UTF8     Type = iota // no conversion
	ShiftJIS             // CP932
	EUCJP
)

func (t Type) String() string {
	switch t {
	case ShiftJIS:
		return "Shift_JIS"
	case EUCJP:
		return "EUC-JP"
	default:
		return "UTF-8"
	}
}

// Parse returns the encoding type for a name such as "sjis" or "euc-jp".
func Parse(name string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UTF8", "UTF-8":
		return UTF8, nil
	case "SHIFTJIS", "SHIFT_JIS", "SHIFT-JIS", "SJIS", "CP932":
		return ShiftJIS, nil
	case "EUC-JP", "EUC_JP", "EUCJP", "EUC":
		return EUCJP, nil
	}
	return UTF8, fmt.Errorf("unsupported encoding %q", name)
}

func (t Type) encoding() encoding.Encoding {
	switch t {
	case ShiftJIS:
		return japanese.ShiftJIS
	case EUCJP:
		return japanese.EUCJP
	}
	return nil
}

// NewReader returns a reader that decodes r from t into UTF-8.
func NewReader(r io.Reader, t Type) io.Reader {
	enc := t.encoding()
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}

// NewWriter returns a writer that encodes UTF-8 into t before writing to w.
// Callers must Close the result to flush buffered bytes.
func NewWriter(w io.Writer, t Type) io.WriteCloser {
	enc := t.encoding()
	if enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, enc.NewEncoder())
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
