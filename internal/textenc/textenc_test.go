package textenc

import (
	"bytes"
	"io"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Type
		wantErr bool
	}{
		{"", UTF8, false},
		{"utf-8", UTF8, false},
		{"sjis", ShiftJIS, false},
		{"Shift_JIS", ShiftJIS, false},
		{"euc-jp", EUCJP, false},
		{"latin1", UTF8, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	const text = "ダグ ザ ハンバーガー\n"
	for _, typ := range []Type{UTF8, ShiftJIS, EUCJP} {
		t.Run(typ.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, typ)
			if _, err := io.WriteString(w, text); err != nil {
				t.Fatal(err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}
			if typ != UTF8 && buf.String() == text {
				t.Errorf("%v output was not transcoded", typ)
			}
			got, err := io.ReadAll(NewReader(&buf, typ))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != text {
				t.Errorf("round trip = %q, want %q", got, text)
			}
		})
	}
}

func TestShiftJISBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, ShiftJIS)
	io.WriteString(w, "ア")
	w.Close()
	if want := []byte{0x83, 0x41}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("ア in Shift_JIS = % x, want % x", buf.Bytes(), want)
	}
}
