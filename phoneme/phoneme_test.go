package phoneme

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Phoneme
	}{
		{"B", ConsonantOf(B)},
		{"NG", ConsonantOf(NG)},
		{"ZH", ConsonantOf(ZH)},
		{"AA0", VowelOf(AA, AccentNone)},
		{"AO1", VowelOf(AO, AccentPrimary)},
		{"UW2", VowelOf(UW, AccentSecondary)},
		{"AH", VowelOf(AH, AccentUnspecified)},
		{"IY7", VowelOf(IY, AccentUnspecified)},
		{"EYx", VowelOf(EY, AccentUnspecified)},
		{"ER12", VowelOf(ER, AccentUnspecified)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, token := range []string{"", "X", "b", "aa1", "QQ1", "ng", "ア"} {
		_, err := Parse(token)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error = %v, want *ParseError", token, err)
			continue
		}
		if pe.Token != token {
			t.Errorf("ParseError.Token = %q, want %q", pe.Token, token)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	var all []Phoneme
	for _, c := range AllConsonants() {
		all = append(all, ConsonantOf(c))
	}
	for _, v := range AllVowels() {
		for _, a := range []Accent{AccentNone, AccentPrimary, AccentSecondary, AccentUnspecified} {
			all = append(all, VowelOf(v, a))
		}
	}
	for _, p := range all {
		got, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("Parse(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestAlphabetSizes(t *testing.T) {
	if n := len(AllVowels()); n != 15 {
		t.Errorf("len(AllVowels) = %d, want 15", n)
	}
	if n := len(AllConsonants()); n != 24 {
		t.Errorf("len(AllConsonants) = %d, want 24", n)
	}
	if n := len(AllKanaConsonants()); n != 21 {
		t.Errorf("len(AllKanaConsonants) = %d, want 21", n)
	}
}

func TestEquality(t *testing.T) {
	if VowelOf(AA, AccentPrimary) == VowelOf(AA, AccentNone) {
		t.Error("vowels with different accents compare equal")
	}
	if ConsonantOf(T) != ConsonantOf(T) {
		t.Error("same consonant compares unequal")
	}
	if Boundary == Tombstone {
		t.Error("Boundary == Tombstone")
	}
}

func TestParseSequence(t *testing.T) {
	ps, err := ParseSequence([]string{"D", "AO1", "G"})
	if err != nil {
		t.Fatal(err)
	}
	if got := Join(ps); got != "D AO1 G" {
		t.Errorf("Join = %q, want %q", got, "D AO1 G")
	}

	_, err = ParseSequence([]string{"D", "XX1"})
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Token != "XX1" {
		t.Errorf("ParseSequence error = %v, want ParseError for XX1", err)
	}
}
