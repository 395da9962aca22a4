// Package kana renders Japanese phonetic units as katakana and segments
// katakana back into units.
package kana

import (
	"fmt"

	"github.com/ieee0824/katakana-eigo/phoneme"
)

// moraTable holds the katakana for each consonant row and vowel, indexed
// a i u e o. An empty string marks a pair the transliterator never
// produces.
var moraTable = [...][phoneme.NumKanaVowels]string{
	// バ行
	phoneme.KanaB:  {"バ", "ビ", "ブ", "ベ", "ボ"},
	phoneme.KanaCh: {"チャ", "チ", "チュ", "チェ", "チョ"},
	// ダ行
	phoneme.KanaD:  {"ダ", "ディ", "ドゥ", "デ", "ド"},
	phoneme.KanaDy: {"ザ", "ディ", "デュ", "ゼ", "ジョ"},
	phoneme.KanaF:  {"ファ", "フィ", "フ", "フェ", "フォ"},
	// ガ行
	phoneme.KanaG: {"ガ", "ギ", "グ", "ゲ", "ゴ"},
	// ハ行
	phoneme.KanaH: {"ハ", "ヒ", "フ", "ヘ", "ホ"},
	phoneme.KanaJ: {"ジャ", "ジ", "ジュ", "ジェ", "ジョ"},
	// カ行
	phoneme.KanaK: {"カ", "キ", "ク", "ケ", "コ"},
	// マ行
	phoneme.KanaM: {"マ", "ミ", "ム", "メ", "モ"},
	// ナ行
	phoneme.KanaN: {"ナ", "ニ", "ヌ", "ネ", "ノ"},
	// パ行
	phoneme.KanaP: {"パ", "ピ", "プ", "ペ", "ポ"},
	// ラ行
	phoneme.KanaR: {"ラ", "リ", "ル", "レ", "ロ"},
	// サ行
	phoneme.KanaS:  {"サ", "シ", "ス", "セ", "ソ"},
	phoneme.KanaSh: {"シャ", "シ", "シュ", "シェ", "ショ"},
	// タ行
	phoneme.KanaT:  {"タ", "ティ", "トゥ", "テ", "ト"},
	phoneme.KanaTs: {"", "", "ツ", "", ""},
	phoneme.KanaV:  {"ヴァ", "ヴィ", "ヴ", "ヴェ", "ヴォ"},
	// ワ行
	phoneme.KanaW: {"ワ", "ウィ", "ウ", "ウェ", "ヲ"},
	// ヤ行
	phoneme.KanaY: {"ヤ", "イ", "ユ", "イェ", "ヨ"},
	// ザ行
	phoneme.KanaZ: {"ザ", "ズィ", "ズ", "ゼ", "ゾ"},
}

var bareVowels = [phoneme.NumKanaVowels]string{"ア", "イ", "ウ", "エ", "オ"}

const (
	moraNasal = "ン"
	longMark  = "ー"
)

// Mora returns the katakana for consonant c followed by vowel v, and false
// when the table has no such pair.
func Mora(c phoneme.KanaConsonant, v phoneme.KanaVowel) (string, bool) {
	if int(c) >= len(moraTable) || v >= phoneme.NumKanaVowels {
		return "", false
	}
	s := moraTable[c][v]
	return s, s != ""
}

// Vowel returns the katakana for a vowel with no consonant.
func Vowel(v phoneme.KanaVowel) string {
	return bareVowels[v]
}

// InvariantError is the panic value raised when the renderer meets a
// consonant and vowel pair it has no katakana for. Well-formed
// transliterator output never triggers it.
type InvariantError struct {
	Consonant phoneme.KanaConsonant
	Vowel     phoneme.KanaVowel
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("kana: no mora for %v+%v", e.Consonant, e.Vowel)
}
