package translit

import "github.com/ieee0824/katakana-eigo/phoneme"

// consonantMap sends each ARPAbet consonant to the katakana row it is
// written with.
var consonantMap = [...]phoneme.KanaConsonant{
	phoneme.B:  phoneme.KanaB,
	phoneme.CH: phoneme.KanaCh,
	phoneme.D:  phoneme.KanaD,
	phoneme.DH: phoneme.KanaDy,
	phoneme.F:  phoneme.KanaF,
	phoneme.G:  phoneme.KanaG,
	phoneme.HH: phoneme.KanaH,
	phoneme.JH: phoneme.KanaJ,
	phoneme.K:  phoneme.KanaK,
	phoneme.L:  phoneme.KanaR,
	phoneme.M:  phoneme.KanaM,
	phoneme.N:  phoneme.KanaN,
	phoneme.NG: phoneme.KanaG,
	phoneme.P:  phoneme.KanaP,
	phoneme.R:  phoneme.KanaR,
	phoneme.S:  phoneme.KanaS,
	phoneme.SH: phoneme.KanaSh,
	phoneme.T:  phoneme.KanaT,
	phoneme.TH: phoneme.KanaSh,
	phoneme.V:  phoneme.KanaV,
	phoneme.W:  phoneme.KanaW,
	phoneme.Y:  phoneme.KanaY,
	phoneme.Z:  phoneme.KanaZ,
	phoneme.ZH: phoneme.KanaJ,
}

// vowelMap sends each ARPAbet vowel to the nearest Japanese vowel.
var vowelMap = [...]phoneme.KanaVowel{
	phoneme.AA: phoneme.KanaA,
	phoneme.AE: phoneme.KanaA,
	phoneme.AH: phoneme.KanaA,
	phoneme.AO: phoneme.KanaA,
	phoneme.AW: phoneme.KanaA,
	phoneme.AY: phoneme.KanaA,
	phoneme.EH: phoneme.KanaE,
	phoneme.ER: phoneme.KanaA,
	phoneme.EY: phoneme.KanaE,
	phoneme.IH: phoneme.KanaI,
	phoneme.IY: phoneme.KanaI,
	phoneme.OW: phoneme.KanaO,
	phoneme.OY: phoneme.KanaO,
	phoneme.UH: phoneme.KanaU,
	phoneme.UW: phoneme.KanaU,
}

// MapConsonant returns the katakana row for an English consonant.
func MapConsonant(c phoneme.Consonant) phoneme.KanaConsonant {
	return consonantMap[c]
}

// MapVowel returns the Japanese vowel for an English vowel.
func MapVowel(v phoneme.Vowel) phoneme.KanaVowel {
	return vowelMap[v]
}
