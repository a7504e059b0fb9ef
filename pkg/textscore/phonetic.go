package textscore

import "strings"

// Phonetic matching runs two cheap encodings side by side: a soundex-style
// consonant class code and an ordered spelling normalization. Neither is a
// faithful Double Metaphone; they are heuristics tuned for short brand and
// product names, not a reference phonetic algorithm.

const consonantCodeLength = 4

// Agreement levels returned by PhoneticSimilarity.
const (
	phoneticBothAgree = 0.9
	phoneticOneAgrees = 0.7
)

// consonantClass groups acoustically similar consonants. Vowels and the
// near-silent h/w/y map to 0 and are dropped from the code.
func consonantClass(r byte) byte {
	switch r {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	}
	return 0
}

// ConsonantCode builds a fixed-length code: first letter kept, following
// letters mapped to their consonant class with repeats collapsed, padded
// with zeros or truncated to four characters.
func ConsonantCode(word string) string {
	word = strings.ToLower(word)
	var b strings.Builder
	var prev byte
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte(ch)
			prev = consonantClass(ch)
			continue
		}
		class := consonantClass(ch)
		if class != 0 && class != prev {
			b.WriteByte(class)
		}
		prev = class
		if b.Len() >= consonantCodeLength {
			break
		}
	}
	code := b.String()
	if code == "" {
		return ""
	}
	for len(code) < consonantCodeLength {
		code += "0"
	}
	return code[:consonantCodeLength]
}

// spellingRules are applied in order; earlier digraph rules must run before
// the bare single-letter ones they overlap with.
var spellingRules = []struct{ from, to string }{
	{"ph", "f"},
	{"gh", "f"},
	{"ck", "k"},
	{"qu", "kw"},
	{"x", "ks"},
	{"z", "s"},
	{"ce", "se"},
	{"ci", "si"},
	{"c", "k"},
}

// SpellingNormalize rewrites common English spelling patterns to a single
// canonical form, so "phone"/"fone" or "quick"/"kwik" collapse together.
func SpellingNormalize(word string) string {
	word = strings.ToLower(word)
	for _, rule := range spellingRules {
		word = strings.ReplaceAll(word, rule.from, rule.to)
	}
	return word
}

// PhoneticSimilarity compares two words under both encodings. It returns
// 0.9 when both encodings agree, 0.7 when exactly one does, and 0 when the
// words do not sound alike under either.
func PhoneticSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	codeMatch := ConsonantCode(a) == ConsonantCode(b)
	spellMatch := SpellingNormalize(a) == SpellingNormalize(b)
	switch {
	case codeMatch && spellMatch:
		return phoneticBothAgree
	case codeMatch || spellMatch:
		return phoneticOneAgrees
	}
	return 0
}
