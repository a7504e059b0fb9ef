package textscore

import "testing"

func TestConsonantCode(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"starbucks", "s361"},
		{"phone", "p500"},
		{"running", "r552"},
		{"runing", "r552"},
		{"a", "a000"},
		{"", ""},
		{"1234", ""},
	}
	for _, tc := range cases {
		if got := ConsonantCode(tc.word); got != tc.want {
			t.Errorf("ConsonantCode(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestSpellingNormalize(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"phone", "fone"},
		{"quick", "kwik"},
		{"maximum", "maksimum"},
		{"zebra", "sebra"},
		{"center", "senter"},
		{"Coffee", "koffee"},
	}
	for _, tc := range cases {
		if got := SpellingNormalize(tc.word); got != tc.want {
			t.Errorf("SpellingNormalize(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestPhoneticSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"both encodings agree", "maximum", "maksimum", 0.9},
		{"spelling only", "phone", "fone", 0.7},
		{"code only", "running", "runing", 0.7},
		{"unrelated words", "coffee", "taxi", 0},
		{"empty input", "", "coffee", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PhoneticSimilarity(tc.a, tc.b)
			if !almost(got, tc.want) {
				t.Errorf("PhoneticSimilarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Symmetry holds for both encodings.
			if rev := PhoneticSimilarity(tc.b, tc.a); !almost(rev, got) {
				t.Errorf("PhoneticSimilarity not symmetric: %v vs %v", got, rev)
			}
		})
	}
}
