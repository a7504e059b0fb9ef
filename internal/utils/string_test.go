package utils

import "testing"

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.3, 1},
	}
	for _, tc := range cases {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsOnlyNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12345", true},
		{"12a45", false},
		{"", false},
		{"4.50", false},
	}
	for _, tc := range cases {
		if got := IsOnlyNumbers(tc.in); got != tc.want {
			t.Errorf("IsOnlyNumbers(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsRepetitive(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"aaa", true},
		{"aa", false},
		{"aab", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsRepetitive(tc.in); got != tc.want {
			t.Errorf("IsRepetitive(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
