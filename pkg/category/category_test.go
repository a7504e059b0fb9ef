package category

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		label string
		want  Category
	}{
		{"Coffee", Coffee},
		{"coffee", Coffee},
		{"  DINING  ", Dining},
		{"personal care", PersonalCare},
		{"Pet Supplies", Custom("Pet Supplies")},
		{"", Miscellaneous},
		{"   ", Miscellaneous},
	}
	for _, tc := range cases {
		if got := Parse(tc.label); got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.label, got, tc.want)
		}
	}
}

func TestCategoryComparable(t *testing.T) {
	counts := map[Category]int{}
	counts[Parse("coffee")]++
	counts[Coffee]++
	if counts[Coffee] != 2 {
		t.Errorf("parsed and literal Coffee should collide as map keys, got %v", counts)
	}
	if Custom("Coffee") == Coffee {
		t.Error("custom label must not equal the built-in of the same name")
	}
}

func TestBuiltInStableOrder(t *testing.T) {
	a := BuiltIn()
	b := BuiltIn()
	if len(a) != 18 {
		t.Fatalf("expected 18 built-in categories, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("BuiltIn order not stable at %d", i)
		}
	}
	a[0] = Custom("mutated")
	if BuiltIn()[0] != Coffee {
		t.Error("BuiltIn must return a copy")
	}
	if a[len(a)-1].IsZero() {
		t.Error("built-ins must not be zero values")
	}
}
