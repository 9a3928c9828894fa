package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" on ":  true,
		"1":     true,
		"false": false,
		"no":    false,
		"0":     false,
		"":      false,
		"what":  false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero("", "a"); v != "a" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[int](); v != 0 {
		t.Fatalf("got %v", v)
	}
}
