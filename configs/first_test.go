package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{testFile2, testFile}, Schema)

	if n := First[int](loader, "noun_verb_limit"); n != 50 {
		t.Fatalf("got %v", n)
	}
	// later files fill what earlier ones leave out
	if n := First[int](loader, "parallelism"); n != 2 {
		t.Fatalf("got %v", n)
	}
	if relative := First[*bool](loader, "relative_mode"); relative == nil || *relative {
		t.Fatalf("got %v", relative)
	}
	if phases := First[[]int](loader, "feedback_phases"); phases != nil {
		t.Fatalf("got %v", phases)
	}
}

func TestFirstPanicsOnBadConfig(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, Schema)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[int](loader, "parallelism")
}
