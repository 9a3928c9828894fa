package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/minimav/intcode/intcode"
	"github.com/minimav/intcode/logs"
	"github.com/minimav/intcode/modes"
	"github.com/reusee/dscope"
)

func TestDefaultSettings(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		loader Loader,
		settings Settings,
	) {
		paths, err := loader.Paths()
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 0 {
			t.Fatalf("got %v", paths)
		}
		if diff := cmp.Diff(DefaultSettings(), settings); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestSettingsFromFiles(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() Loader {
			return NewLoader([]string{testFile2, testFile}, Schema)
		},
	).Call(func(
		settings Settings,
	) {
		expected := DefaultSettings()
		expected.Phases = []intcode.Word{5, 6}
		expected.Parallelism = 2
		expected.RelativeMode = false
		expected.NounVerbLimit = 50
		if diff := cmp.Diff(expected, settings); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".intcode.cue"), []byte("parallelism: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	paths := discover([]string{dir, filepath.Join(dir, "missing")})
	if diff := cmp.Diff([]string{filepath.Join(dir, ".intcode.cue")}, paths); diff != "" {
		t.Fatal(diff)
	}
	if n := First[int](NewLoader(paths, Schema), "parallelism"); n != 3 {
		t.Fatalf("got %d", n)
	}
}
