package cmds

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVar(t *testing.T) {
	file := Var[string]("TestVar-file")
	limit := Var[int]("TestVar-limit")
	GlobalExecutor.MustExecute([]string{
		"TestVar-file", "day9.txt",
		"TestVar-limit", "100",
	})
	if *file != "day9.txt" {
		t.Fatalf("got %s", *file)
	}
	if *limit != 100 {
		t.Fatalf("got %d", *limit)
	}

	GlobalExecutor.MustExecute([]string{
		"TestVar-limit.",
	})
	if *limit != 0 {
		t.Fatalf("got %d", *limit)
	}
}

func TestSliceVar(t *testing.T) {
	phases := Var[[]int64]("TestSliceVar")
	GlobalExecutor.MustExecute([]string{
		"TestSliceVar", "5,6,7,8,9",
	})
	if diff := cmp.Diff([]int64{5, 6, 7, 8, 9}, *phases); diff != "" {
		t.Fatal(diff)
	}
}

func TestSwitch(t *testing.T) {
	tap := Switch("TestSwitch")
	if err := GlobalExecutor.Execute([]string{
		"TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if !*tap {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *tap {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	inputs := Collect[int64]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "1",
		"TestCollect", "-2",
	})
	if diff := cmp.Diff([]int64{1, -2}, *inputs); diff != "" {
		t.Fatal(diff)
	}
}

func TestHelpersUsage(t *testing.T) {
	Var[int]("TestHelpersUsage-limit")
	Switch("TestHelpersUsage-tap")
	buf := new(bytes.Buffer)
	output := GlobalExecutor.Output
	GlobalExecutor.Output = buf
	defer func() {
		GlobalExecutor.Output = output
	}()
	GlobalExecutor.PrintUsage()
	usage := buf.String()
	for _, want := range []string{
		"TestHelpersUsage-limit <int>\tset TestHelpersUsage-limit",
		"TestHelpersUsage-tap\tenable TestHelpersUsage-tap",
	} {
		if !strings.Contains(usage, want) {
			t.Fatalf("missing %q in\n%s", want, usage)
		}
	}
	for _, hidden := range []string{
		"TestHelpersUsage-limit.",
		"!TestHelpersUsage-tap",
	} {
		if strings.Contains(usage, hidden) {
			t.Fatalf("%q should be hidden", hidden)
		}
	}
	// hidden words still execute
	GlobalExecutor.MustExecute([]string{"!TestHelpersUsage-tap"})
}

func TestTypedVar(t *testing.T) {
	type Word int64
	v := Var[Word]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "1125899906842624",
	})
	if *v != 1125899906842624 {
		t.Fatalf("got %d", *v)
	}
}
