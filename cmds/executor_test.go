package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %d", a)
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %d", a)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a", "x",
	})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatalf("got %d", bar)
	}
	if baz != 42 {
		t.Fatalf("got %d", baz)
	}

	// subs are only visible after their parent
	if err := executor.Execute([]string{"bar"}); err == nil {
		t.Fatal("should error")
	}
}

func TestSliceArgument(t *testing.T) {
	executor := NewExecutor()
	var phases []int64
	executor.Define("-phases", Func(func(v []int64) {
		phases = v
	}))
	if err := executor.Execute([]string{"-phases", "9, 8,7,6,5"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{9, 8, 7, 6, 5}, phases); diff != "" {
		t.Fatal(diff)
	}
	if err := executor.Execute([]string{"-phases", "1,x"}); err == nil {
		t.Fatal("should error")
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var got *int
	executor.Define("limit", Func(func(n *int) {
		got = n
	}))
	if err := executor.Execute([]string{"limit", "7"}); err != nil {
		t.Fatal(err)
	}
	if *got != 7 {
		t.Fatalf("got %d", *got)
	}
	if err := executor.Execute([]string{"limit"}); err != nil {
		t.Fatal(err)
	}
	if *got != 0 {
		t.Fatalf("got %d", *got)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	boom := errors.New("boom")
	executor.Define("fail", Func(func() error {
		return boom
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func(n int) {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()
	out := buf.String()
	for _, want := range []string{
		"foo\tFOO",
		"  bar <int>\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
		"print this usage",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got\n%s", out)
	}
}
