package diagnostics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/minimav/intcode/intcode"
)

func TestRun(t *testing.T) {
	m := intcode.New([]intcode.Word{104, 0, 104, 0, 104, 42, 99})
	report, err := Run(m)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Report{Outputs: []intcode.Word{0, 0, 42}, Code: 42}, report); diff != "" {
		t.Fatal(diff)
	}
	if m.State() != intcode.Halted {
		t.Fatalf("got %v", m.State())
	}
}

func TestRunEcho(t *testing.T) {
	report, err := Run(intcode.New([]intcode.Word{3, 0, 4, 0, 99}), 7)
	if err != nil {
		t.Fatal(err)
	}
	if report.Code != 7 {
		t.Fatalf("got %d", report.Code)
	}
}

func TestRunCompareTo8(t *testing.T) {
	program := []intcode.Word{
		3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
		1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
		999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99,
	}
	for input, expected := range map[intcode.Word]intcode.Word{
		7: 999,
		8: 1000,
		9: 1001,
	} {
		report, err := Run(intcode.New(program), input)
		if err != nil {
			t.Fatal(err)
		}
		if report.Code != expected {
			t.Fatalf("%d: got %d", input, report.Code)
		}
	}
}

func TestFailed(t *testing.T) {
	report, err := Run(intcode.New([]intcode.Word{104, 0, 104, 3, 104, 42, 99}))
	if !errors.Is(err, ErrDiagnosticFailed) {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff([]intcode.Word{0, 3}, report.Outputs); diff != "" {
		t.Fatal(diff)
	}
}

func TestInputExhausted(t *testing.T) {
	m := intcode.New([]intcode.Word{3, 0, 3, 0, 4, 0, 99})
	if _, err := Run(m, 1); !errors.Is(err, ErrInputExhausted) {
		t.Fatalf("got %v", err)
	}
	if m.State() != intcode.AwaitingInput {
		t.Fatalf("got %v", m.State())
	}
}

func TestNoOutput(t *testing.T) {
	if _, err := Run(intcode.New([]intcode.Word{99})); !errors.Is(err, ErrNoOutput) {
		t.Fatalf("got %v", err)
	}
}

func TestFault(t *testing.T) {
	_, err := Run(intcode.New([]intcode.Word{104, 0, 12345}))
	if !errors.Is(err, intcode.ErrUnknownOpcode) {
		t.Fatalf("got %v", err)
	}
}
