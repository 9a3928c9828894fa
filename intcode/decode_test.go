package intcode

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		raw      Word
		expected Instruction
	}{
		{99, Instruction{Op: OpHalt}},
		{1, Instruction{Op: OpAdd}},
		{101, Instruction{Op: OpAdd, Modes: []Mode{Immediate}}},
		{1002, Instruction{Op: OpMultiply, Modes: []Mode{Positional, Immediate}}},
		{1003, Instruction{Op: OpInput, Modes: []Mode{Positional, Immediate}}},
		{10104, Instruction{Op: OpOutput, Modes: []Mode{Immediate, Positional, Immediate}}},
		{204, Instruction{Op: OpOutput, Modes: []Mode{Relative}}},
		{21108, Instruction{Op: OpEquals, Modes: []Mode{Immediate, Immediate, Relative}}},
	}
	for _, c := range cases {
		inst, err := Decode(c.raw)
		if err != nil {
			t.Fatalf("%d: %v", c.raw, err)
		}
		if diff := cmp.Diff(c.expected, inst); diff != "" {
			t.Fatalf("%d: %s", c.raw, diff)
		}
	}
}

func TestDecodeDefaultMode(t *testing.T) {
	inst, err := Decode(1002)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Op != OpMultiply {
		t.Fatalf("got %v", inst.Op)
	}
	if m := inst.Mode(1); m != Positional {
		t.Fatalf("got %v", m)
	}
	if m := inst.Mode(2); m != Immediate {
		t.Fatalf("got %v", m)
	}
	if m := inst.Mode(3); m != Positional {
		t.Fatalf("got %v", m)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		raw Word
		err error
	}{
		{0, ErrUnknownOpcode},
		{42, ErrUnknownOpcode},
		{98, ErrUnknownOpcode},
		{-1, ErrUnknownOpcode},
		{302, ErrInvalidParameterMode},
		{10901, ErrInvalidParameterMode},
	}
	for _, c := range cases {
		_, err := Decode(c.raw)
		if !errors.Is(err, c.err) {
			t.Fatalf("%d: got %v", c.raw, err)
		}
	}
}

func TestOpcodeArity(t *testing.T) {
	for op, arity := range map[Opcode]int{
		OpAdd:         3,
		OpMultiply:    3,
		OpInput:       1,
		OpOutput:      1,
		OpJumpIfTrue:  2,
		OpJumpIfFalse: 2,
		OpLessThan:    3,
		OpEquals:      3,
		OpAdjustBase:  1,
		OpHalt:        0,
	} {
		if got := op.Arity(); got != arity {
			t.Fatalf("%s: got %d", op, got)
		}
	}
}
