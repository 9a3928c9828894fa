package intcode

import "fmt"

type Opcode Word

const (
	OpAdd         Opcode = 1
	OpMultiply    Opcode = 2
	OpInput       Opcode = 3
	OpOutput      Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpAdjustBase  Opcode = 9
	OpHalt        Opcode = 99
)

var opcodeNames = map[Opcode]string{
	OpAdd:         "add",
	OpMultiply:    "mul",
	OpInput:       "in",
	OpOutput:      "out",
	OpJumpIfTrue:  "jnz",
	OpJumpIfFalse: "jz",
	OpLessThan:    "lt",
	OpEquals:      "eq",
	OpAdjustBase:  "arb",
	OpHalt:        "halt",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", Word(o))
}

// Arity is the number of parameter words following the instruction word.
func (o Opcode) Arity() int {
	switch o {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput, OpAdjustBase:
		return 1
	}
	return 0
}

// writes reports the 1-based index of the destination parameter, or 0.
func (o Opcode) writes() int {
	switch o {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 3
	case OpInput:
		return 1
	}
	return 0
}

func (o Opcode) valid() bool {
	_, ok := opcodeNames[o]
	return ok
}

type Mode uint8

const (
	Positional Mode = iota
	Immediate
	Relative
)

func (m Mode) String() string {
	switch m {
	case Positional:
		return "positional"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

type Instruction struct {
	Op Opcode
	// Modes holds the explicitly encoded modes, parameter 1 first.
	Modes []Mode
}

// Mode returns the addressing mode of the 1-based parameter k.
// Parameters without a mode digit are positional.
func (i Instruction) Mode(k int) Mode {
	if k < 1 || k > len(i.Modes) {
		return Positional
	}
	return i.Modes[k-1]
}

func Decode(raw Word) (Instruction, error) {
	if raw < 0 {
		return Instruction{}, fmt.Errorf("%w: %d", ErrUnknownOpcode, raw)
	}
	inst := Instruction{
		Op: Opcode(raw % 100),
	}
	if !inst.Op.valid() {
		return Instruction{}, fmt.Errorf("%w: %d", ErrUnknownOpcode, raw)
	}
	for digits := raw / 100; digits > 0; digits /= 10 {
		digit := digits % 10
		if digit > Word(Relative) {
			return Instruction{}, fmt.Errorf("%w: digit %d in %d", ErrInvalidParameterMode, digit, raw)
		}
		inst.Modes = append(inst.Modes, Mode(digit))
	}
	return inst, nil
}
