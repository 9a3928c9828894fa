package intcode

import "fmt"

type SignalKind uint8

const (
	// SignalNone is only returned by Step, for instructions that do not suspend.
	SignalNone SignalKind = iota
	SignalOutput
	SignalNeedInput
	SignalHalted
)

func (k SignalKind) String() string {
	switch k {
	case SignalNone:
		return "none"
	case SignalOutput:
		return "output"
	case SignalNeedInput:
		return "need input"
	case SignalHalted:
		return "halted"
	}
	return fmt.Sprintf("signal(%d)", uint8(k))
}

type Signal struct {
	Kind  SignalKind
	Value Word
}

func (s Signal) String() string {
	if s.Kind == SignalOutput {
		return fmt.Sprintf("output %d", s.Value)
	}
	return s.Kind.String()
}

type State uint8

const (
	Running State = iota
	AwaitingInput
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting input"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}
