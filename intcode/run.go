package intcode

import (
	"fmt"
	"iter"
	"log/slog"
)

// Step executes a single instruction.
//
// A halted machine is left untouched and reports SignalHalted again. A
// faulted machine keeps returning the error that aborted it.
func (m *Machine) Step(in *Queue) (Signal, error) {
	switch m.state {
	case Halted:
		return Signal{Kind: SignalHalted}, nil
	case Faulted:
		return Signal{}, m.err
	}
	sig, err := m.exec(in)
	if err != nil {
		m.state = Faulted
		m.err = fmt.Errorf("ip %d: %w", m.ip, err)
		return Signal{}, m.err
	}
	return sig, nil
}

// Run executes until the machine produces an output, needs input it does
// not have, or halts.
func (m *Machine) Run(in *Queue) (Signal, error) {
	for {
		sig, err := m.Step(in)
		if err != nil {
			return sig, err
		}
		if sig.Kind != SignalNone {
			return sig, nil
		}
	}
}

// Signals resumes the machine after every output and stops after the first
// NeedInput, Halted or error.
func (m *Machine) Signals(in *Queue) iter.Seq2[Signal, error] {
	return func(yield func(Signal, error) bool) {
		for {
			sig, err := m.Run(in)
			if !yield(sig, err) {
				return
			}
			if err != nil || sig.Kind != SignalOutput {
				return
			}
		}
	}
}

// Collect gathers outputs until the machine needs input or halts.
func (m *Machine) Collect(in *Queue) (outputs []Word, last Signal, err error) {
	for sig, err := range m.Signals(in) {
		if err != nil {
			return outputs, sig, err
		}
		if sig.Kind == SignalOutput {
			outputs = append(outputs, sig.Value)
			continue
		}
		last = sig
	}
	return
}

func (m *Machine) exec(in *Queue) (Signal, error) {
	raw, err := m.mem.Read(m.ip)
	if err != nil {
		return Signal{}, err
	}
	inst, err := Decode(raw)
	if err != nil {
		return Signal{}, err
	}
	if err := m.checkModes(inst); err != nil {
		return Signal{}, err
	}
	if m.logger != nil {
		m.logger.LogAttrs(m.traceCtx, slog.LevelDebug, "step",
			slog.Int64("ip", m.ip),
			slog.Int64("raw", raw),
			slog.String("op", inst.Op.String()),
			slog.Int64("base", m.base),
		)
	}
	m.steps++
	next := m.ip + 1 + Word(inst.Op.Arity())

	switch inst.Op {

	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		a, err := m.read(inst, 1)
		if err != nil {
			return Signal{}, err
		}
		b, err := m.read(inst, 2)
		if err != nil {
			return Signal{}, err
		}
		dst, err := m.target(inst, 3)
		if err != nil {
			return Signal{}, err
		}
		var v Word
		switch inst.Op {
		case OpAdd:
			v = a + b
		case OpMultiply:
			v = a * b
		case OpLessThan:
			if a < b {
				v = 1
			}
		case OpEquals:
			if a == b {
				v = 1
			}
		}
		if err := m.mem.Write(dst, v); err != nil {
			return Signal{}, err
		}
		m.ip = next

	case OpInput:
		dst, err := m.target(inst, 1)
		if err != nil {
			return Signal{}, err
		}
		v, ok := in.Pop()
		if !ok {
			m.steps--
			m.state = AwaitingInput
			return Signal{Kind: SignalNeedInput}, nil
		}
		if err := m.mem.Write(dst, v); err != nil {
			return Signal{}, err
		}
		m.state = Running
		m.ip = next

	case OpOutput:
		v, err := m.read(inst, 1)
		if err != nil {
			return Signal{}, err
		}
		m.ip = next
		return Signal{Kind: SignalOutput, Value: v}, nil

	case OpJumpIfTrue, OpJumpIfFalse:
		cond, err := m.read(inst, 1)
		if err != nil {
			return Signal{}, err
		}
		dst, err := m.read(inst, 2)
		if err != nil {
			return Signal{}, err
		}
		if (cond != 0) == (inst.Op == OpJumpIfTrue) {
			if dst < 0 {
				return Signal{}, fmt.Errorf("%w: jump to %d", ErrInvalidAddress, dst)
			}
			next = dst
		}
		m.ip = next

	case OpAdjustBase:
		v, err := m.read(inst, 1)
		if err != nil {
			return Signal{}, err
		}
		m.base += v
		m.ip = next

	case OpHalt:
		m.state = Halted
		return Signal{Kind: SignalHalted}, nil

	default:
		return Signal{}, fmt.Errorf("%w: %d", ErrUnknownOpcode, raw)
	}

	return Signal{}, nil
}
