package intcode

import "fmt"

func (m *Machine) checkModes(inst Instruction) error {
	arity := inst.Op.Arity()
	for k := 1; k <= arity; k++ {
		mode := inst.Mode(k)
		if mode == Relative && !m.relative {
			return fmt.Errorf("%w: relative mode for parameter %d", ErrInvalidParameterMode, k)
		}
		if mode == Immediate && k == inst.Op.writes() {
			return fmt.Errorf("%w: immediate write target for %s", ErrInvalidParameterMode, inst.Op)
		}
	}
	return nil
}

// read resolves the 1-based parameter k as a source value.
func (m *Machine) read(inst Instruction, k int) (Word, error) {
	raw, err := m.mem.Read(m.ip + Word(k))
	if err != nil {
		return 0, err
	}
	switch mode := inst.Mode(k); mode {
	case Positional:
		return m.mem.Read(raw)
	case Immediate:
		return raw, nil
	case Relative:
		return m.mem.Read(m.base + raw)
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameterMode, mode)
	}
}

// target resolves the 1-based parameter k as a destination address.
func (m *Machine) target(inst Instruction, k int) (Word, error) {
	raw, err := m.mem.Read(m.ip + Word(k))
	if err != nil {
		return 0, err
	}
	var addr Word
	switch mode := inst.Mode(k); mode {
	case Positional:
		addr = raw
	case Relative:
		addr = m.base + raw
	default:
		return 0, fmt.Errorf("%w: %s write target", ErrInvalidParameterMode, mode)
	}
	if addr < 0 {
		return 0, fmt.Errorf("%w: write target %d", ErrInvalidAddress, addr)
	}
	return addr, nil
}
