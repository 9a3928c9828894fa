package intcode

import (
	"context"
	"log/slog"
)

type Machine struct {
	mem      *Memory
	ip       Word
	base     Word
	state    State
	err      error
	steps    int64
	relative bool
	logger   *slog.Logger
	traceCtx context.Context
}

type Option func(*Machine)

// RelativeMode enables or disables relative addressing. It is enabled by
// default; when disabled, relative mode digits fault the machine.
func RelativeMode(enabled bool) Option {
	return func(m *Machine) {
		m.relative = enabled
	}
}

// Trace logs every executed instruction at debug level, with ctx passed to
// the handler so context attributes like spans are kept.
func Trace(ctx context.Context, logger *slog.Logger) Option {
	return func(m *Machine) {
		if ctx == nil {
			ctx = context.Background()
		}
		m.logger = logger
		m.traceCtx = ctx
	}
}

// New creates a machine whose memory is a copy of program.
func New(program []Word, opts ...Option) *Machine {
	m := &Machine{
		mem:      NewMemory(program),
		relative: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) IP() Word {
	return m.ip
}

func (m *Machine) RelativeBase() Word {
	return m.base
}

func (m *Machine) State() State {
	return m.state
}

// Err returns the fault that aborted the machine, if any.
func (m *Machine) Err() error {
	return m.err
}

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() int64 {
	return m.steps
}

func (m *Machine) Peek(addr Word) (Word, error) {
	return m.mem.Read(addr)
}

func (m *Machine) Poke(addr Word, value Word) error {
	return m.mem.Write(addr, value)
}

// Memory returns a copy of the dense memory image.
func (m *Machine) Memory() []Word {
	return m.mem.Image()
}

func (m *Machine) Clone() *Machine {
	ret := *m
	ret.mem = m.mem.Clone()
	return &ret
}
