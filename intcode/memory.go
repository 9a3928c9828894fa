package intcode

import (
	"fmt"
	"maps"
	"slices"
)

type Word = int64

// addresses at or above denseLimit live in the sparse map
const denseLimit = 1 << 20

type Memory struct {
	dense  []Word
	length int
	sparse map[Word]Word
}

func NewMemory(program []Word) *Memory {
	dense := make([]Word, max(len(program), 8))
	copy(dense, program)
	return &Memory{
		dense:  dense,
		length: len(program),
	}
}

func (m *Memory) Read(addr Word) (Word, error) {
	if addr < 0 {
		return 0, fmt.Errorf("%w: read %d", ErrInvalidAddress, addr)
	}
	if addr < denseLimit {
		if addr < Word(len(m.dense)) {
			return m.dense[addr], nil
		}
		return 0, nil
	}
	return m.sparse[addr], nil
}

func (m *Memory) Write(addr Word, value Word) error {
	if addr < 0 {
		return fmt.Errorf("%w: write %d", ErrInvalidAddress, addr)
	}
	if addr >= denseLimit {
		if m.sparse == nil {
			m.sparse = make(map[Word]Word)
		}
		m.sparse[addr] = value
		return nil
	}
	if addr >= Word(len(m.dense)) {
		m.grow(int(addr) + 1)
	}
	m.dense[addr] = value
	if int(addr) >= m.length {
		m.length = int(addr) + 1
	}
	return nil
}

func (m *Memory) grow(size int) {
	newCap := len(m.dense) * 2
	if newCap == 0 {
		newCap = 8
	}
	for newCap < size {
		newCap *= 2
	}
	newCap = min(newCap, denseLimit)
	dense := make([]Word, newCap)
	copy(dense, m.dense)
	m.dense = dense
}

// Len is one past the highest dense address loaded or written.
func (m *Memory) Len() int {
	return m.length
}

func (m *Memory) Image() []Word {
	return slices.Clone(m.dense[:m.length])
}

// Sparse returns the addresses beyond the dense region, in ascending order.
func (m *Memory) Sparse() []Word {
	return slices.Sorted(maps.Keys(m.sparse))
}

func (m *Memory) Clone() *Memory {
	return &Memory{
		dense:  slices.Clone(m.dense),
		length: m.length,
		sparse: maps.Clone(m.sparse),
	}
}
