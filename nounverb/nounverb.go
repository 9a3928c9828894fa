// Package nounverb searches the two input words of a program, stored at
// addresses 1 and 2, for a pair that leaves a target in address 0.
package nounverb

import (
	"context"
	"errors"
	"fmt"

	"github.com/minimav/intcode/intcode"
)

var (
	ErrNotFound  = errors.New("noun and verb not found")
	ErrNotHalted = errors.New("program did not halt")
)

// Run runs program with noun and verb patched in and returns address 0.
func Run(program []intcode.Word, noun, verb intcode.Word, opts ...intcode.Option) (intcode.Word, error) {
	m := intcode.New(program, opts...)
	if err := m.Poke(1, noun); err != nil {
		return 0, err
	}
	if err := m.Poke(2, verb); err != nil {
		return 0, err
	}
	// outputs are ignored, only address 0 matters
	_, last, err := m.Collect(nil)
	if err != nil {
		return 0, err
	}
	if last.Kind != intcode.SignalHalted {
		return 0, fmt.Errorf("%w: %v at ip %d", ErrNotHalted, last, m.IP())
	}
	return m.Peek(0)
}

// Find scans nouns then verbs in [0, limit). Pairs that fault or do not
// halt are skipped.
func Find(ctx context.Context, program []intcode.Word, target intcode.Word, limit int, opts ...intcode.Option) (noun, verb intcode.Word, err error) {
	for n := range intcode.Word(limit) {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		for v := range intcode.Word(limit) {
			got, err := Run(program, n, v, opts...)
			if err != nil {
				continue
			}
			if got == target {
				return n, v, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: target %d, limit %d", ErrNotFound, target, limit)
}

func Answer(noun, verb intcode.Word) intcode.Word {
	return 100*noun + verb
}
