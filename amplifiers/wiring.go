package amplifiers

import (
	"fmt"

	"github.com/minimav/intcode/intcode"
)

type Wiring uint8

const (
	WiringSerial Wiring = iota + 1
	WiringFeedback
)

func (w Wiring) String() string {
	switch w {
	case WiringSerial:
		return "serial"
	case WiringFeedback:
		return "feedback"
	}
	return fmt.Sprintf("wiring(%d)", uint8(w))
}

// Run wires one amplifier per phase and returns the final signal.
func (w Wiring) Run(program []intcode.Word, phases []intcode.Word, opts ...intcode.Option) (intcode.Word, error) {
	switch w {
	case WiringSerial:
		return Serial(program, phases, opts...)
	case WiringFeedback:
		return Feedback(program, phases, opts...)
	}
	return 0, fmt.Errorf("unknown wiring: %v", w)
}
