// Package diagnostics runs the self-test convention of diagnostic
// programs: every output but the last reports a failed check when
// nonzero, and the last output is the diagnostic code.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/minimav/intcode/intcode"
)

var (
	ErrDiagnosticFailed = errors.New("diagnostic failed")
	ErrInputExhausted   = errors.New("input exhausted")
	ErrNoOutput         = errors.New("no output")
)

type Report struct {
	Outputs []intcode.Word
	Code    intcode.Word
}

// Run feeds inputs to m and runs it to halt.
func Run(m *intcode.Machine, inputs ...intcode.Word) (report Report, err error) {
	in := intcode.NewQueue(inputs...)
	for sig, err := range m.Signals(in) {
		if err != nil {
			return report, err
		}
		switch sig.Kind {

		case intcode.SignalOutput:
			if n := len(report.Outputs); n > 0 && report.Outputs[n-1] != 0 {
				return report, fmt.Errorf("%w: output %d is %d, ip %d",
					ErrDiagnosticFailed, n-1, report.Outputs[n-1], m.IP())
			}
			report.Outputs = append(report.Outputs, sig.Value)

		case intcode.SignalNeedInput:
			return report, fmt.Errorf("%w: ip %d", ErrInputExhausted, m.IP())

		}
	}
	if len(report.Outputs) == 0 {
		return report, ErrNoOutput
	}
	report.Code = report.Outputs[len(report.Outputs)-1]
	return report, nil
}
