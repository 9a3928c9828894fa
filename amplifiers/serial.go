package amplifiers

import (
	"fmt"

	"github.com/minimav/intcode/intcode"
	"github.com/minimav/intcode/procs"
)

type chain struct {
	signal intcode.Word
}

// Serial runs one fresh machine per phase, feeding each [phase, signal] and
// passing its last output on. The first signal is 0.
func Serial(program []intcode.Word, phases []intcode.Word, opts ...intcode.Option) (intcode.Word, error) {
	if len(phases) == 0 {
		return 0, ErrNoPhases
	}
	stages := make(procs.Procs[*chain], 0, len(phases))
	for i, phase := range phases {
		stages = append(stages, serialStage(program, i, phase, opts))
	}
	c := new(chain)
	if err := procs.RunAll(c, procs.Proc[*chain](stages)); err != nil {
		return 0, err
	}
	return c.signal, nil
}

func serialStage(program []intcode.Word, index int, phase intcode.Word, opts []intcode.Option) procs.Proc[*chain] {
	return procs.Func[*chain](func(c *chain) (procs.Proc[*chain], error) {
		m := intcode.New(program, opts...)
		outputs, _, err := m.Collect(intcode.NewQueue(phase, c.signal))
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", index, err)
		}
		if len(outputs) == 0 {
			return nil, fmt.Errorf("stage %d: %w", index, ErrNoSignal)
		}
		c.signal = outputs[len(outputs)-1]
		return nil, nil
	})
}
