package amplifiers

import (
	"fmt"

	"github.com/minimav/intcode/intcode"
	"github.com/minimav/intcode/procs"
)

type loop struct {
	progressed bool
	done       bool
	signal     intcode.Word
	hasSignal  bool
}

type stage struct {
	index   int
	last    bool
	machine *intcode.Machine
	in      *intcode.Queue
	out     *intcode.Queue
}

var _ procs.Proc[*loop] = new(stage)

// Run resumes the machine until it needs input or halts, forwarding its
// outputs to the next stage.
func (s *stage) Run(l *loop) (procs.Proc[*loop], error) {
	steps := s.machine.Steps()
	outputs, sig, err := s.machine.Collect(s.in)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", s.index, err)
	}
	if len(outputs) > 0 || s.machine.Steps() != steps {
		l.progressed = true
	}
	s.out.Push(outputs...)
	if s.last && len(outputs) > 0 {
		l.signal = outputs[len(outputs)-1]
		l.hasSignal = true
	}
	if sig.Kind == intcode.SignalHalted {
		if s.last {
			l.done = true
		}
		return nil, nil
	}
	return s, nil
}

// Feedback connects one machine per phase in a ring, the last feeding the
// first, and runs them round robin until the last one halts. The first
// machine also receives the initial signal 0.
func Feedback(program []intcode.Word, phases []intcode.Word, opts ...intcode.Option) (intcode.Word, error) {
	if len(phases) == 0 {
		return 0, ErrNoPhases
	}
	queues := make([]*intcode.Queue, len(phases))
	for i, phase := range phases {
		queues[i] = intcode.NewQueue(phase)
	}
	queues[0].Push(0)

	stages := make(procs.RoundRobin[*loop], 0, len(phases))
	for i := range phases {
		stages = append(stages, &stage{
			index:   i,
			last:    i == len(phases)-1,
			machine: intcode.New(program, opts...),
			in:      queues[i],
			out:     queues[(i+1)%len(phases)],
		})
	}

	l := new(loop)
	if err := procs.RunAll(l, rounds(stages)); err != nil {
		return 0, err
	}
	if !l.hasSignal {
		return 0, fmt.Errorf("stage %d: %w", len(phases)-1, ErrNoSignal)
	}
	return l.signal, nil
}

func rounds(stages procs.Proc[*loop]) procs.Proc[*loop] {
	return procs.Func[*loop](func(l *loop) (procs.Proc[*loop], error) {
		l.progressed = false
		next, err := stages.Run(l)
		if err != nil {
			return nil, err
		}
		if l.done || next == nil {
			return nil, nil
		}
		if !l.progressed {
			return nil, ErrDeadlock
		}
		return rounds(next), nil
	})
}
