package procs

// RoundRobin advances every live proc once per Run, in order, and drops the
// ones that finish.
type RoundRobin[C any] []Proc[C]

var _ Proc[any] = RoundRobin[any]{}

func (r RoundRobin[C]) Run(ctx C) (Proc[C], error) {
	live := r[:0]
	for _, proc := range r {
		next, err := proc.Run(ctx)
		if err != nil {
			return nil, err
		}
		if next != nil {
			live = append(live, next)
		}
	}
	if len(live) == 0 {
		return nil, nil
	}
	return live, nil
}
