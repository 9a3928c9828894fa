package procs

// Procs runs its procs one after another; each Run advances the first one.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	proc, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if proc == nil {
		if len(p) == 1 {
			return nil, nil
		}
		return p[1:], nil
	}
	p[0] = proc
	return p, nil
}
