package procs

// Proc is a cooperative unit of work. Run advances it and returns the proc
// to run next, or nil once it has finished.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// RunAll drives proc until it finishes or fails.
func RunAll[C any](ctx C, proc Proc[C]) error {
	for proc != nil {
		next, err := proc.Run(ctx)
		if err != nil {
			return err
		}
		proc = next
	}
	return nil
}
