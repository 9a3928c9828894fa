package amplifiers

import (
	"context"
	"fmt"
	"sync"

	"github.com/minimav/intcode/intcode"
	"github.com/minimav/intcode/syncs"
)

type Result struct {
	Phases []intcode.Word
	Signal intcode.Word
}

// Search evaluates every permutation of phases with at most parallelism
// evaluations in flight and returns the one with the highest signal. Ties
// go to the lexicographically first permutation. Any stage error aborts
// the search.
func Search(
	ctx context.Context,
	program []intcode.Word,
	phases []intcode.Word,
	wiring Wiring,
	parallelism int,
	opts ...intcode.Option,
) (Result, error) {
	if len(phases) == 0 {
		return Result{}, ErrNoPhases
	}

	var perms [][]intcode.Word
	for perm := range Permutations(phases) {
		perms = append(perms, perm)
	}
	signals := make([]intcode.Word, len(perms))

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	sem := syncs.NewSemaphore(parallelism)
	var wg sync.WaitGroup
	for i, perm := range perms {
		if err := sem.AcquireContext(ctx); err != nil {
			break
		}
		wg.Go(func() {
			defer sem.Release()
			signal, err := wiring.Run(program, perm, opts...)
			if err != nil {
				cancel(fmt.Errorf("%v %v: %w", wiring, perm, err))
				return
			}
			signals[i] = signal
		})
	}
	wg.Wait()
	if err := context.Cause(ctx); err != nil {
		return Result{}, err
	}

	best := 0
	for i := 1; i < len(perms); i++ {
		if signals[i] > signals[best] {
			best = i
		}
	}
	return Result{
		Phases: perms[best],
		Signal: signals[best],
	}, nil
}
