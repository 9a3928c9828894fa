package amplifiers

import (
	"iter"
	"slices"

	"github.com/minimav/intcode/intcode"
)

// Permutations yields every distinct ordering of values in lexicographic
// order. Each yielded slice is fresh.
func Permutations(values []intcode.Word) iter.Seq[[]intcode.Word] {
	return func(yield func([]intcode.Word) bool) {
		perm := slices.Clone(values)
		slices.Sort(perm)
		for {
			if !yield(slices.Clone(perm)) {
				return
			}
			if !nextPermutation(perm) {
				return
			}
		}
	}
}

func nextPermutation(s []intcode.Word) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])
	return true
}
