package intcode

// Queue is a FIFO of input words owned by the caller.
type Queue struct {
	values []Word
}

func NewQueue(values ...Word) *Queue {
	q := new(Queue)
	q.Push(values...)
	return q
}

func (q *Queue) Push(values ...Word) {
	q.values = append(q.values, values...)
}

func (q *Queue) Pop() (Word, bool) {
	if q == nil || len(q.values) == 0 {
		return 0, false
	}
	v := q.values[0]
	q.values = q.values[1:]
	return v, true
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.values)
}

// Drain removes and returns every queued value.
func (q *Queue) Drain() []Word {
	if q == nil {
		return nil
	}
	values := q.values
	q.values = nil
	return values
}
