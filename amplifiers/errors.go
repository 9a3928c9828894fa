package amplifiers

import "errors"

var (
	// ErrDeadlock is returned when a full feedback round neither executes
	// an instruction nor halts the last stage.
	ErrDeadlock = errors.New("feedback loop deadlocked")
	ErrNoSignal = errors.New("stage produced no signal")
	ErrNoPhases = errors.New("no phase settings")
)
