package configs

import (
	"runtime"
	"slices"

	"github.com/minimav/intcode/cmds"
	"github.com/minimav/intcode/intcode"
	"github.com/minimav/intcode/vars"
)

// Settings drive the searches and machines built by the command line.
type Settings struct {
	Phases         []intcode.Word
	FeedbackPhases []intcode.Word
	Parallelism    int
	RelativeMode   bool
	NounVerbLimit  int
}

var (
	phasesFlag     = cmds.Var[[]intcode.Word]("-phases")
	parallelFlag   = cmds.Var[int]("-parallel")
	noRelativeFlag = cmds.Switch("-no-relative")
	limitFlag      = cmds.Var[int]("-noun-verb-limit")
)

func DefaultSettings() Settings {
	return Settings{
		Phases:         []intcode.Word{0, 1, 2, 3, 4},
		FeedbackPhases: []intcode.Word{5, 6, 7, 8, 9},
		Parallelism:    runtime.NumCPU(),
		RelativeMode:   true,
		NounVerbLimit:  100,
	}
}

func (Module) Settings(
	loader Loader,
) Settings {
	settings := DefaultSettings()

	if phases := First[[]intcode.Word](loader, "phases"); len(phases) > 0 {
		settings.Phases = phases
	}
	if phases := First[[]intcode.Word](loader, "feedback_phases"); len(phases) > 0 {
		settings.FeedbackPhases = phases
	}
	// one phase set on the command line serves both wirings
	if len(*phasesFlag) > 0 {
		settings.Phases = slices.Clone(*phasesFlag)
		settings.FeedbackPhases = slices.Clone(*phasesFlag)
	}

	settings.Parallelism = vars.FirstNonZero(
		*parallelFlag,
		First[int](loader, "parallelism"),
		settings.Parallelism,
	)

	if relative := First[*bool](loader, "relative_mode"); relative != nil {
		settings.RelativeMode = *relative
	}
	if *noRelativeFlag {
		settings.RelativeMode = false
	}

	settings.NounVerbLimit = vars.FirstNonZero(
		*limitFlag,
		First[int](loader, "noun_verb_limit"),
		settings.NounVerbLimit,
	)

	return settings
}
