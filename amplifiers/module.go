package amplifiers

import (
	"context"

	"github.com/minimav/intcode/configs"
	"github.com/minimav/intcode/images"
	"github.com/minimav/intcode/intcode"
	"github.com/minimav/intcode/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Searcher searches the configured phase set of wiring for program.
type Searcher func(ctx context.Context, program []intcode.Word, wiring Wiring) (Result, error)

func (Module) Searcher(
	settings configs.Settings,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Searcher {
	return func(ctx context.Context, program []intcode.Word, wiring Wiring) (Result, error) {
		ctx, _ = newSpan(ctx, "amplifier search")

		phases := settings.Phases
		if wiring == WiringFeedback {
			phases = settings.FeedbackPhases
		}
		logger.InfoContext(ctx, "search",
			"wiring", wiring,
			"phases", phases,
			"program", images.Digest(program),
			"parallelism", settings.Parallelism,
		)

		result, err := Search(
			ctx,
			program,
			phases,
			wiring,
			settings.Parallelism,
			intcode.RelativeMode(settings.RelativeMode),
		)
		if err != nil {
			return result, logs.WrapSpan(ctx, err)
		}

		logger.InfoContext(ctx, "best phases",
			"phases", result.Phases,
			"signal", result.Signal,
		)
		return result, nil
	}
}
