package nounverb

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

// Finder searches with the configured limit and returns Answer of the pair.
type Finder func(ctx context.Context, program []intcode.Word, target intcode.Word) (intcode.Word, error)

func (Module) Finder(
	settings configs.Settings,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Finder {
	return func(ctx context.Context, program []intcode.Word, target intcode.Word) (intcode.Word, error) {
		ctx, _ = newSpan(ctx, "noun verb search")
		logger.InfoContext(ctx, "noun verb search",
			"program", images.Digest(program),
			"target", target,
			"limit", settings.NounVerbLimit,
		)
		noun, verb, err := Find(
			ctx,
			program,
			target,
			settings.NounVerbLimit,
			intcode.RelativeMode(settings.RelativeMode),
		)
		if err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "found",
			"noun", noun,
			"verb", verb,
		)
		return Answer(noun, verb), nil
	}
}
