package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/minimav/intcode/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark REPL on stdin with globals predeclared.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStarlarkDict(globals))
	}
}

// Eval runs a starlark script with globals predeclared and returns the
// globals it defines. print output goes to the logger.
type Eval func(ctx context.Context, name string, src string, globals map[string]any) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, name string, src string, globals map[string]any) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg,
					"script", name,
				)
			},
		}
		return starlark.ExecFileOptions(fileOptions, thread, name, src, toStarlarkDict(globals))
	}
}
