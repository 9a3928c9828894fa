package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minimav/intcode/amplifiers"
	"github.com/minimav/intcode/cmds"
	"github.com/minimav/intcode/configs"
	"github.com/minimav/intcode/debugs"
	"github.com/minimav/intcode/images"
	"github.com/minimav/intcode/intcode"
	"github.com/minimav/intcode/logs"
	"github.com/minimav/intcode/modes"
	"github.com/minimav/intcode/nounverb"
	"github.com/reusee/dscope"
)

var (
	filePath   = cmds.Var[string]("-file")
	inputs     = cmds.Collect[intcode.Word]("-input")
	tapFlag    = cmds.Switch("-tap")
	scriptPath = cmds.Var[string]("-script")
	traceFlag  = cmds.Switch("-trace")
)

type action func(ctx context.Context, e *env) error

var do action

func init() {
	cmds.Define("run", cmds.Func(func() {
		do = runProgram
	}).Desc("run the program, prompting for input on a terminal"))
	cmds.Define("diag", cmds.Func(func() {
		do = runDiagnostic
	}).Desc("run the program as a diagnostic self test"))
	cmds.Define("amp", cmds.Func(func() {
		do = searchAmplifiers(amplifiers.WiringSerial)
	}).Desc("search phases of a serial amplifier chain"))
	cmds.Define("feedback", cmds.Func(func() {
		do = searchAmplifiers(amplifiers.WiringFeedback)
	}).Desc("search phases of an amplifier feedback loop"))
	cmds.Define("nounverb", cmds.Func(func(target intcode.Word) {
		do = findNounVerb(target)
	}).Desc("search noun and verb producing target"))
}

type env struct {
	program  []intcode.Word
	stdout   io.Writer
	logger   logs.Logger
	settings configs.Settings
	search   amplifiers.Searcher
	find     nounverb.Finder
	tap      debugs.Tap
	eval     debugs.Eval
}

func main() {
	cmds.Execute(os.Args[1:])
	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "error: -file is required")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
	if do == nil {
		do = runProgram
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		ctx context.Context,
		logger logs.Logger,
		newSpan logs.NewSpan,
		settings configs.Settings,
		search amplifiers.Searcher,
		find nounverb.Finder,
		tap debugs.Tap,
		eval debugs.Eval,
	) {
		ctx, _ = newSpan(ctx, "intcode")

		program, err := images.Load(*filePath)
		ce(logs.WrapSpan(ctx, err))
		logger.InfoContext(ctx, "program loaded",
			"path", *filePath,
			"words", len(program),
			"digest", images.Digest(program),
		)

		ce(logs.WrapSpan(ctx, do(ctx, &env{
			program:  program,
			stdout:   os.Stdout,
			logger:   logger,
			settings: settings,
			search:   search,
			find:     find,
			tap:      tap,
			eval:     eval,
		})))
	})
}

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
