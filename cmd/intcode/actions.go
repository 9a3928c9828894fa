package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minimav/intcode/amplifiers"
	"github.com/minimav/intcode/debugs"
	"github.com/minimav/intcode/diagnostics"
	"github.com/minimav/intcode/intcode"
)

var errNeedInput = errors.New("need input")

func (e *env) machine(ctx context.Context) *intcode.Machine {
	opts := []intcode.Option{
		intcode.RelativeMode(e.settings.RelativeMode),
	}
	if *traceFlag {
		opts = append(opts, intcode.Trace(ctx, e.logger))
	}
	return intcode.New(e.program, opts...)
}

// inspect hands the final machine to the tap REPL and the script, if asked.
func (e *env) inspect(ctx context.Context, m *intcode.Machine) error {
	if *tapFlag {
		e.tap(ctx, "machine", debugs.Inspect(m))
	}
	if *scriptPath != "" {
		src, err := os.ReadFile(*scriptPath)
		if err != nil {
			return err
		}
		if _, err := e.eval(ctx, *scriptPath, string(src), debugs.Inspect(m)); err != nil {
			return fmt.Errorf("script: %w", err)
		}
	}
	return nil
}

func runProgram(ctx context.Context, e *env) error {
	m := e.machine(ctx)
	in := intcode.NewQueue(*inputs...)

	var con *console
	defer func() {
		if con != nil {
			con.Close()
		}
	}()

	for {
		var last intcode.Signal
		for sig, err := range m.Signals(in) {
			if err != nil {
				return errors.Join(err, e.inspect(ctx, m))
			}
			if sig.Kind == intcode.SignalOutput {
				fmt.Fprintln(e.stdout, sig.Value)
				continue
			}
			last = sig
		}
		if last.Kind == intcode.SignalHalted {
			break
		}

		if con == nil {
			c, err := newConsole()
			if err != nil {
				return err
			}
			if c == nil {
				return errors.Join(
					fmt.Errorf("ip %d: %w", m.IP(), errNeedInput),
					e.inspect(ctx, m),
				)
			}
			con = c
		}
		v, err := con.ReadWord()
		if err != nil {
			return err
		}
		in.Push(v)
	}

	e.logger.InfoContext(ctx, "halted",
		"ip", m.IP(),
		"steps", m.Steps(),
	)
	return e.inspect(ctx, m)
}

func runDiagnostic(ctx context.Context, e *env) error {
	m := e.machine(ctx)
	report, err := diagnostics.Run(m, *inputs...)
	if err != nil {
		return errors.Join(err, e.inspect(ctx, m))
	}
	e.logger.InfoContext(ctx, "diagnostic passed",
		"checks", len(report.Outputs)-1,
	)
	fmt.Fprintln(e.stdout, report.Code)
	return e.inspect(ctx, m)
}

func searchAmplifiers(wiring amplifiers.Wiring) action {
	return func(ctx context.Context, e *env) error {
		result, err := e.search(ctx, e.program, wiring)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, result.Signal, result.Phases)
		return nil
	}
}

func findNounVerb(target intcode.Word) action {
	return func(ctx context.Context, e *env) error {
		answer, err := e.find(ctx, e.program, target)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, answer)
		return nil
	}
}
