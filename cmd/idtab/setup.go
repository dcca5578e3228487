package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"idtab/internal/diag"
	"idtab/internal/diagfmt"
	"idtab/internal/trace"
)

var (
	settings     = &projectSettings{}
	traceCleanup func()
)

// setupCommand loads idtab.toml and starts tracing before any subcommand runs.
func setupCommand(cmd *cobra.Command, args []string) error {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	bag := diag.NewBag(50)
	loaded, _, err := loadSettings(explicit, ".", diag.BagReporter{Bag: bag})
	if bag.Len() > 0 {
		printErr := diagfmt.Pretty(cmd.ErrOrStderr(), bag, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd, os.Stderr),
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
		if printErr != nil {
			return printErr
		}
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	settings = loaded

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup
	return nil
}

// setupTracing inspects trace-related flags and the [trace] section and
// initializes the tracer. Flags win over the file.
func setupTracing(cmd *cobra.Command) (func(), error) {
	traceOutput := stringSetting(cmd, "trace", settings.Config.Trace.Output)
	levelStr := stringSetting(cmd, "trace-level", settings.Config.Trace.Level)
	formatStr := stringSetting(cmd, "trace-format", "")

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	// an output without a level means the user wants the common case
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	root, ctx := trace.Start(ctx, trace.ScopeCommand, cmd.CommandPath())
	cmd.SetContext(ctx)

	return func() {
		root.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
