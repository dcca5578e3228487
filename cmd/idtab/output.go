package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"idtab/internal/diag"
	"idtab/internal/diagfmt"
)

// stringSetting returns the flag value when the user set it, else the
// config file value when present, else the flag default.
func stringSetting(cmd *cobra.Command, flag, fromFile string) string {
	f := cmd.Flag(flag)
	if f == nil {
		return fromFile
	}
	if f.Changed || fromFile == "" {
		return f.Value.String()
	}
	return fromFile
}

func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	mode := strings.ToLower(stringSetting(cmd, "color", settings.Config.Output.Color))
	return mode == "on" || (mode == "auto" && isTerminal(f))
}

func quiet(cmd *cobra.Command) bool {
	q, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && q
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !cmd.Flag("max-diagnostics").Changed && settings.Config.Verify.MaxDiagnostics > 0 {
		n = settings.Config.Verify.MaxDiagnostics
	}
	return n, nil
}

// printDiagnostics writes bag in the chosen format: pretty goes to stderr
// with a summary line, json to stdout.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, format string) error {
	switch format {
	case "json":
		return diagfmt.JSON(cmd.OutOrStdout(), bag, diagfmt.JSONOpts{
			PathMode:     diagfmt.PathModeAuto,
			IncludeNotes: true,
		})
	case "pretty", "":
		if bag.Len() == 0 {
			return nil
		}
		return diagfmt.Pretty(cmd.ErrOrStderr(), bag, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd, os.Stderr),
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
			Summary:   !quiet(cmd),
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printLimitNote(cmd *cobra.Command, limit int) {
	fmt.Fprintf(cmd.ErrOrStderr(), "note: stopped after %d diagnostics; raise --max-diagnostics to see the rest\n", limit)
}
