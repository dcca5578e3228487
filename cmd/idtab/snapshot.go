package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"idtab/internal/diag"
	"idtab/internal/snapshot"
	"idtab/internal/trace"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export the table or compare it with an export",
}

var snapshotWriteCmd = &cobra.Command{
	Use:   "write FILE",
	Short: "Write the identifier table as a msgpack snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotWrite,
}

var snapshotDiffCmd = &cobra.Command{
	Use:   "diff FILE",
	Short: "Report identifiers whose values changed since FILE was written",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDiff,
}

func init() {
	snapshotDiffCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	snapshotCmd.AddCommand(snapshotWriteCmd)
	snapshotCmd.AddCommand(snapshotDiffCmd)
}

func runSnapshotWrite(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := cmd.Context()
	span, _ := trace.Start(ctx, trace.ScopePhase, "snapshot:write")
	p := snapshot.FromTable()
	if err := snapshot.Save(path, p); err != nil {
		span.End("failed")
		return fmt.Errorf("write snapshot: %w", err)
	}
	span.WithExtra("entries", fmt.Sprint(len(p.Entries))).End("")
	if !quiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d identifiers to %s\n", len(p.Entries), path)
	}
	return nil
}

func runSnapshotDiff(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	format = strings.ToLower(format)
	path := args[0]

	bag := diag.NewBag(maxDiags)
	cr := &diag.CountingReporter{Next: diag.BagReporter{Bag: bag}}
	errs := 0
	if snap, err := snapshot.Load(path); err != nil {
		bag.Add(diag.NewError(diag.IOLoadFileError, diag.Pos{File: path}, err.Error()))
		errs++
	} else {
		errs = snapshot.Compare(snap, snapshot.FromTable(), path, cr)
	}
	if err := printDiagnostics(cmd, bag, format); err != nil {
		return err
	}
	if bagFull(bag, cr) && format != "json" {
		printLimitNote(cmd, maxDiags)
	}
	if errs > 0 {
		return fmt.Errorf("%s: %w: %d error(s)", path, errVerifyFailed, errs)
	}
	if !quiet(cmd) && bag.Len() == 0 && format != "json" {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %s matches the table\n", path)
	}
	return nil
}
