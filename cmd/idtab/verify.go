package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"idtab/internal/diag"
	"idtab/internal/grammar"
	"idtab/internal/ident"
	"idtab/internal/snapshot"
	"idtab/internal/trace"
)

var errVerifyFailed = errors.New("verification failed")

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] [GRAMMAR...]",
	Short: "Check the reserved literals against grammar numberings",
	Long: `Verify compares every reserved token literal with each GRAMMAR (a bison
header or a TOML token manifest) and checks the table for internal
collisions. Without arguments the [grammar] files of idtab.toml are used,
and without those the numbering compiled into the tool.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	verifyCmd.Flags().String("snapshot", "", "also compare the table with a snapshot file")
	verifyCmd.Flags().Int("jobs", 0, "parallel grammar loads (0 = GOMAXPROCS)")
}

// verifyReport is the outcome of checking one input.
type verifyReport struct {
	Origin string
	Bag    *diag.Bag
	Errors int
	// Truncated is set when the bag filled up, so later findings may be missing.
	Truncated bool
}

// verifyGrammar loads path (the built-in numbering when path is empty) and
// checks the reserved literals against it.
func verifyGrammar(ctx context.Context, path string, maxDiags int) verifyReport {
	origin := path
	if origin == "" {
		origin = grammar.BuiltinOrigin
	}
	span, _ := trace.Start(ctx, trace.ScopeFile, "verify:"+origin)

	bag := diag.NewBag(maxDiags)
	cr := &diag.CountingReporter{Next: diag.NewDedupReporter(diag.BagReporter{Bag: bag})}
	rep := verifyReport{Origin: origin, Bag: bag}

	var (
		n   *grammar.Numbering
		err error
	)
	if path == "" {
		n = grammar.Builtin()
	} else {
		n, err = grammar.Load(path)
	}
	if err != nil {
		diag.ReportError(cr, diag.IOLoadFileError, diag.Pos{File: path}, err.Error()).Emit()
		span.Fail("load:"+origin, err)
		rep.Errors = cr.Errors
		span.WithExtra("errors", strconv.Itoa(rep.Errors)).End("load failed")
		return rep
	}
	span.Point(trace.ScopeFile, "loaded:"+origin, strconv.Itoa(n.Len())+" tokens")

	// literal findings go first so a full bag never hides them
	if err := ident.VerifyReserved(n, cr); err != nil {
		span.Fail("verify:"+origin, err)
	}
	n.Check(cr)
	rep.Truncated = bagFull(bag, cr)
	rep.Errors = cr.Errors
	bag.Sort()
	span.WithExtra("tokens", strconv.Itoa(n.Len())).
		WithExtra("errors", strconv.Itoa(cr.Errors)).
		WithExtra("warnings", strconv.Itoa(cr.Warnings)).
		End("")
	return rep
}

// bagFull reports whether bag reached its limit while findings were counted.
func bagFull(bag *diag.Bag, cr *diag.CountingReporter) bool {
	return cr.Errors+cr.Warnings > 0 && bag.Len() >= int(bag.Cap())
}

// verifyGrammars checks every path concurrently. Reports come back in
// argument order.
func verifyGrammars(ctx context.Context, paths []string, maxDiags, jobs int) ([]verifyReport, error) {
	if len(paths) == 0 {
		paths = []string{""}
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	reports := make([]verifyReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = verifyGrammar(gctx, p, maxDiags)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// verifySnapshot compares the live table with the snapshot at path.
func verifySnapshot(ctx context.Context, path string, maxDiags int) verifyReport {
	span, _ := trace.Start(ctx, trace.ScopeFile, "snapshot:"+path)
	defer span.End("")

	bag := diag.NewBag(maxDiags)
	rep := verifyReport{Origin: path, Bag: bag}
	cr := &diag.CountingReporter{Next: diag.BagReporter{Bag: bag}}
	snap, err := snapshot.Load(path)
	if err != nil {
		diag.ReportError(cr, diag.IOLoadFileError, diag.Pos{File: path}, err.Error()).Emit()
		span.Fail("snapshot:"+path, err)
	} else {
		snapshot.Compare(snap, snapshot.FromTable(), path, cr)
	}
	rep.Errors = cr.Errors
	rep.Truncated = bagFull(bag, cr)
	return rep
}

func runVerify(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	snapPath := stringSetting(cmd, "snapshot", settings.Config.Verify.Snapshot)

	paths := args
	if len(paths) == 0 {
		paths = settings.Config.Grammar.Files
	}

	span, ctx := trace.Start(cmd.Context(), trace.ScopePhase, "verify")

	reports, err := verifyGrammars(ctx, paths, maxDiags, jobs)
	if err != nil {
		span.End("canceled")
		return err
	}
	if snapPath != "" {
		reports = append(reports, verifySnapshot(ctx, snapPath, maxDiags))
	}

	merged := diag.NewBag(maxDiags)
	errs := 0
	truncated := false
	for _, r := range reports {
		merged.Merge(r.Bag)
		errs += r.Errors
		truncated = truncated || r.Truncated
	}
	merged.Dedup()
	span.WithExtra("inputs", strconv.Itoa(len(reports))).WithExtra("errors", strconv.Itoa(errs)).End("")

	if err := printDiagnostics(cmd, merged, format); err != nil {
		return err
	}
	if truncated && format != "json" {
		printLimitNote(cmd, maxDiags)
	}
	if errs > 0 {
		return fmt.Errorf("%w: %d error(s)", errVerifyFailed, errs)
	}
	if !quiet(cmd) && format != "json" {
		origins := make([]string, len(reports))
		for i, r := range reports {
			origins[i] = r.Origin
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d reserved literals match %s\n", len(ident.Reserved()), strings.Join(origins, ", "))
	}
	return nil
}
