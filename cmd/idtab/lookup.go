package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"idtab/internal/diagfmt"
	"idtab/internal/ident"
)

var errNotFound = errors.New("not in the identifier table")

var lookupCmd = &cobra.Command{
	Use:   "lookup NAME...",
	Short: "Find identifiers by method name or constant name",
	Long: `Lookup resolves each NAME, first as a method or operator name ("<=>",
"each"), then as a constant name ("IDCmp"), and prints the matching entries.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func lookupEntry(name string) (ident.Entry, bool) {
	if id, ok := ident.Lookup(name); ok {
		return ident.EntryOf(id)
	}
	return ident.LookupConst(name)
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var (
		found   []ident.Entry
		missing []string
	)
	for _, name := range args {
		e, ok := lookupEntry(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		found = append(found, e)
	}

	if len(found) > 0 {
		switch strings.ToLower(format) {
		case "pretty":
			err = diagfmt.Table(cmd.OutOrStdout(), found, diagfmt.TableOpts{
				Color:  colorEnabled(cmd, os.Stdout),
				Header: !quiet(cmd),
			})
		case "json":
			err = diagfmt.TableJSON(cmd.OutOrStdout(), found)
		default:
			err = fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), errNotFound)
	}
	return nil
}
