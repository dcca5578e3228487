package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"idtab/internal/diagfmt"
	"idtab/internal/ident"
	"idtab/internal/snapshot"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags]",
	Short: "Print the identifier table",
	Long: `Table prints every exported identifier: reserved token literals, operator
aliases and derived method names, with value, scope and serial.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tableCmd.Flags().String("class", "", "only print one class (reserved|operator|derived)")
	tableCmd.Flags().Bool("no-header", false, "omit the column header")
}

func runTable(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(stringSetting(cmd, "format", settings.Config.Output.Format))
	classFlag, err := cmd.Flags().GetString("class")
	if err != nil {
		return fmt.Errorf("failed to get class flag: %w", err)
	}
	noHeader, err := cmd.Flags().GetBool("no-header")
	if err != nil {
		return fmt.Errorf("failed to get no-header flag: %w", err)
	}

	entries := ident.Entries()
	if classFlag != "" {
		class, err := ident.ParseEntryClass(classFlag)
		if err != nil {
			return err
		}
		entries = ident.EntriesOf(class)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		return diagfmt.Table(out, entries, diagfmt.TableOpts{
			Color:  colorEnabled(cmd, os.Stdout),
			Header: !noHeader,
		})
	case "json":
		return diagfmt.TableJSON(out, entries)
	case "msgpack":
		p := snapshot.FromTable()
		if classFlag != "" {
			p.Entries = p.Entries[:0]
			for _, e := range entries {
				p.Entries = append(p.Entries, snapshot.Record{
					Const: e.Const, Symbol: e.Symbol, ID: uint32(e.ID), Class: uint8(e.Class), Grammar: e.Grammar,
				})
			}
		}
		return snapshot.Write(out, p)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
