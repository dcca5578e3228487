package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"idtab/internal/ident"
)

var encodeCmd = &cobra.Command{
	Use:   "encode SERIAL SCOPE",
	Short: "Encode a serial under a scope tag",
	Long: `Encode prints (SERIAL << 3) | SCOPE. SCOPE is a name (local, instance,
global, attrset, const, class, junk, internal) or a numeric tag.`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode ID...",
	Short: "Split identifiers into scope tag and serial",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	serial, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid serial %q: %w", args[0], err)
	}
	scope, err := ident.ParseScope(args[1])
	if err != nil {
		return err
	}
	id, err := ident.MakeID(serial, scope)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), uint32(id))
	return err
}

// decoded is one decode result.
type decoded struct {
	ID       uint32 `json:"id"`
	Operator bool   `json:"operator"`
	Tag      uint8  `json:"tag"`
	Scope    string `json:"scope,omitempty"`
	Serial   uint32 `json:"serial"`
	Name     string `json:"name,omitempty"`
	Const    string `json:"const,omitempty"`
}

// parseID accepts decimal, 0x hex and 0b binary values that fit an ID.
func parseID(s string) (ident.ID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return ident.ID(n), nil
}

func decodeID(id ident.ID) decoded {
	d := decoded{
		ID:       uint32(id),
		Operator: ident.IsOperator(id),
		Tag:      uint8(ident.TagOf(id)),
		Serial:   ident.SerialOf(id),
	}
	if s, ok := ident.ScopeOf(id); ok {
		d.Scope = s.String()
	}
	if e, ok := ident.EntryOf(id); ok {
		d.Name = e.Symbol
		d.Const = e.Const
	}
	return d
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	results := make([]decoded, 0, len(args))
	for _, a := range args {
		id, err := parseID(a)
		if err != nil {
			return err
		}
		results = append(results, decodeID(id))
	}
	switch strings.ToLower(format) {
	case "pretty":
		return renderDecodedPretty(cmd.OutOrStdout(), results)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderDecodedPretty(w io.Writer, results []decoded) error {
	for _, d := range results {
		var line string
		switch {
		case d.Operator:
			line = fmt.Sprintf("%d: raw token value", d.ID)
		case d.Scope == "":
			line = fmt.Sprintf("%d: serial %d, unassigned tag %#02x", d.ID, d.Serial, d.Tag)
		default:
			line = fmt.Sprintf("%d: serial %d, scope %s", d.ID, d.Serial, d.Scope)
		}
		if d.Const != "" {
			line += " (" + d.Const
			if d.Name != "" {
				line += " " + strconv.Quote(d.Name)
			}
			line += ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
