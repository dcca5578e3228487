package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"idtab/internal/diag"
	"idtab/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags]",
	Short: "Regenerate the compile-time reserved literal check",
	Long: `Gen renders the Go file that fails to compile when a reserved token
literal drifts from the grammar token numbering. Without -o the file is
written to stdout.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	genCmd.Flags().String("package", gen.DefaultOptions.Package, "package clause of the generated file")
	genCmd.Flags().String("token-import", gen.DefaultOptions.TokenImport, "import path of the grammar token package")
}

func runGen(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	opts := gen.DefaultOptions
	if opts.Package, err = cmd.Flags().GetString("package"); err != nil {
		return fmt.Errorf("failed to get package flag: %w", err)
	}
	if opts.TokenImport, err = cmd.Flags().GetString("token-import"); err != nil {
		return fmt.Errorf("failed to get token-import flag: %w", err)
	}

	bag := diag.NewBag(50)
	src, genErr := gen.ReservedCheck(opts, diag.BagReporter{Bag: bag})
	if err := printDiagnostics(cmd, bag, "pretty"); err != nil {
		return err
	}
	if genErr != nil {
		return genErr
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	if err := writeFileAtomic(output, src); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	if !quiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".idtab-gen-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
