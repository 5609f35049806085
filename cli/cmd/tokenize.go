package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/oscarvarto/xonsh-tree-sitter/host"
	"github.com/oscarvarto/xonsh-tree-sitter/scanner"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Run the scanner over a file via host.Session and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	st := scanner.NewScannerState()
	cfg.ApplyTo(st)

	sess := host.NewSession(src, st)
	toks := sess.RunAll()

	for _, t := range toks {
		if verbose {
			fmt.Fprintln(cmd.OutOrStdout(), repr.String(t, repr.Indent("  ")))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d %q\n", t.Kind, t.Start.Line, t.Start.Col, t.Text)
	}

	if diags := sess.Diagnostics(); len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, d.String())
		}
		return fmt.Errorf("%d diagnostic(s)", len(diags))
	}
	return nil
}
