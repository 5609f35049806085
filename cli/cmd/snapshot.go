package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oscarvarto/xonsh-tree-sitter/host"
	"github.com/oscarvarto/xonsh-tree-sitter/scanner"
)

var snapshotAt int

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Scan a file up to --at and print the serialized scanner state as hex",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&snapshotAt, "at", -1, "byte offset to stop scanning at (required)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotAt < 0 {
		return fmt.Errorf("--at is required (a non-negative byte offset)")
	}

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
	sess.RunUntilOffset(snapshotAt)

	buf := sess.State().Serialize(len(src) + 16)
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
	return nil
}
