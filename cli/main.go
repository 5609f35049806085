package main

import (
	"os"

	"github.com/oscarvarto/xonsh-tree-sitter/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
