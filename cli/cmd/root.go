package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "xonshtoken",
		Short:        "xonshtoken",
		SilenceUsage: true,
		Long:         `Debug CLI for the xonsh-dialect lexical scanner: tokenize files and inspect scanner-state snapshots. See DESIGN.md.`,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	configPath string
	verbose    bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a xonshtoken.yaml config file extending the keyword/shell-command dictionaries")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level token logging")
	rootCmd.AddCommand(tokenizeCmd, snapshotCmd)
	return rootCmd.Execute()
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
