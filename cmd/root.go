package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "boj",
	Short: "Submit solutions to BOJ and track verdicts from your terminal",
	Long: `boj-submit - a CLI tool for BOJ (https://www.acmicpc.net)

Log in once, submit solutions without leaving your terminal, watch the
verdict update in place, and check account statistics.

Quick Start:
  1. Authenticate:      boj login
  2. Submit a solution: boj submit 1000 main.cpp
  3. Check your stats:  boj stats`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case debug:
			logrus.SetLevel(logrus.DebugLevel)
		case verbose:
			logrus.SetLevel(logrus.InfoLevel)
		default:
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set log level to info")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "set log level to debug")
}
