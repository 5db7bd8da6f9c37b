package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.1.3"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("boj-submit: a CLI tool for BOJ")
		fmt.Println("v" + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
