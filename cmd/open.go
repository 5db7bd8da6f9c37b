package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/browser"
	"github.com/sohnryang/boj-submit/client"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <problem-number>",
	Short: "Open a problem page in the browser",
	Long: `Open the problem statement on BOJ in your default browser.

Example:
  boj open 1000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid problem number %q", args[0])
		}

		url := fmt.Sprintf("%s/problem/%d", client.DefaultBaseURL, problem)
		if err := browser.OpenURL(url); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}

		fmt.Printf("Opened %s\n", url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
