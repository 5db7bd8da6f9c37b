package cmd

import (
	"fmt"
	"strconv"

	"github.com/sohnryang/boj-submit/client"
	"github.com/sohnryang/boj-submit/internal/config"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit <problem-number> <filename>",
	Short: "Submit a solution and wait for the verdict",
	Long: `Submit a source file for a problem, then poll the status page
until the judge reaches a verdict. The verdict line updates in place;
press Ctrl-C to stop waiting (the submission itself is not withdrawn).

The language is picked from the file extension. Compiler and version
overrides come from the config file, e.g.:

  [C++]
  Compiler = clang
  Version = C++17

Example:
  boj submit 1000 main.cpp`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid problem number %q", args[0])
		}
		filename := args[1]

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		if err := c.Submit(cmd.Context(), problem, filename, cfg); err != nil {
			return err
		}

		_, err = client.NewPoller(c).Run(cmd.Context(), problem)
		return err
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
