package cmd

import (
	"fmt"
	"strings"

	"github.com/sohnryang/boj-submit/ui"
	"github.com/spf13/cobra"
)

var statsUser string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show account statistics from the profile page",
	Long: `Print statistics from a user's profile page: rank, solved and
submission counts, per-verdict counts, organization and contest
placements.

Without --user, your own profile is shown (requires login).

Examples:
  boj stats
  boj stats --user someone`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		username, rows, err := c.Stats(cmd.Context(), statsUser)
		if err != nil {
			return err
		}

		fmt.Printf("Stats of user %s\n\n", username)
		for _, row := range rows {
			fmt.Println(ui.Colorize(row.Tone, row.Label) + strings.Join(row.Values, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsUser, "user", "u", "", "the user to show stats for")
}
