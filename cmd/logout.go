package cmd

import (
	"fmt"
	"os"

	"github.com/sohnryang/boj-submit/internal/config"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session",
	Long: `Remove the locally stored session cookies.

You'll need to run 'boj login' again to authenticate.

Example:
  boj logout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := os.Remove(config.CookieFile())
		if os.IsNotExist(err) {
			fmt.Println("Already logged out")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		fmt.Println("✓ Logged out successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
