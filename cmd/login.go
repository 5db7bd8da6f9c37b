package cmd

import (
	"fmt"

	"github.com/sohnryang/boj-submit/ui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with BOJ and save the session",
	Long: `Log in to BOJ with your username and password.

The session cookie is stored locally so later commands reuse it without
asking again. A failed attempt is not retried; re-run the command.

Example:
  boj login`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		err = c.Login(cmd.Context())
		if err != nil {
			fmt.Println(ui.Colorize(ui.ToneRed, "✗ "+err.Error()))
			return err
		}

		fmt.Println(ui.Colorize(ui.ToneGreen, "✓ Logged in successfully!"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
