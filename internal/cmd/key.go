package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Show the session's site key and derived animation key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, _, err := newGenerator(cmd.Context())
		if err != nil {
			return err
		}

		siteKey := gen.SiteKey()
		if len(siteKey) == 0 {
			return fmt.Errorf("no site verification key found on homepage")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "site key:      %s (%d bytes)\n",
			base64.StdEncoding.EncodeToString(siteKey), len(siteKey))
		fmt.Fprintf(cmd.OutOrStdout(), "animation key: %s\n", gen.AnimationKey())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
}
