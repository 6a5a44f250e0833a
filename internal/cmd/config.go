package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/qm4/xtid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage default config",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print current config as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		masked := *globalCfg
		masked.AuthToken = maskSecret(masked.AuthToken)
		masked.CT0 = maskSecret(masked.CT0)

		out, err := json.MarshalIndent(masked, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(args[0])
		value := args[1]

		switch key {
		case "user_agent":
			globalCfg.UserAgent = value
		case "auth_token":
			globalCfg.AuthToken = value
		case "ct0":
			globalCfg.CT0 = value
		case "timeout":
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid int for %s: %q", key, value)
			}
			globalCfg.Timeout = parsed
		case "verbose":
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %q", key, value)
			}
			globalCfg.Verbose = parsed
		default:
			return fmt.Errorf("unsupported config key: %s", key)
		}

		if err := cfgpkg.Save(globalCfg); err != nil {
			return err
		}

		if key == "auth_token" || key == "ct0" {
			value = maskSecret(value)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "set %s=%s\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), cfgpkg.FilePath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func maskSecret(v string) string {
	if v == "" {
		return ""
	}
	return "***"
}
