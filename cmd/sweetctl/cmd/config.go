package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect sweetctl configuration",
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the resolved configuration",
	Long: fmt.Sprintf(`Prints the settings in effect after applying, in order of precedence:
  1. command-line flags
  2. environment variables (%s, %s, ...)
  3. <home>/config.yaml
  4. built-in defaults`, config.EnvKey(config.KeyAPIURL), config.EnvKey(config.KeyLogLevel)),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdutil.Config(cmd.Context())
		out, err := cfg.Settings.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		if cfg.Settings.ConfigFile == "" {
			cfg.Notifier.Hint("no config file found; defaults and environment are in effect")
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Save a setting to the config file",
	Long: fmt.Sprintf(`Writes a setting to <home>/config.yaml. Valid keys: %s.
An empty value removes the key.`, strings.Join(config.FileKeys(), ", ")),
	Example:   `  sweetctl config set api_url https://shop.example.com/api`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.FileKeys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdutil.Config(cmd.Context())
		path, err := config.SetFileValue(cfg.Settings.Home, args[0], args[1])
		if err != nil {
			return err
		}
		cfg.Notifier.Success("Saved %s to %s", args[0], path)
		if env := config.EnvKey(args[0]); os.Getenv(env) != "" {
			cfg.Notifier.Warning("%s is set and takes precedence over the config file", env)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configSetCmd)
}
