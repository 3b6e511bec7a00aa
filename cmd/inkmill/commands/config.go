package commands

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/inkmill/inkmill/config"
)

// ConfigCmd groups configuration management subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage inkmill configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter inkmill.toml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault("inkmill.toml"); err != nil {
			return err
		}
		pterm.Success.Println("Wrote inkmill.toml")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		data, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}
