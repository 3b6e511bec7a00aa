// Package commands implements the inkmill CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/inkmill/inkmill/logger"
)

var jsonLogs bool

// RootCmd is the inkmill command tree root.
var RootCmd = &cobra.Command{
	Use:   "inkmill",
	Short: "inkmill - parameter block generation for notebook injection",
	Long: `inkmill generates parameter-assignment source blocks for a target
host language, ready to be injected ahead of a computation template.

Available commands:
  translate - Codify a parameters file into a source block
  languages - List registered translator keys
  config    - Manage inkmill configuration
  version   - Show version information

Examples:
  inkmill translate params.yaml                  # Python block to stdout
  inkmill translate -l scala params.yaml         # Scala block
  inkmill translate -k ir -l R params.json       # kernel lookup with R fallback
  inkmill languages                              # What can I target?`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(jsonLogs)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")

	RootCmd.AddCommand(TranslateCmd)
	RootCmd.AddCommand(LanguagesCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}
