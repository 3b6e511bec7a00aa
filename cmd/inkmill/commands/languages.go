package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/inkmill/inkmill"
)

// LanguagesCmd lists the registered translator keys.
var LanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List registered translator keys",
	Long: `List every kernel identity and language family with a registered
translator. Any of these keys works with translate --kernel or
--language.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := pterm.TableData{{"Key"}}
		for _, key := range inkmill.DefaultRegistry().Keys() {
			data = append(data, []string{key})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}
