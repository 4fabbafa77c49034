package cmd

import (
	"fmt"

	"github.com/torvikdev/envstash/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a secret",
	Long: `Stores a secret under the given key, creating or replacing it, and
persists immediately. Keys must be non-empty and must not contain '=' or a
newline.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		if err := manager.Set(key, value); err != nil {
			return err
		}

		Logger.Infof("Persisted %s", key)
		fmt.Printf("%s Set secret %s\n", color.GreenString("✓"), ui.Highlight.Sprint(key))
		return nil
	},
}
