package cmd

import (
	"fmt"

	"github.com/torvikdev/envstash/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a secret",
	Long: `Removes the secret stored under the given key and persists
immediately. Deleting a key that is not set is a no-op, not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		key := args[0]
		existed, err := manager.Delete(key)
		if err != nil {
			return err
		}

		if existed {
			fmt.Printf("%s Deleted secret %s\n", color.GreenString("✓"), ui.Highlight.Sprint(key))
		} else {
			fmt.Printf("%s Secret %s was not set %s\n", color.CyanString("→"), ui.Highlight.Sprint(key), ui.Muted.Sprint("nothing to do"))
		}
		return nil
	},
}
