package cmd

import (
	"fmt"
	"sort"

	"github.com/torvikdev/envstash/internal/ui"

	"github.com/spf13/cobra"
)

var listShowValues bool

func init() {
	listCmd.Flags().BoolVar(&listShowValues, "show", false, "print values in full instead of masked")
}

func resetListCommandState() {
	listShowValues = false
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored secrets",
	Long: `Lists every secret key for the project. Values are masked by
default; pass --show to print them in full.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		values, err := manager.List()
		if err != nil {
			return err
		}

		if len(values) == 0 {
			fmt.Println("No secrets stored.")
			return nil
		}

		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			value := values[key]
			if !listShowValues {
				value = ui.Mask(value)
			}
			fmt.Printf("  %s = %s\n", ui.Highlight.Sprint(key), value)
		}
		return nil
	},
}
