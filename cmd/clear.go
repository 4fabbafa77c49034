package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored secrets",
	Long: `Removes every secret for the project and persists the empty set.
The namespace directory and secret file remain, so the project link stays
intact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		count, err := manager.Clear()
		if err != nil {
			return err
		}

		fmt.Printf("%s Cleared %d secret(s)\n", color.GreenString("✓"), count)
		return nil
	},
}
