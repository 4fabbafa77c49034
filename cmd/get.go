package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of a secret",
	Long: `Prints the value stored under the given key to stdout, with no
decoration, so it can be piped or substituted in scripts.

Exits non-zero when the key is not set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		value, err := manager.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Println(value)
		return nil
	},
}
