package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/torvikdev/envstash/internal/ui"

	"github.com/spf13/cobra"
)

var infoJSONOutput bool

func init() {
	infoCmd.Flags().BoolVar(&infoJSONOutput, "json", false, "output in JSON format")
}

func resetInfoCommandState() {
	infoJSONOutput = false
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the project's secret storage configuration",
	Long: `Shows where this project's secrets live: the identifier, the
namespace directory, the secret file, and how many entries it holds.

Use --json for machine-readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		info, err := manager.Info()
		if err != nil {
			return err
		}

		if infoJSONOutput {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal info: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("  Project directory : %s\n", ui.Path.Sprint(info.ProjectDir))
		fmt.Printf("  Env file          : %s\n", ui.Path.Sprint(info.EnvFilePath))
		fmt.Printf("  Project ID        : %s\n", ui.Highlight.Sprint(info.ProjectID))
		fmt.Printf("  Namespace         : %s\n", ui.Path.Sprint(info.NamespacePath))
		fmt.Printf("  Secrets file      : %s\n", ui.Path.Sprint(info.SecretFilePath))
		fmt.Printf("  Secrets count     : %d\n", info.EntryCount)
		if info.CreatedAt != "" {
			fmt.Printf("  Created           : %s\n", info.CreatedAt)
		}
		return nil
	},
}
