package cmd

import (
	"github.com/torvikdev/envstash/internal/secrets"
	"github.com/torvikdev/envstash/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Link this project to its secret namespace",
	Long: `Initializes envstash for the project: reads ENVSTASH_ID from the
project's .env file (generating and appending one if absent) and creates
the matching namespace directory with an empty secret file.

Running init on an already-linked project is harmless: the existing
identifier and secrets are reused unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Initializing envstash...", verbose)
		defer cleanup()

		manager, err := newManager()
		if err != nil {
			return err
		}

		result, err := manager.Init()
		if err != nil {
			return err
		}

		if result.FirstRun {
			spinner.FinalMSG = color.GreenString("✓") + " envstash initialized\n" +
				color.CyanString("→") + " " + secrets.IdentifierKey + ": " + ui.Highlight.Sprint(result.ProjectID) + "\n" +
				color.CyanString("→") + " Namespace: " + ui.Path.Sprint(result.NamespacePath) + "\n" +
				color.CyanString("→") + " Run " + ui.Code.Sprint("envstash set KEY VALUE") + " to store your first secret"
		} else {
			spinner.FinalMSG = color.GreenString("✓") + " envstash already initialized\n" +
				color.CyanString("→") + " " + secrets.IdentifierKey + ": " + ui.Highlight.Sprint(result.ProjectID) + "\n" +
				color.CyanString("→") + " Namespace: " + ui.Path.Sprint(result.NamespacePath)
		}
		return nil
	},
}
