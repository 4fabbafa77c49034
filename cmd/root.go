package cmd

import (
	"fmt"
	"os"

	"github.com/torvikdev/envstash/internal/configs"
	logger "github.com/torvikdev/envstash/internal/logging"
	"github.com/torvikdev/envstash/internal/secrets"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	projectDir string
	verbose    bool
	debug      bool
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "envstash",
		Short: "Keep per-project secrets outside your working tree",
		Long: `envstash stores a project's secret values in a user-scoped directory,
linked to the project through an ENVSTASH_ID variable in its .env file.

Secrets stay out of the repository (nothing sensitive to .gitignore or
accidentally commit) while remaining one command away:

  envstash init                 link this project to a secret namespace
  envstash set API_KEY sk-123   store a secret
  envstash run -- npm start     run a command with secrets in its environment

This is a local-development convenience, not a production secrets manager:
values are stored in plain text with owner-only file permissions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing envstash with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("envstash", "", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run 'envstash --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", "", "project directory (defaults to the current directory)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(setCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(clearCmd)
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(runCmd)
}

// resolveProjectDir returns the project directory selected by --project, or
// the current working directory.
func resolveProjectDir() (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// newManager builds a Manager for the selected project directory using the
// process-wide user settings.
func newManager() (*secrets.Manager, error) {
	dir, err := resolveProjectDir()
	if err != nil {
		return nil, err
	}
	return newManagerFor(dir), nil
}

// newManagerFor builds a Manager for an explicit project directory.
func newManagerFor(dir string) *secrets.Manager {
	return secrets.NewManager(dir, configs.UserEnvstashSettings)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	projectDir = ""
	verbose = false
	debug = false
	resetListCommandState()
	resetInfoCommandState()
}
