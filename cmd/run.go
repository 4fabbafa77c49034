package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/torvikdev/envstash/internal/secrets"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command with project secrets in its environment",
	Long: `Runs a command with the project's secrets injected into its
environment. When the project has a .env file, it is loaded first as a
non-sensitive baseline; secrets are applied on top, so on key collision
the secret value always wins.

The child's stdin, stdout, and stderr are passed through, and its exit
code becomes envstash's exit code.

Example:
  envstash run -- npm start`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveProjectDir()
		if err != nil {
			return err
		}

		manager := newManagerFor(dir)
		values, err := manager.List()
		if err != nil {
			return err
		}

		// The .env baseline is optional; only wire the loader when the file
		// exists so a missing baseline is not an error.
		var base secrets.BaseLoader
		envPath := filepath.Join(dir, secrets.EnvFileName)
		if _, err := os.Stat(envPath); err == nil {
			base = secrets.DotenvLoader(envPath)
		}

		if err := secrets.Apply(values, base); err != nil {
			return Logger.ErrorfAndReturn("failed to apply secrets to the environment: %v", err)
		}
		Logger.Infof("Applied %d secret(s) to the environment", len(values))

		child := exec.Command(args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = os.Environ()

		if err := child.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				// Propagate the child's exit code without an extra message.
				os.Exit(exitErr.ExitCode())
			}
			return Logger.ErrorfAndReturn("failed to start %s: %v", args[0], err)
		}
		return nil
	},
}
