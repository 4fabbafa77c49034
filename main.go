package main

import (
	"fmt"
	"os"

	"github.com/torvikdev/envstash/cmd"
	"github.com/torvikdev/envstash/internal/ui"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error.Sprint("✗"), err)
		os.Exit(1)
	}
}
