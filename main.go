// ABOUTME: Entry point for the skillserve CLI
// ABOUTME: Command-line and TUI client for the SkillServe marketplace

package main

import (
	"fmt"
	"os"

	"github.com/skillserve/marketplace-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
