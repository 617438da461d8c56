package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games in menu order with their IDs.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	lang := i18n.Detect(os.Getenv("LANG"))
	if flagLang != "" {
		lang = config.Config{Language: flagLang}.DisplayLanguage(os.Getenv("LANG"))
	}

	out := cmd.OutOrStdout()
	games := registry.List()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  #  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  -  %-*s  %s\n", maxIDLen, "--", "-----")
	for i, g := range games {
		fmt.Fprintf(out, "  %d  %-*s  %s\n", i+1, maxIDLen, g.ID, g.Kind.Title(lang))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game.")
	return nil
}
