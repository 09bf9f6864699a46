package cmd

import (
	"github.com/akito/kotoba/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "AI Japanese tutor in the terminal",
	Long:  "Kotoba — AI-native terminal app for learning Japanese through generated lessons and guided conversation practice.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOTOBA_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KOTOBA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
