package main

import (
	"github.com/matsen/namenotes/internal/render"
	"github.com/matsen/namenotes/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize noted names by gender and language",
	Long: `Summarize the notes: total and distinct names, fictional names,
and counts by gender and by language.

The summary is computed through a throwaway in-memory SQLite index built
from namenotes.json; nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	all, err := loadNames(s, s.Path())
	if err != nil {
		return err
	}

	st, err := storage.ComputeStats(cmd.Context(), all)
	if err != nil {
		return withCode(ExitError, err)
	}

	if jsonOutput {
		return outputJSON(st)
	}
	render.StatsTable(stdout, st)
	return nil
}
