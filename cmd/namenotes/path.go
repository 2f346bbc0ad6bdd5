package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of namenotes.json",
	Long: `Print the location of namenotes.json after applying --path,
$NAMENOTES_PATH, the global config and the home directory, in that order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := resolveLocation()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(loc)
		}
		fmt.Fprintf(stdout, "%s (from %s)\n", loc.Path, loc.Source)
		return nil
	},
}
