package main

import (
	"fmt"

	"github.com/matsen/namenotes/internal/name"
	"github.com/matsen/namenotes/internal/storage"
	"github.com/spf13/cobra"
)

// writeOptions holds the flags of the write command.
type writeOptions struct {
	name      string
	language  string
	meaning   string
	gender    name.Gender
	fictional bool
}

var writeOpts = writeOptions{gender: name.Unisex}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVarP(&writeOpts.name, "name", "n", "", "Name to note down (required)")
	writeCmd.Flags().StringVarP(&writeOpts.language, "language", "l", "", "Language of name")
	writeCmd.Flags().StringVarP(&writeOpts.meaning, "meaning", "m", "", "Meaning of name")
	writeCmd.Flags().VarP(&writeOpts.gender, "gender", "g", "Gender of name")
	writeCmd.Flags().BoolVarP(&writeOpts.fictional, "fictional", "f", false, "If name is fictional")
	writeCmd.MarkFlagRequired("name")
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Note down a name",
	Long: `Append a name to the notes.

Names are never deduplicated or edited; writing the same name twice keeps both.

Examples:
  namenotes write --name Alice --gender female
  namenotes write -n Frodo -l "Old English" -m "wise by experience" -g male --fictional`,
	Args: cobra.NoArgs,
	RunE: runWrite,
}

// record builds the record described by the flags.
func (o *writeOptions) record() (name.Record, error) {
	return name.New(o.name,
		name.WithLanguage(o.language),
		name.WithMeaning(o.meaning),
		name.WithGender(o.gender),
		name.WithFictional(o.fictional),
	)
}

func runWrite(cmd *cobra.Command, args []string) error {
	r, err := writeOpts.record()
	if err != nil {
		return withCode(ExitDataError, fmt.Errorf("invalid name: %w", err))
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	all, err := appendRecord(s, s.Path(), r)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(WriteResult{
			Status: "added",
			Record: r,
			Total:  all.Len(),
			Path:   s.Path(),
		})
	}
	fmt.Fprintf(stdout, "Added %s (%s total)\n", r.Name, pluralNames(all.Len()))
	return nil
}

// appendRecord loads the collection from s, appends r and saves the result.
func appendRecord(s storage.Store, label string, r name.Record) (name.Collection, error) {
	existing, err := loadNames(s, label)
	if err != nil {
		return nil, err
	}

	all := name.Append(existing, r)
	if err := storage.SaveCollection(s, all); err != nil {
		return nil, withCode(ExitIOError, err)
	}
	return all, nil
}

func pluralNames(n int) string {
	if n == 1 {
		return "1 name"
	}
	return fmt.Sprintf("%d names", n)
}
