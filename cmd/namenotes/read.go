package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/matsen/namenotes/internal/name"
	"github.com/matsen/namenotes/internal/query"
	"github.com/matsen/namenotes/internal/render"
	"github.com/spf13/cobra"
)

// readOptions holds the flags of the read command.
type readOptions struct {
	name           string
	language       string
	meaning        string
	gender         string
	length         int
	contains       string
	containsLetter string
	fictional      bool
}

var readOpts readOptions

// Errors for read flags that cobra cannot check itself.
var (
	errLetterNotSingle = errors.New("--contains-letter takes exactly one character")
	errNegativeLength  = errors.New("--length must not be negative")
)

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringVarP(&readOpts.name, "name", "n", "", "Filter by name")
	readCmd.Flags().StringVarP(&readOpts.language, "language", "l", "", "Filter by language of name")
	readCmd.Flags().StringVarP(&readOpts.meaning, "meaning", "m", "", "Filter by sequence of characters in meaning of name")
	readCmd.Flags().StringVarP(&readOpts.gender, "gender", "g", "", "Filter by gender: male, female or unisex")
	readCmd.Flags().IntVar(&readOpts.length, "length", 0, "Filter by length of name")
	readCmd.Flags().StringVarP(&readOpts.contains, "contains", "c", "", "Filter by sequence of characters name has to contain")
	readCmd.Flags().StringVar(&readOpts.containsLetter, "contains-letter", "", "Filter by character name has to contain")
	readCmd.Flags().BoolVarP(&readOpts.fictional, "fictional", "f", false, "Only fictional names")
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "List noted names, optionally filtered",
	Long: `List the noted names matching every given filter, in the order they were written.

Without filters, every name is listed. Names without a language or meaning
never match a --language or --meaning filter. A unisex name matches any
--gender filter; a male or female name only matches its own gender.

Examples:
  namenotes read
  namenotes read --gender female --language Latin
  namenotes read --contains-letter x --length 6`,
	Args: cobra.NoArgs,
	RunE: runRead,
}

// spec converts the flags into a query. changed reports whether a flag was
// given on the command line; only given flags constrain the query.
func (o *readOptions) spec(changed func(string) bool) (query.Spec, error) {
	var s query.Spec
	if changed("name") {
		s.Name = &o.name
	}
	if changed("language") {
		s.Language = &o.language
	}
	if changed("meaning") {
		s.Meaning = &o.meaning
	}
	if changed("gender") {
		g, err := name.ParseGender(o.gender)
		if err != nil {
			return query.Spec{}, err
		}
		s.Gender = &g
	}
	if changed("length") {
		if o.length < 0 {
			return query.Spec{}, errNegativeLength
		}
		s.Length = &o.length
	}
	if changed("contains") {
		s.Contains = &o.contains
	}
	if changed("contains-letter") {
		if utf8.RuneCountInString(o.containsLetter) != 1 {
			return query.Spec{}, fmt.Errorf("%w: got %q", errLetterNotSingle, o.containsLetter)
		}
		r, _ := utf8.DecodeRuneInString(o.containsLetter)
		s.ContainsLetter = &r
	}
	s.Fictional = o.fictional
	return s, nil
}

func runRead(cmd *cobra.Command, args []string) error {
	spec, err := readOpts.spec(cmd.Flags().Changed)
	if err != nil {
		return withCode(ExitError, err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	all, err := loadNames(s, s.Path())
	if err != nil {
		return err
	}

	matched := query.Filter(all, spec)

	if jsonOutput {
		return outputJSON(ReadResult{
			Count:  matched.Len(),
			Filter: spec.Describe(),
			Names:  matched,
		})
	}
	return render.Report(stdout, matched)
}
