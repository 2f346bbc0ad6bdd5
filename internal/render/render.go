// Package render formats name records and summaries for people.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/matsen/namenotes/internal/name"
	"github.com/matsen/namenotes/internal/storage"
)

var (
	heading = color.New(color.Bold).SprintFunc()
	label   = color.New(color.FgCyan).SprintFunc()
)

// Report writes the match count followed by one block per record. Absent
// attributes are skipped; gender is always shown; fictional only when true.
func Report(w io.Writer, c name.Collection) error {
	if _, err := fmt.Fprintln(w, heading(countLine(len(c)))); err != nil {
		return err
	}
	for _, r := range c {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := Record(w, r); err != nil {
			return err
		}
	}
	return nil
}

// Record writes one record's attributes, one per line.
func Record(w io.Writer, r name.Record) error {
	lines := []string{heading(r.Name)}
	if r.Language != "" {
		lines = append(lines, fmt.Sprintf("  %s %s", label("Language:"), r.Language))
	}
	if r.Meaning != "" {
		lines = append(lines, fmt.Sprintf("  %s %s", label("Meaning:"), r.Meaning))
	}
	lines = append(lines, fmt.Sprintf("  %s %s", label("Gender:"), r.Gender.Label()))
	if r.Fictional {
		lines = append(lines, fmt.Sprintf("  %s yes", label("Fictional:")))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func countLine(n int) string {
	if n == 1 {
		return "1 name found"
	}
	return fmt.Sprintf("%d names found", n)
}

// StatsTable writes a summary line and tables of counts by gender and language.
func StatsTable(w io.Writer, st *storage.Stats) {
	fmt.Fprintf(w, "%s names (%d unique, %d fictional)\n\n",
		heading(strconv.Itoa(st.Total)), st.Unique, st.Fictional)

	genders := tablewriter.NewWriter(w)
	genders.SetHeader([]string{"Gender", "Count"})
	for _, c := range st.ByGender {
		g, err := name.ParseGender(c.Key)
		display := c.Key
		if err == nil {
			display = g.Label()
		}
		genders.Append([]string{display, strconv.Itoa(c.Count)})
	}
	genders.Render()

	if len(st.ByLanguage) == 0 {
		return
	}

	fmt.Fprintln(w)
	languages := tablewriter.NewWriter(w)
	languages.SetHeader([]string{"Language", "Count"})
	for _, c := range st.ByLanguage {
		key := c.Key
		if key == "" {
			key = "(none)"
		}
		languages.Append([]string{key, strconv.Itoa(c.Count)})
	}
	languages.Render()
}
