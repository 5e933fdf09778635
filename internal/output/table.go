package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/yougoldberg/yougoldberg/internal/scan"
)

const maxURLWidth = 54

// Results prints the found profiles as a table, or a notice when there are none.
func (p *Printer) Results(profiles []scan.FoundProfile) error {
	if len(profiles) == 0 {
		red.Fprintln(p.w, "No profiles found!")
		return nil
	}

	green.Fprintf(p.w, "Found %d profile(s):\n\n", len(profiles))
	return renderTable(p.w, []any{"Platform", "URL", "Code"}, func(add func(...any) error) error {
		for _, fp := range profiles {
			if err := add(green.Sprint(fp.Platform), truncate(fp.URL, maxURLWidth), fp.ResponseCode); err != nil {
				return err
			}
		}
		return nil
	})
}

func renderTable(w io.Writer, header []any, fill func(add func(...any) error) error) error {
	table := tablewriter.NewWriter(w)
	table.Header(header...)

	if err := fill(func(row ...any) error { return table.Append(row...) }); err != nil {
		return err
	}
	return table.Render()
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
