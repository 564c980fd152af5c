package export

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// previewCellLimit caps cell width in the console preview; SharePoint text
// fields can hold whole paragraphs.
const previewCellLimit = 40

// Preview writes the record count and the first n table rows to w.
func Preview(w io.Writer, t Table, n int) {
	fmt.Fprintf(w, "Retrieved %d records.\n", len(t.Rows))
	if t.Empty() || n <= 0 {
		return
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Columns)
	for _, row := range t.Rows[:n] {
		tw.Append(truncateRow(row))
	}
	tw.Render()
}

func truncateRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		r := []rune(cell)
		if len(r) > previewCellLimit {
			cell = string(r[:previewCellLimit]) + "..."
		}
		out[i] = cell
	}
	return out
}
