package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// printEdge is how many rows Print shows at each end of a long table.
const printEdge = 5

// Print writes t to w as an aligned grid with a leading row index. Tables
// longer than twice printEdge rows are cut in the middle and followed by
// their dimensions.
func (t *Table) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.columns, "\t"))

	truncated := len(t.rows) > 2*printEdge
	for i, r := range t.rows {
		if truncated && i == printEdge {
			dots := make([]string, len(t.columns))
			for j := range dots {
				dots[j] = "..."
			}
			fmt.Fprintf(tw, "..\t%s\t\n", strings.Join(dots, "\t"))
		}
		if truncated && i >= printEdge && i < len(t.rows)-printEdge {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", strconv.Itoa(i), strings.Join(r, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if truncated {
		_, err := fmt.Fprintf(w, "\n[%d rows x %d columns]\n", len(t.rows), len(t.columns))
		return err
	}
	return nil
}
