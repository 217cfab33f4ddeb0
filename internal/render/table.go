// Package render draws summaries as text tables, an HTML dashboard and PNG snapshots.
package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/rentaldash/pkg/models"
)

const rule = "----------------------------------------"

// Table writes summary as an aligned two-column table followed by its total
func Table(w io.Writer, title string, summary models.Summary) error {
	ew := &errWriter{w: w}

	ew.printf("\n%s:\n", title)
	ew.printf("%s\n", rule)
	ew.printf("%-24s  %12s\n", "Category", "Rentals")
	ew.printf("%s\n", rule)

	if len(summary) == 0 {
		ew.printf("No rentals in the selected range\n")
	}
	for _, e := range summary {
		ew.printf("%-24s  %12s\n", e.Label, humanize.Comma(e.Total))
	}

	ew.printf("%s\n", rule)
	ew.printf("Total: %s rentals (%d categories)\n", humanize.Comma(summary.Total()), len(summary))

	return ew.err
}

// errWriter keeps the first write error so table code can stay linear
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
