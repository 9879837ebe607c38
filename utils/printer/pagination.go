package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PageControl is one element of the pagination control row.
type PageControl struct {
	Label  string
	Page   int
	Active bool
}

// PaginationControls builds the control row for a paged listing: a prev
// control unless on the first page, page buttons 1..min(totalPages, 5)
// with the current page marked active, and a next control unless on the
// last page. A single page needs no controls at all.
func PaginationControls(currentPage, totalPages int) []PageControl {
	if totalPages <= 1 {
		return nil
	}

	controls := []PageControl{}
	if currentPage > 1 {
		controls = append(controls, PageControl{Label: "prev", Page: currentPage - 1})
	}

	last := totalPages
	if last > 5 {
		last = 5
	}
	for i := 1; i <= last; i++ {
		controls = append(controls, PageControl{
			Label:  strconv.Itoa(i),
			Page:   i,
			Active: i == currentPage,
		})
	}

	if currentPage < totalPages {
		controls = append(controls, PageControl{Label: "next", Page: currentPage + 1})
	}
	return controls
}

// PrintPagination renders the control row, e.g.
// "page: prev 1 2 [3] 4 5 next (8 pages)".
func PrintPagination(out io.Writer, currentPage, totalPages int) error {
	controls := PaginationControls(currentPage, totalPages)
	if len(controls) == 0 {
		return nil
	}

	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		if c.Active {
			parts = append(parts, "["+c.Label+"]")
		} else {
			parts = append(parts, c.Label)
		}
	}
	_, err := fmt.Fprintf(out, "page: %s (%d pages)\n", strings.Join(parts, " "), totalPages)
	return err
}
