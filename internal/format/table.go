package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title turns a column or table name into a header: "max_psi" → "Max Psi".
func Title(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// Count renders n things of a kind: "1 casing", "3 ballistic tests".
func Count(n int, kind string) string {
	noun := strings.ReplaceAll(kind, "_", " ")
	if n != 1 {
		noun = inflect.Pluralize(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// Cell renders a single record value.
func Cell(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Table writes rows under titled column headers, aligned with tabs.
func Table(w io.Writer, columns []string, rows [][]any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = Title(c)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = Cell(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
