package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			width := widths[c] - cellWidth(cell)
			if width < 0 {
				width = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, width)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, width)
			}
		}
		out[i] = b.String()
	}
	return out
}

// Fit shrinks column col so that formatted rows are at most maxWidth cells
// wide, cutting long cells with an ellipsis. The column keeps at least one
// cell of content. Rows are modified in place.
func Fit(rows [][]string, col, maxWidth int) {
	if len(rows) == 0 || maxWidth <= 0 || col < 0 {
		return
	}
	widths := columnWidths(rows)
	if col >= len(widths) {
		return
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	total += len(columnGap) * (len(widths) - 1)
	if total <= maxWidth {
		return
	}
	limit := widths[col] - (total - maxWidth)
	if limit < 1 {
		limit = 1
	}
	for _, row := range rows {
		if col < len(row) && cellWidth(row[col]) > limit {
			row[col] = ansi.Truncate(row[col], limit, "…")
		}
	}
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
