package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/olekukonko/tablewriter"

	"github.com/atomicstack/minitwitter/internal/board"
	"github.com/atomicstack/minitwitter/internal/logging/events"
)

// minDumpText is the narrowest the message column is squeezed to when a
// width is given.
const minDumpText = 12

// Dump writes the whole board as a plain table, newest first, followed by
// the counters for the session identity. A positive width caps the message
// column so rows stay on one line.
func Dump(w io.Writer, ctrl *board.Controller, width int) error {
	feed, err := ctrl.Render("")
	if err != nil {
		return err
	}
	if feed.Empty() {
		if _, err := fmt.Fprintln(w, feed.Placeholder()); err != nil {
			return err
		}
		events.App.Dump(0)
		return writeCounters(w, feed)
	}

	textLimit := 0
	if width > 0 {
		textLimit = width - fixedColumnsWidth(feed.Rows)
		if textLimit < minDumpText {
			textLimit = minDumpText
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Author", "Message", "Time", "Owner"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	for _, row := range feed.Rows {
		text := row.Text
		if textLimit > 0 {
			text = ansi.Truncate(text, textLimit, "…")
		}
		table.Append([]string{
			strconv.FormatInt(row.ID, 10),
			row.AuthorLabel(),
			text,
			row.CreatedAt,
			row.Owner,
		})
	}
	table.Render()
	events.App.Dump(len(feed.Rows))
	return writeCounters(w, feed)
}

func writeCounters(w io.Writer, feed board.Feed) error {
	_, err := fmt.Fprintf(w, "posting as %s · total %d · mine %d\n", feed.User, feed.Total, feed.Own)
	return err
}

// fixedColumnsWidth estimates the cells used by every column except the
// message, including padding.
func fixedColumnsWidth(rows []board.Row) int {
	widths := []int{len("ID"), len("Author"), len("Time"), len("Owner")}
	for _, row := range rows {
		cells := []string{strconv.FormatInt(row.ID, 10), row.AuthorLabel(), row.CreatedAt, row.Owner}
		for i, cell := range cells {
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	return total + 2
}
