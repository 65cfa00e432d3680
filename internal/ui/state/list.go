package state

import (
	"github.com/atomicstack/minitwitter/internal/board"
)

// List holds the message list state: rows from the last render, the search
// query with its caret, the highlighted row, and the scroll position.
type List struct {
	Rows           []board.Row
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList returns an empty list with no remembered cursor.
func NewList() *List {
	return &List{LastCursor: -1}
}

// SetRows replaces the rows after a render. With an active filter the
// cursor jumps to the best match; when a filter was just cleared the cursor
// returns to where it was before typing started.
func (l *List) SetRows(rows []board.Row) {
	prevOffset := l.ViewportOffset
	l.Rows = rows
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	switch {
	case l.FilterActive():
		if idx := BestMatchIndex(l.Rows, l.Filter); idx >= 0 {
			l.Cursor = idx
		}
	case l.LastCursor >= 0:
		l.Cursor = l.LastCursor
		l.LastCursor = -1
	}
	l.clampCursor()
	if prevOffset < 0 || prevOffset > len(l.Rows)-1 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}

// Selected returns the highlighted row.
func (l *List) Selected() (board.Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return board.Row{}, false
	}
	return l.Rows[l.Cursor], true
}

// SelectID moves the cursor to the row with id, if present.
func (l *List) SelectID(id int64) bool {
	for i, row := range l.Rows {
		if row.ID == id {
			l.Cursor = i
			return true
		}
	}
	return false
}

func (l *List) clampCursor() {
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
}
