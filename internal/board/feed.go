package board

import (
	"strings"

	"github.com/samber/lo"
)

const (
	PlaceholderNoMessages = "No messages yet. Be the first!"
	PlaceholderNoResults  = "No messages found"

	// OwnMarker is appended to the author of rows owned by the session.
	OwnMarker = " (You)"
)

// Row is a message as seen by the current session.
type Row struct {
	Message
	Own bool
}

// AuthorLabel is the author with the own-row marker applied.
func (r Row) AuthorLabel() string {
	if r.Own {
		return r.Author + OwnMarker
	}
	return r.Author
}

// Feed is everything a front-end needs to draw the board once.
type Feed struct {
	Filter string
	User   string
	Rows   []Row
	// Total and Own count the whole board, ignoring Filter.
	Total int
	Own   int
}

// Empty reports whether no rows survived filtering.
func (f Feed) Empty() bool {
	return len(f.Rows) == 0
}

// Placeholder is the text shown instead of rows when the feed is empty.
func (f Feed) Placeholder() string {
	if !f.Empty() {
		return ""
	}
	if f.Filter != "" {
		return PlaceholderNoResults
	}
	return PlaceholderNoMessages
}

// IndexOf returns the row index of message id, or -1.
func (f Feed) IndexOf(id int64) int {
	_, idx, ok := lo.FindIndexOf(f.Rows, func(r Row) bool { return r.ID == id })
	if !ok {
		return -1
	}
	return idx
}

// BuildFeed filters messages by a case-insensitive substring of text or
// author and marks rows owned by user. An empty filter keeps everything.
func BuildFeed(messages []Message, filter, user string) Feed {
	retained := messages
	if filter != "" {
		needle := strings.ToLower(filter)
		retained = lo.Filter(messages, func(m Message, _ int) bool {
			return strings.Contains(strings.ToLower(m.Text), needle) ||
				strings.Contains(strings.ToLower(m.Author), needle)
		})
	}
	return Feed{
		Filter: filter,
		User:   user,
		Rows: lo.Map(retained, func(m Message, _ int) Row {
			return Row{Message: m, Own: m.OwnedBy(user)}
		}),
		Total: len(messages),
		Own:   lo.CountBy(messages, func(m Message) bool { return m.OwnedBy(user) }),
	}
}
