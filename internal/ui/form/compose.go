package form

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/minitwitter/internal/board"
)

// Budget thresholds for the character counter.
const (
	CounterWarnAbove = 200
	CounterOverAbove = 250
)

type CounterLevel int

const (
	CounterOK CounterLevel = iota
	CounterWarn
	CounterOver
)

// Compose is the always-visible posting form with an author and a text
// field. Neither field is length-limited while typing so that an over-long
// message reaches validation and gets its error.
type Compose struct {
	author  textinput.Model
	text    textinput.Model
	focused string
	errs    map[string]string
}

func NewCompose() *Compose {
	return &Compose{
		author: newField("Your name"),
		text:   newField("What's happening?"),
		errs:   map[string]string{},
	}
}

func newField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Focus moves keyboard focus to field (board.FieldAuthor or board.FieldText);
// any other value blurs both inputs.
func (c *Compose) Focus(field string) tea.Cmd {
	c.author.Blur()
	c.text.Blur()
	c.focused = ""
	switch field {
	case board.FieldAuthor:
		c.focused = field
		return c.author.Focus()
	case board.FieldText:
		c.focused = field
		return c.text.Focus()
	}
	return nil
}

func (c *Compose) Focused() string { return c.focused }

// Update forwards msg to the focused input. Editing a field clears its
// error.
func (c *Compose) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch c.focused {
	case board.FieldAuthor:
		before := c.author.Value()
		c.author, cmd = c.author.Update(msg)
		if c.author.Value() != before {
			delete(c.errs, board.FieldAuthor)
		}
	case board.FieldText:
		before := c.text.Value()
		c.text, cmd = c.text.Update(msg)
		if c.text.Value() != before {
			delete(c.errs, board.FieldText)
		}
	}
	return cmd
}

// Values returns the raw field contents.
func (c *Compose) Values() (author, text string) {
	return c.author.Value(), c.text.Value()
}

func (c *Compose) SetValues(author, text string) {
	c.author.SetValue(author)
	c.text.SetValue(text)
}

// Count is the live length of the text field in runes.
func (c *Compose) Count() int {
	return utf8.RuneCountInString(c.text.Value())
}

func (c *Compose) CounterLevel() CounterLevel {
	switch n := c.Count(); {
	case n > CounterOverAbove:
		return CounterOver
	case n > CounterWarnAbove:
		return CounterWarn
	}
	return CounterOK
}

// SetErrors replaces the per-field errors.
func (c *Compose) SetErrors(fields map[string]string) {
	c.errs = make(map[string]string, len(fields))
	for k, v := range fields {
		if k == board.FieldAuthor || k == board.FieldText {
			c.errs[k] = v
		}
	}
}

func (c *Compose) Error(field string) string { return c.errs[field] }

// Reset empties both fields and their errors after a successful post.
func (c *Compose) Reset() {
	c.author.Reset()
	c.text.Reset()
	c.errs = map[string]string{}
}

func (c *Compose) AuthorView() string { return c.author.View() }
func (c *Compose) TextView() string   { return c.text.View() }
