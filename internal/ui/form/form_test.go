package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/minitwitter/internal/board"
)

func typeText(update func(tea.Msg), text string) {
	for _, r := range text {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestIdentityFormPrefillsAndSubmits(t *testing.T) {
	req := require.New(t)
	f := NewIdentityForm("Alice")
	req.Equal("Alice", f.Value())
	req.Contains(f.InputView(), "Alice")

	_, done, cancel := f.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	req.False(done)
	req.False(cancel)
	req.Empty(f.Value())

	typeText(func(m tea.Msg) { f.Update(m) }, "  Bob ")
	_, done, cancel = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	req.True(done)
	req.False(cancel)
	req.Equal("Bob", f.Value())
}

func TestIdentityFormEscapeCancelsAndEditClearsError(t *testing.T) {
	req := require.New(t)
	f := NewIdentityForm("")
	f.SetError("Name cannot be empty")
	req.Equal("Name cannot be empty", f.Error())

	typeText(func(m tea.Msg) { f.Update(m) }, "x")
	req.Empty(f.Error())

	_, done, cancel := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	req.False(done)
	req.True(cancel)
}

func TestConfirmFormKeys(t *testing.T) {
	cases := []struct {
		key    tea.KeyMsg
		done   bool
		cancel bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false, false},
	}
	for _, tc := range cases {
		f := NewConfirmForm("Delete all your messages?")
		_, done, cancel := f.Update(tc.key)
		require.Equal(t, tc.done, done, tc.key.String())
		require.Equal(t, tc.cancel, cancel, tc.key.String())
	}
}

func TestComposeRoutesKeysToFocusedField(t *testing.T) {
	req := require.New(t)
	c := NewCompose()

	typeText(func(m tea.Msg) { c.Update(m) }, "ignored")
	author, text := c.Values()
	req.Empty(author)
	req.Empty(text)

	c.Focus(board.FieldAuthor)
	typeText(func(m tea.Msg) { c.Update(m) }, "Ann")
	c.Focus(board.FieldText)
	req.Equal(board.FieldText, c.Focused())
	typeText(func(m tea.Msg) { c.Update(m) }, "héllo")

	author, text = c.Values()
	req.Equal("Ann", author)
	req.Equal("héllo", text)
	req.Equal(5, c.Count())

	c.Focus("")
	req.Empty(c.Focused())
}

func TestComposeCounterLevels(t *testing.T) {
	c := NewCompose()
	cases := []struct {
		n    int
		want CounterLevel
	}{
		{0, CounterOK},
		{200, CounterOK},
		{201, CounterWarn},
		{250, CounterWarn},
		{251, CounterOver},
		{281, CounterOver},
	}
	for _, tc := range cases {
		c.SetValues("a", strings.Repeat("x", tc.n))
		require.Equal(t, tc.want, c.CounterLevel(), "n=%d", tc.n)
	}
}

func TestComposeErrorsAndReset(t *testing.T) {
	req := require.New(t)
	c := NewCompose()
	c.SetErrors(map[string]string{board.FieldAuthor: "Enter a name", board.FieldText: "Enter a message", board.FieldName: "ignored"})
	req.Equal("Enter a name", c.Error(board.FieldAuthor))
	req.Empty(c.Error(board.FieldName))

	c.Focus(board.FieldText)
	typeText(func(m tea.Msg) { c.Update(m) }, "x")
	req.Empty(c.Error(board.FieldText))
	req.Equal("Enter a name", c.Error(board.FieldAuthor))

	c.Reset()
	author, text := c.Values()
	req.Empty(author)
	req.Empty(text)
	req.Zero(c.Count())
	req.Empty(c.Error(board.FieldAuthor))
}
