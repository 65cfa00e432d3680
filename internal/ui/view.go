package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atomicstack/minitwitter/internal/board"
	"github.com/atomicstack/minitwitter/internal/format/table"
	"github.com/atomicstack/minitwitter/internal/logging/events"
	"github.com/atomicstack/minitwitter/internal/ui/form"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	rowIndicator        = "▌"
	deleteEnabledLabel  = "[delete]"
	deleteDisabledLabel = "[  —   ]"
	footerText          = "tab focus · enter post · ↑/↓ move · d delete · ctrl+x clear mine · ctrl+o identity · esc quit"
)

var cellCleaner = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

type rect struct {
	x, y, w, h int
}

func (r rect) empty() bool { return r.w <= 0 || r.h <= 0 }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// frameLayout records where things landed in the last frame.
type frameLayout struct {
	dialog    rect
	rowsTop   int // screen line of the first visible row, -1 without rows
	rowsStart int // list index shown on rowsTop
	rowsShown int
	deleteX   int // first screen column of the delete control, -1 when unknown
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeIdentityForm:
		if m.identityForm != nil {
			return m.viewIdentityForm()
		}
	case ModeConfirmForm:
		if m.confirmForm != nil {
			return m.viewConfirmForm()
		}
	}
	return m.viewBoard()
}

func (m *Model) viewBoard() string {
	m.layout = frameLayout{rowsTop: -1, deleteX: -1}
	top := applyWidth(m.topLines(), m.width)
	bottom := applyWidth(m.bottomLines(), m.width)
	lines := make([]styledLine, 0, len(top)+len(m.list.Rows)+len(bottom)+1)
	lines = append(lines, top...)
	lines = append(lines, m.tableLines(len(top))...)
	lines = append(lines, bottom...)
	lines = limitHeight(lines, m.height, m.width)
	return renderLines(lines)
}

func (m *Model) topLines() []styledLine {
	return []styledLine{
		{text: m.headerLine(), raw: true},
		{},
		{text: m.composeLine("Name", board.FieldAuthor, m.compose.AuthorView(), ""), raw: true},
		{text: m.composeLine("Message", board.FieldText, m.compose.TextView(), m.counterView()), raw: true},
		{},
		{text: m.filterPrompt(), raw: true},
		{},
	}
}

func (m *Model) bottomLines() []styledLine {
	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if info := m.currentInfo(); info != "" {
		status = styledLine{text: info, style: styles.Info}
	}
	lines := []styledLine{status}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerText, style: styles.Footer})
	}
	return lines
}

func (m *Model) headerLine() string {
	return render(styles.Title, appTitle) +
		"  " + render(styles.Identity, "posting as "+m.ctrl.Session().User()) +
		"  " + render(styles.Counters, fmt.Sprintf("total %d · mine %d", m.feed.Total, m.feed.Own))
}

func (m *Model) composeLine(label, field, input, extra string) string {
	labelStyle := styles.Label
	if m.compose.Focused() == field {
		labelStyle = styles.FocusedLabel
	}
	line := render(labelStyle, fmt.Sprintf("%-8s", label)) + " " + input
	if extra != "" {
		line += "  " + extra
	}
	if err := m.compose.Error(field); err != "" {
		line += "  " + render(styles.FieldError, err)
	}
	return line
}

func (m *Model) counterView() string {
	style := styles.CounterOK
	switch m.compose.CounterLevel() {
	case form.CounterWarn:
		style = styles.CounterWarn
	case form.CounterOver:
		style = styles.CounterOver
	}
	return render(style, fmt.Sprintf("%d/%d", m.compose.Count(), board.MaxTextLength))
}

func deleteLabel(row board.Row) string {
	if row.Own {
		return deleteEnabledLabel
	}
	return deleteDisabledLabel
}

func (m *Model) tableLines(offset int) []styledLine {
	if m.feed.Empty() {
		return applyWidth([]styledLine{{text: m.feed.Placeholder(), style: styles.Placeholder}}, m.width)
	}
	rows := m.list.Rows
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, []string{"Author", "Message", "Time", ""})
	for _, row := range rows {
		cells = append(cells, []string{
			cellCleaner.Replace(row.AuthorLabel()),
			cellCleaner.Replace(row.Text),
			row.CreatedAt,
			deleteLabel(row),
		})
	}
	prefixWidth := ansi.StringWidth(rowIndicator + " ")
	if m.width > 0 {
		table.Fit(cells, 1, m.width-prefixWidth)
	}
	formatted := table.Format(cells, nil)

	lines := make([]styledLine, 0, len(rows)+1)
	lines = append(lines, styledLine{text: strings.Repeat(" ", prefixWidth) + formatted[0], style: styles.Header})

	start, end := 0, len(rows)
	if maxRows := m.maxVisibleRows(); maxRows > 0 && len(rows) > maxRows {
		start = m.list.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxRows > len(rows) {
			start = len(rows) - maxRows
			m.list.ViewportOffset = start
		}
		end = start + maxRows
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.rowLine(rows[i], formatted[i+1], i == m.list.Cursor))
	}

	m.layout.rowsTop = offset + 1
	m.layout.rowsStart = start
	m.layout.rowsShown = end - start
	m.layout.deleteX = prefixWidth + ansi.StringWidth(formatted[0]) - ansi.StringWidth(deleteEnabledLabel)
	return applyWidth(lines, m.width)
}

func (m *Model) rowLine(row board.Row, formatted string, selected bool) styledLine {
	label := deleteLabel(row)
	body := strings.TrimSuffix(formatted, label)
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	deleteStyle := styles.DeleteDisabled
	if row.Own {
		lineStyle = styles.OwnItem
		deleteStyle = styles.DeleteEnabled
	}
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := render(indicatorStyle, rowIndicator) + render(lineStyle, " "+body) + render(deleteStyle, label)
	return styledLine{text: text, raw: true}
}

// viewDialog centres body in a bordered box and remembers the box bounds so
// clicks outside it can dismiss the dialog.
func (m *Model) viewDialog(body string) string {
	box := body
	if styles.Dialog != nil {
		box = styles.Dialog.Render(body)
	}
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	if m.width <= 0 || m.height <= 0 {
		m.layout.dialog = rect{w: w, h: h}
		return box
	}
	m.layout.dialog = rect{x: centerOffset(m.width, w), y: centerOffset(m.height, h), w: w, h: h}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// centerOffset mirrors how lipgloss.Place splits the gap around centred
// content.
func centerOffset(total, size int) int {
	gap := total - size
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*float64(lipgloss.Center)))
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.handleListNavigation("up", false)
	case tea.MouseButtonWheelDown:
		m.handleListNavigation("down", false)
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		idx, ok := m.rowAt(ev.Y)
		if !ok {
			return nil
		}
		m.list.Cursor = idx
		events.UI.Cursor(idx)
		focusCmd := m.setFocus(focusList)
		if m.layout.deleteX >= 0 && ev.X >= m.layout.deleteX {
			return tea.Batch(focusCmd, m.deleteSelected())
		}
		return focusCmd
	}
	return nil
}

func (m *Model) rowAt(y int) (int, bool) {
	if m.layout.rowsTop < 0 {
		return 0, false
	}
	i := y - m.layout.rowsTop
	if i < 0 || i >= m.layout.rowsShown {
		return 0, false
	}
	return m.layout.rowsStart + i, true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := len(m.topLines()) + len(m.bottomLines()) + 1 // table header
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func renderCaret(char string) string {
	if char == "" {
		char = " "
	}
	if styles.Cursor != nil {
		return styles.Cursor.Copy().Inline(true).Render(char)
	}
	return lipgloss.NewStyle().Reverse(true).Render(char)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case line.raw:
			out[i] = line.text
		case line.style != nil:
			out[i] = line.style.Render(line.text)
		default:
			out[i] = line.text
		}
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
