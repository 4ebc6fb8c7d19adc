package ui

import (
	"unicode"

	"github.com/atomicstack/totem/internal/logging/events"
	uistate "github.com/atomicstack/totem/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

// applyQueryEdit rebuilds the filtered rows for the edited query; the filter
// recomputes on every keystroke.
func (m *Model) applyQueryEdit(q uistate.Query) {
	m.view.SetQuery(m.store, q.Text, q.Cursor)
	m.searchCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.focus = FocusMain
		events.UI.Focus(m.focus.String())
		return nil
	case "ctrl+u":
		if m.view.Query.Text == "" {
			return nil
		}
		m.applyQueryEdit(uistate.Query{})
		events.Filter.Cleared()
		return nil
	case "ctrl+w":
		q := m.view.Query
		if !q.DeleteWordBackward() {
			return nil
		}
		m.applyQueryEdit(q)
		events.Filter.WordBackspace(q.Text)
		return nil
	case "ctrl+a":
		if m.view.Query.MoveCursorStart() {
			m.searchCursorDirty = true
			events.Filter.Cursor(m.view.Query.Cursor)
		}
		return nil
	case "ctrl+e":
		if m.view.Query.MoveCursorEnd() {
			m.searchCursorDirty = true
			events.Filter.Cursor(m.view.Query.Cursor)
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		q := m.view.Query
		if !q.DeleteRuneBackward() {
			return nil
		}
		m.applyQueryEdit(q)
		events.Filter.Backspace(q.Text)
		return nil
	case tea.KeyLeft:
		if m.view.Query.MoveCursorRuneBackward() {
			m.searchCursorDirty = true
			events.Filter.Cursor(m.view.Query.Cursor)
		}
		return nil
	case tea.KeyRight:
		if m.view.Query.MoveCursorRuneForward() {
			m.searchCursorDirty = true
			events.Filter.Cursor(m.view.Query.Cursor)
		}
		return nil
	case tea.KeySpace:
		q := m.view.Query
		if q.Insert(" ") {
			m.applyQueryEdit(q)
			events.Filter.Append(q.Text)
		}
		return nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		q := m.view.Query
		if q.Insert(string(msg.Runes)) {
			m.applyQueryEdit(q)
			events.Filter.Append(q.Text)
		}
		return nil
	}
	return nil
}

// searchBarContent renders the live query with a blinking caret, or the
// placeholder when the query is empty.
func (m *Model) searchBarContent() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.searchCursor.Style = styles.Cursor.Copy()
	}
	if styles.SearchText != nil {
		m.searchCursor.TextStyle = styles.SearchText.Copy()
	} else {
		m.searchCursor.TextStyle = lipgloss.Style{}
	}
	text := m.view.Query.Text
	if m.focus != FocusSearchBar {
		if text == "" {
			return render(styles.SearchPlaceholder, "Press ctrl+f to search…")
		}
		return render(styles.SearchText, text)
	}
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.SearchPlaceholder != nil {
			m.searchCursor.TextStyle = styles.SearchPlaceholder.Copy()
		}
		caret := m.renderSearchCursor(caretRune)
		return caret + render(styles.SearchPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.view.Query.CursorPos()
	before := render(styles.SearchText, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderSearchCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.SearchText, string(runes[pos+1:]))
	}
	return before + caret + after
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)

	base := m.searchCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.searchCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
