package ui

import (
	"fmt"

	"github.com/atomicstack/totem/internal/logging/events"
	"github.com/atomicstack/totem/internal/vault"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// Quit is accepted from every state.
	switch keyMsg.String() {
	case "ctrl+c", "ctrl+d":
		return m.quit()
	}
	switch m.focus {
	case FocusPopup:
		return m.handlePopupKey(keyMsg)
	case FocusSearchBar:
		return m.handleSearchKey(keyMsg)
	}
	if m.page != PageMain {
		// Any navigation input leaves the QR code and info pages.
		m.page = PageMain
		events.UI.Page(m.page.String())
		return nil
	}
	return m.handleMainKey(keyMsg)
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		m.confirmPopup()
	case "n", "esc":
		m.cancelPopup()
	}
	return nil
}

func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		return m.quit()
	case "ctrl+f":
		m.focus = FocusSearchBar
		m.searchCursorDirty = true
		events.UI.Focus(m.focus.String())
		return nil
	case "ctrl+w":
		m.clearQuery()
		return nil
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		if m.view.MoveCursorPageUp(m.maxVisibleRows()) {
			events.UI.Cursor(m.view.Cursor)
		}
		m.syncViewport()
	case "pgdown":
		if m.view.MoveCursorPageDown(m.maxVisibleRows()) {
			events.UI.Cursor(m.view.Cursor)
		}
		m.syncViewport()
	case "home":
		if m.view.MoveCursorHome() {
			events.UI.Cursor(m.view.Cursor)
		}
		m.syncViewport()
	case "end":
		if m.view.MoveCursorEnd() {
			events.UI.Cursor(m.view.Cursor)
		}
		m.syncViewport()
	case "enter":
		m.copySelectedCode()
	case "k":
		if _, ok := m.view.Selected(); ok {
			m.page = PageQRCode
			events.UI.Page(m.page.String())
		}
	case "i":
		m.page = PageInfo
		events.UI.Page(m.page.String())
	case "+":
		m.adjustCounter(+1)
	case "-":
		m.adjustCounter(-1)
	case "d":
		m.requestDelete()
	case "e":
		m.startEditForm()
	case "a":
		m.startAddForm()
	}
	return nil
}

func (m *Model) moveCursorUp() {
	if m.view.MoveCursorUp() {
		events.UI.Cursor(m.view.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorDown() {
	if m.view.MoveCursorDown() {
		events.UI.Cursor(m.view.Cursor)
	}
	m.syncViewport()
}

func (m *Model) copySelectedCode() {
	row, ok := m.view.Selected()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(row.Code); err != nil {
		m.errMsg = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.errMsg = ""
	m.labelText = "Copied to clipboard"
	m.printPercentage = false
	events.UI.ClipboardCopy(row.Issuer, row.Label)
}

// adjustCounter moves the HOTP counter of the selected record and forces a
// rebuild so the displayed code tracks the new counter immediately.
func (m *Model) adjustCounter(delta int) {
	index := m.view.SelectedStoreIndex()
	if index < 0 {
		return
	}
	records := m.store.Elements()
	if index >= len(records) {
		return
	}
	if records[index].Type != vault.TypeHOTP {
		m.setInfo("Selected record is not counter-based")
		return
	}
	var err error
	if delta > 0 {
		err = m.store.IncrementCounter(index)
	} else {
		err = m.store.DecrementCounter(index)
	}
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.tick(true)
}

func (m *Model) requestDelete() {
	row, ok := m.view.Selected()
	if !ok {
		return
	}
	text := fmt.Sprintf("Delete %s (%s)? [y/n]", row.Label, row.Issuer)
	if row.Issuer == "" {
		text = fmt.Sprintf("Delete %s? [y/n]", row.Label)
	}
	m.presentPopup(deleteAction{index: row.Index}, text)
}

func (m *Model) clearQuery() {
	if m.view.Query.Text == "" {
		return
	}
	m.view.SetQuery(m.store, "", 0)
	m.searchCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Cleared()
	m.syncViewport()
}
