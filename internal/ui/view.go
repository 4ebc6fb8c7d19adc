package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	// popupWidthPct and popupHeightPct size the confirmation overlay as a
	// fraction of the viewport.
	popupWidthPct  = 60
	popupHeightPct = 20

	minPopupWidth  = 20
	minPopupHeight = 5
)

const infoText = `Press:
+   increment the HOTP counter
-   decrement the HOTP counter
k   show the QR code of the selected entry
a   add a new entry
e   edit the selected entry
d   delete the selected entry
enter   copy the code to the clipboard
ctrl+f  search entries
ctrl+w  clear the search query
q, ctrl+d, esc   exit

Press any key to go back.`

// View implements tea.Model. Rendering is a pure read of the session state:
// calling it twice without an intervening update yields identical output.
func (m *Model) View() string {
	switch m.page {
	case PageQRCode:
		return m.viewQRCodePage()
	case PageInfo:
		return m.viewInfoPage()
	}
	if m.form != nil {
		return m.viewForm()
	}
	return m.viewMainPage()
}

func (m *Model) viewMainPage() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	lines := make([]string, 0, 16)
	lines = append(lines, styles.Title.Render(m.title))
	lines = append(lines, m.renderSearchBar(width)...)
	lines = append(lines, m.renderTable(width)...)
	lines = append(lines, "", m.renderGauge(width))

	var statusLine string
	if m.errMsg != "" {
		statusLine = styles.Error.Render(fmt.Sprintf("Error: %s", m.errMsg))
	} else if info := m.currentInfo(); info != "" {
		statusLine = styles.Info.Render(info)
	}
	lines = append(lines, statusLine)
	if m.showFooter {
		lines = append(lines, styles.Footer.Render("↑/↓ move  enter copy  k qr  i help  d delete  e edit  a add  q quit"))
	}

	base := strings.Join(lines, "\n")
	if m.focus == FocusPopup && m.popup != nil {
		height := m.height
		if height <= 0 {
			height = len(lines)
		}
		return m.overlayPopup(base, width, height)
	}
	return base
}

func (m *Model) renderSearchBar(width int) []string {
	border := styles.SearchBorder
	if m.focus == FocusSearchBar {
		border = styles.SearchBorderFocus
	}
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	content := m.searchBarContent()
	if w := lipgloss.Width(content); w > inner {
		content = truncate.StringWithTail(content, uint(inner-1), "…")
	}
	box := border.Width(inner).Render(content)
	return strings.Split(box, "\n")
}

// columnWidths mirrors the original layout: narrow id column, issuer and
// label split the middle, the code takes the rest.
func columnWidths(width int) (id, issuer, label, code int) {
	id = 4
	rest := width - id - 3 // column gaps
	if rest < 12 {
		rest = 12
	}
	issuer = rest * 35 / 95
	label = rest * 35 / 95
	code = rest - issuer - label
	return id, issuer, label, code
}

func cell(text string, width int) string {
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}
	return runewidth.FillRight(text, width)
}

func (m *Model) renderTable(width int) []string {
	idW, issuerW, labelW, codeW := columnWidths(width)
	header := cell("Id", idW) + " " + cell("Issuer", issuerW) + " " + cell("Label", labelW) + " " + cell("OTP", codeW)
	out := []string{styles.TableHeader.Render(header)}

	m.syncViewport()
	rows := m.view.Rows
	start := 0
	if maxRows := m.maxVisibleRows(); maxRows > 0 && len(rows) > maxRows {
		start = m.view.ViewportOffset
		if start+maxRows > len(rows) {
			start = len(rows) - maxRows
		}
		if start < 0 {
			start = 0
		}
		rows = rows[start : start+maxRows]
	}
	if len(m.view.Rows) == 0 {
		msg := "(no entries)"
		if m.view.Query.Text != "" {
			msg = fmt.Sprintf("No matches for %q", m.view.Query.Text)
		}
		out = append(out, styles.Info.Render(msg))
		return out
	}
	for i, row := range rows {
		idx := start + i
		text := cell(strconv.Itoa(row.Index+1), idW) + " " +
			cell(row.Issuer, issuerW) + " " +
			cell(row.Label, labelW) + " " +
			cell(row.Code, codeW)
		style := styles.Row
		indicator := "  "
		if idx == m.view.Cursor {
			style = styles.SelectedRow
			indicator = styles.RowIndicator.Render("▌") + " "
		}
		out = append(out, indicator+style.Render(text))
	}
	return out
}

// renderGauge shows the rotation-window position, or a caller-supplied label
// after actions such as a clipboard copy.
func (m *Model) renderGauge(width int) string {
	gaugeWidth := width - 8
	if gaugeWidth < 10 {
		gaugeWidth = 10
	}
	m.gauge.Width = gaugeWidth
	bar := m.gauge.ViewAs(float64(m.clock.Progress()) / 100)
	label := m.labelText
	if m.printPercentage {
		label = fmt.Sprintf("%3d%%", m.clock.Progress())
	}
	return bar + " " + styles.GaugeLabel.Render(label)
}

// overlayPopup composites the confirmation panel over the main layout,
// clearing the region beneath it.
func (m *Model) overlayPopup(base string, width, height int) string {
	pw := width * popupWidthPct / 100
	ph := height * popupHeightPct / 100
	if pw < minPopupWidth {
		pw = minPopupWidth
	}
	if pw > width {
		pw = width
	}
	if ph < minPopupHeight {
		ph = minPopupHeight
	}
	if ph > height {
		ph = height
	}

	innerW := pw - 2
	innerH := ph - 2
	body := styles.PopupTitle.Render("Alert") + "\n\n" +
		styles.PopupText.Width(innerW).Align(lipgloss.Center).Render(m.popup.text)
	inner := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, body)
	panel := styles.PopupBorder.Render(inner)

	return overlayCenter(base, panel, width, height)
}

// overlayCenter splices the panel into the middle of the base frame,
// replacing whatever was underneath.
func overlayCenter(base, panel string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(panel, "\n")
	pw := lipgloss.Width(panel)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	x := (width - pw) / 2
	if x < 0 {
		x = 0
	}
	y := (len(baseLines) - len(panelLines)) / 2
	if y < 0 {
		y = 0
	}
	for i, panelLine := range panelLines {
		if y+i >= len(baseLines) {
			break
		}
		line := baseLines[y+i]
		if lw := lipgloss.Width(line); lw < width {
			line += strings.Repeat(" ", width-lw)
		}
		if plw := lipgloss.Width(panelLine); plw < pw {
			panelLine += strings.Repeat(" ", pw-plw)
		}
		left := ansi.Cut(line, 0, x)
		right := ansi.Cut(line, x+pw, width)
		baseLines[y+i] = left + panelLine + right
	}
	return strings.Join(baseLines, "\n")
}

func (m *Model) viewQRCodePage() string {
	row, ok := m.view.Selected()
	if !ok {
		return m.framedPage("Nope", "No element is selected")
	}
	code, err := m.store.VisualCode(row.Index)
	if err != nil {
		return m.framedPage("Nope", "No element is selected")
	}
	title := row.Label
	if row.Issuer != "" {
		title = row.Issuer + " - " + row.Label
	}
	return m.framedPage(title, code)
}

func (m *Model) viewInfoPage() string {
	return m.framedPage(m.title, infoText)
}

// framedPage renders a full-screen bordered paragraph, the layout shared by
// the QR code and info pages.
func (m *Model) framedPage(title, body string) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	lines := []string{
		styles.Title.Render(title),
		"",
	}
	for _, line := range strings.Split(body, "\n") {
		if lipgloss.Width(line) > width {
			line = truncate.StringWithTail(line, uint(width-1), "…")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	// title + search box (3) + table header + blank + gauge + status
	used := 8
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}
