package state

// View is the search-derived projection of the credential store plus the
// selected-row cursor. It is a pure cache: Rebuild must be called whenever
// the query changes, the store mutates, or the refresh clock wraps.
type View struct {
	Rows           []Row
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Query          Query
}

// NewView builds an empty view with no selection.
func NewView() *View {
	return &View{Cursor: -1, LastCursor: -1}
}

// Rebuild re-derives the rows from the store and clamps the selection.
func (v *View) Rebuild(src CodeSource) {
	v.Rows = BuildRows(src, v.Query.Text)
	v.clampCursor()
}

// SetQuery updates the search buffer, rebuilds, and places the cursor on the
// best match. Clearing the query restores the pre-search selection when it
// still exists.
func (v *View) SetQuery(src CodeSource, text string, cursor int) {
	trimmedPrev := v.Query.Text
	v.Query.Set(text, cursor)
	if v.Query.Text != "" && trimmedPrev == "" {
		v.LastCursor = v.Cursor
	}
	v.Rebuild(src)
	if v.Query.Text != "" {
		if idx := BestMatchIndex(v.Rows, v.Query.Text); idx >= 0 {
			v.Cursor = idx
		}
		return
	}
	if trimmedPrev != "" {
		if v.LastCursor >= 0 && v.LastCursor < len(v.Rows) {
			v.Cursor = v.LastCursor
		}
		v.LastCursor = -1
	}
}

// clampCursor keeps the selection inside the rebuilt sequence; an empty
// sequence clears it entirely.
func (v *View) clampCursor() {
	if len(v.Rows) == 0 {
		v.Cursor = -1
		v.ViewportOffset = 0
		return
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= len(v.Rows) {
		v.Cursor = len(v.Rows) - 1
	}
	if v.ViewportOffset > len(v.Rows)-1 {
		v.ViewportOffset = 0
	}
}

// Selected returns the row under the cursor, if any.
func (v *View) Selected() (Row, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Rows) {
		return Row{}, false
	}
	return v.Rows[v.Cursor], true
}

// SelectedStoreIndex resolves the selection to its store index, -1 when none.
func (v *View) SelectedStoreIndex() int {
	row, ok := v.Selected()
	if !ok {
		return -1
	}
	return row.Index
}

// MoveCursorUp moves the selection up, wrapping at the top.
func (v *View) MoveCursorUp() bool {
	n := len(v.Rows)
	if n == 0 {
		return false
	}
	if v.Cursor > 0 {
		v.Cursor--
	} else {
		v.Cursor = n - 1
	}
	return true
}

// MoveCursorDown moves the selection down, wrapping at the bottom.
func (v *View) MoveCursorDown() bool {
	n := len(v.Rows)
	if n == 0 {
		return false
	}
	if v.Cursor < n-1 {
		v.Cursor++
	} else {
		v.Cursor = 0
	}
	return true
}

// MoveCursorHome moves the selection to the first row.
func (v *View) MoveCursorHome() bool {
	if len(v.Rows) == 0 {
		return false
	}
	old := v.Cursor
	v.Cursor = 0
	return old != v.Cursor
}

// MoveCursorEnd moves the selection to the last row.
func (v *View) MoveCursorEnd() bool {
	n := len(v.Rows)
	if n == 0 {
		return false
	}
	old := v.Cursor
	v.Cursor = n - 1
	return old != v.Cursor
}

// MoveCursorPageUp moves the selection up by the given page size.
func (v *View) MoveCursorPageUp(maxVisible int) bool {
	return v.moveCursorBy(-v.pageSize(maxVisible))
}

// MoveCursorPageDown moves the selection down by the given page size.
func (v *View) MoveCursorPageDown(maxVisible int) bool {
	return v.moveCursorBy(v.pageSize(maxVisible))
}

func (v *View) moveCursorBy(delta int) bool {
	if len(v.Rows) == 0 {
		return false
	}
	old := v.Cursor
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	v.Cursor += delta
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= len(v.Rows) {
		v.Cursor = len(v.Rows) - 1
	}
	return v.Cursor != old
}

func (v *View) pageSize(maxVisible int) int {
	total := len(v.Rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (v *View) EnsureCursorVisible(maxVisible int) {
	if len(v.Rows) == 0 {
		v.ViewportOffset = 0
		return
	}
	v.clampCursor()
	if maxVisible <= 0 {
		v.ViewportOffset = 0
		return
	}
	maxOffset := len(v.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.ViewportOffset > maxOffset {
		v.ViewportOffset = maxOffset
	}
	if v.ViewportOffset < 0 {
		v.ViewportOffset = 0
	}
	if v.Cursor < v.ViewportOffset {
		v.ViewportOffset = v.Cursor
	}
	upper := v.ViewportOffset + maxVisible - 1
	if v.Cursor > upper {
		v.ViewportOffset = v.Cursor - maxVisible + 1
		if v.ViewportOffset < 0 {
			v.ViewportOffset = 0
		}
		if v.ViewportOffset > maxOffset {
			v.ViewportOffset = maxOffset
		}
	}
}
