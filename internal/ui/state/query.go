package state

import "unicode"

// Query holds the live search buffer and its editing cursor.
type Query struct {
	Text   string
	Cursor int
}

// CursorPos returns the rune offset of the query cursor, clamped to the text.
func (q *Query) CursorPos() int {
	runes := []rune(q.Text)
	if q.Cursor < 0 {
		return 0
	}
	if q.Cursor > len(runes) {
		return len(runes)
	}
	return q.Cursor
}

// Set replaces the query text and cursor position.
func (q *Query) Set(text string, cursor int) {
	q.Text = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	q.Cursor = cursor
}

// Insert inserts text at the cursor position.
func (q *Query) Insert(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	runes := []rune(q.Text)
	pos := q.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	q.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes a rune before the cursor.
func (q *Query) DeleteRuneBackward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	q.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (q *Query) DeleteWordBackward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	q.Set(string(updated), i)
	return true
}

// Clear empties the query.
func (q *Query) Clear() bool {
	if q.Text == "" && q.Cursor == 0 {
		return false
	}
	q.Set("", 0)
	return true
}

// MoveCursorStart moves the cursor to the start of the query.
func (q *Query) MoveCursorStart() bool {
	if q.CursorPos() == 0 {
		return false
	}
	q.Cursor = 0
	return true
}

// MoveCursorEnd moves the cursor to the end of the query.
func (q *Query) MoveCursorEnd() bool {
	end := len([]rune(q.Text))
	if q.CursorPos() == end {
		return false
	}
	q.Cursor = end
	return true
}

// MoveCursorRuneBackward moves the cursor one rune backward.
func (q *Query) MoveCursorRuneBackward() bool {
	if q.CursorPos() == 0 {
		return false
	}
	q.Cursor = q.CursorPos() - 1
	return true
}

// MoveCursorRuneForward moves the cursor one rune forward.
func (q *Query) MoveCursorRuneForward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos >= len(runes) {
		return false
	}
	q.Cursor = pos + 1
	return true
}
