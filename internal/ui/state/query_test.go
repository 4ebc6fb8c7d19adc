package state

import "testing"

func TestQueryInsertAtCursor(t *testing.T) {
	q := Query{}
	q.Insert("gihub")
	q.Cursor = 2
	if !q.Insert("t") {
		t.Fatalf("expected insert to report a change")
	}
	if q.Text != "github" || q.Cursor != 3 {
		t.Fatalf("expected %q cursor 3, got %q cursor %d", "github", q.Text, q.Cursor)
	}
}

func TestQueryDeleteRuneBackward(t *testing.T) {
	q := Query{}
	q.Set("abc", 3)
	if !q.DeleteRuneBackward() {
		t.Fatalf("expected deletion")
	}
	if q.Text != "ab" || q.Cursor != 2 {
		t.Fatalf("got %q cursor %d", q.Text, q.Cursor)
	}
	q.Set("abc", 0)
	if q.DeleteRuneBackward() {
		t.Fatalf("expected no-op at start of buffer")
	}
}

func TestQueryDeleteWordBackward(t *testing.T) {
	q := Query{}
	q.Set("hello brave world", 17)
	if !q.DeleteWordBackward() {
		t.Fatalf("expected deletion")
	}
	if q.Text != "hello brave " {
		t.Fatalf("got %q", q.Text)
	}
	if !q.DeleteWordBackward() {
		t.Fatalf("expected deletion of trailing space plus word")
	}
	if q.Text != "hello " {
		t.Fatalf("got %q", q.Text)
	}
}

func TestQueryCursorMotion(t *testing.T) {
	q := Query{}
	q.Set("héllo", 5)
	if !q.MoveCursorStart() || q.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", q.Cursor)
	}
	if q.MoveCursorRuneBackward() {
		t.Fatalf("expected no-op at start")
	}
	if !q.MoveCursorRuneForward() || q.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", q.Cursor)
	}
	if !q.MoveCursorEnd() || q.Cursor != 5 {
		t.Fatalf("expected rune-based end position 5, got %d", q.Cursor)
	}
	if q.MoveCursorRuneForward() {
		t.Fatalf("expected no-op at end")
	}
}

func TestQueryClear(t *testing.T) {
	q := Query{}
	if q.Clear() {
		t.Fatalf("expected clear of empty query to be a no-op")
	}
	q.Set("x", 1)
	if !q.Clear() || q.Text != "" || q.Cursor != 0 {
		t.Fatalf("expected empty query, got %q cursor %d", q.Text, q.Cursor)
	}
}
