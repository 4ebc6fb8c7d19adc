package events

import "github.com/atomicstack/totem/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Page(page string) {
	logging.Trace("ui.page", map[string]interface{}{"page": page})
}

func (UITracer) Focus(focus string) {
	logging.Trace("ui.focus", map[string]interface{}{"focus": focus})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) PopupOpen(action, text string) {
	logging.Trace("ui.popup-open", map[string]interface{}{"action": action, "text": text})
}

func (UITracer) PopupConfirm(action string) {
	logging.Trace("ui.popup-confirm", map[string]interface{}{"action": action})
}

func (UITracer) PopupCancel(action string) {
	logging.Trace("ui.popup-cancel", map[string]interface{}{"action": action})
}

func (UITracer) ClipboardCopy(issuer, label string) {
	logging.Trace("ui.clipboard-copy", map[string]interface{}{"issuer": issuer, "label": label})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}
