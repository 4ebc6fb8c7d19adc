package events

import "github.com/atomicstack/totem/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Shutdown(dirty bool) {
	logging.Trace("app.shutdown", map[string]interface{}{"dirty": dirty})
}

func (AppTracer) Persisted(path string, records int) {
	logging.Trace("app.persisted", map[string]interface{}{"path": path, "records": records})
}
