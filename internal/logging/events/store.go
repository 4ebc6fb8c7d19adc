package events

import "github.com/atomicstack/totem/internal/logging"

type StoreTracer struct{}

type ClockTracer struct{}

var (
	Store = StoreTracer{}
	Clock = ClockTracer{}
)

func (StoreTracer) Added(issuer, label string) {
	logging.Trace("store.add", map[string]interface{}{"issuer": issuer, "label": label})
}

func (StoreTracer) Edited(index int) {
	logging.Trace("store.edit", map[string]interface{}{"index": index})
}

func (StoreTracer) Deleted(index int) {
	logging.Trace("store.delete", map[string]interface{}{"index": index})
}

func (StoreTracer) Counter(index int, counter uint64) {
	logging.Trace("store.counter", map[string]interface{}{"index": index, "counter": counter})
}

func (StoreTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"op": op, "error": err.Error()})
}

func (ClockTracer) Wrap(progress int) {
	logging.Trace("clock.wrap", map[string]interface{}{"progress": progress})
}

func (ClockTracer) Forced() {
	logging.Trace("clock.forced", nil)
}
