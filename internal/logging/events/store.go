package events

import "github.com/atomicstack/minitwitter/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(backend, path string) {
	logging.Trace("store.open", map[string]interface{}{"backend": backend, "path": path})
}

// Corrupt records a persisted message payload that could not be decoded and
// was treated as an empty board.
func (StoreTracer) Corrupt(key string, size int, err error) {
	payload := map[string]interface{}{"key": key, "bytes": size}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.corrupt", payload)
}

func (StoreTracer) Append(id int64, owner string) {
	logging.Trace("store.append", map[string]interface{}{"id": id, "owner": owner})
}

func (StoreTracer) Delete(id int64, found bool) {
	logging.Trace("store.delete", map[string]interface{}{"id": id, "found": found})
}

func (StoreTracer) DeleteOwner(owner string, removed int) {
	logging.Trace("store.delete-owner", map[string]interface{}{"owner": owner, "removed": removed})
}

func (StoreTracer) SetUser(name string) {
	logging.Trace("store.user", map[string]interface{}{"name": name})
}
