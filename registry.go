package vtable

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Key identifies one specialised table: the concrete value type paired with
// the kind of table it was specialised for. Two different value types, or
// two different table kinds for the same value type, never share a table.
type Key struct {
	Value reflect.Type
	Table reflect.Type
}

type record struct {
	id    uuid.UUID
	table any
}

// Registry deduplicates operation tables per Key. A table is built on first
// request and retained for the registry's lifetime; for the singleton that
// means the remainder of the process. Entries are never evicted — the
// number of distinct keys is bounded by the program's static
// instantiations, not by runtime data volume. Tables are immutable once
// built and safe to share across goroutines without further locking.
type Registry struct {
	mu     sync.RWMutex
	logger *zap.Logger
	tables map[Key]*record
}

// NewRegistry returns an empty registry whose entries live as long as the
// registry itself. Most callers want the singleton reached through Resolve;
// scoped registries exist for tests and for embedders that need isolation.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger: logger,
		tables: make(map[Key]*record),
	}
}

var singleton = sync.OnceValue(func() *Registry {
	logger, _ := zap.NewProduction()
	return NewRegistry(logger)
})

// Singleton returns the process-wide registry, creating it on first use.
func Singleton() *Registry {
	return singleton()
}

// GetOrCreate returns the table registered under key, invoking specialise
// to build one if the key is absent. The whole check-then-insert sequence
// runs under one critical section, so concurrent callers for the same key
// observe a single winner: specialise runs at most once per key per
// registry, and every caller receives the same table.
func (r *Registry) GetOrCreate(key Key, specialise func() any) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.tables[key]; ok {
		return rec.table
	}
	rec := &record{id: uuid.New(), table: specialise()}
	r.tables[key] = rec
	r.logger.Debug("specialised vtable",
		zap.Stringer("valueType", key.Value),
		zap.Stringer("tableType", key.Table),
		zap.String("recordId", rec.id.String()),
	)
	return rec.table
}

// Lookup probes for an existing table without building one.
func (r *Registry) Lookup(key Key) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.tables[key]
	if !ok {
		return nil, false
	}
	return rec.table, true
}
