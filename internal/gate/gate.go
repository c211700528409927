// Package gate implements the one-free-read policy for anonymous readers.
//
// The gate is advisory rendering-layer access control, not a security
// boundary: the flag lives in the visitor's own storage (a cookie in the
// HTTP layer), so a motivated client can clear it. That trust model is
// deliberate and must be preserved.
package gate

const freeReadKey = "firstFreeReadUsed"

// Storage is a single-flag persistent store scoped to one visitor, with
// localStorage-like semantics. A nil Storage behaves as "flag never set".
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Gate decides whether a visitor may read one more gated article
type Gate struct {
	store Storage
}

// New creates a Gate over the given visitor storage. store may be nil, in
// which case the gate is permissive and marking is a no-op.
func New(store Storage) *Gate {
	return &Gate{store: store}
}

// CanRead reports whether the caller may read a gated article.
// Authenticated actors may always read; anonymous visitors may read only
// while their free-read flag is unset.
func (g *Gate) CanRead(authenticated bool) bool {
	if authenticated {
		return true
	}
	return !g.HasFreeReadUsed()
}

// HasFreeReadUsed reports whether the visitor's single free read is spent
func (g *Gate) HasFreeReadUsed() bool {
	if g.store == nil {
		return false
	}
	v, ok := g.store.Get(freeReadKey)
	return ok && v == "true"
}

// MarkFreeReadUsed records that the visitor has consumed their free read.
// Callers must invoke this before delivering gated content to an anonymous
// visitor, so a second gated read in the same session is denied.
func (g *Gate) MarkFreeReadUsed() {
	if g.store == nil {
		return
	}
	g.store.Set(freeReadKey, "true")
}

// Reset clears the flag, restoring the one free read
func (g *Gate) Reset() {
	if g.store == nil {
		return
	}
	g.store.Remove(freeReadKey)
}

// MemoryStorage is an in-process Storage, used in tests and anywhere no
// real visitor storage exists.
type MemoryStorage struct {
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.values[key] = value
}

func (m *MemoryStorage) Remove(key string) {
	delete(m.values, key)
}
