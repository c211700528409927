package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_AnonymousSingleFreeRead(t *testing.T) {
	g := New(NewMemoryStorage())

	assert.True(t, g.CanRead(false), "first anonymous read should be allowed")

	g.MarkFreeReadUsed()

	assert.False(t, g.CanRead(false), "second anonymous read should be denied")
	assert.True(t, g.HasFreeReadUsed())
}

func TestGate_AuthenticatedAlwaysAllowed(t *testing.T) {
	g := New(NewMemoryStorage())

	assert.True(t, g.CanRead(true))

	g.MarkFreeReadUsed()

	assert.True(t, g.CanRead(true), "flag state must not affect authenticated reads")
}

func TestGate_Reset(t *testing.T) {
	g := New(NewMemoryStorage())

	g.MarkFreeReadUsed()
	assert.False(t, g.CanRead(false))

	g.Reset()

	assert.True(t, g.CanRead(false), "reset should restore the free read")
	assert.False(t, g.HasFreeReadUsed())
}

func TestGate_MarkIsIdempotent(t *testing.T) {
	g := New(NewMemoryStorage())

	g.MarkFreeReadUsed()
	g.MarkFreeReadUsed()

	assert.False(t, g.CanRead(false))

	g.Reset()
	assert.True(t, g.CanRead(false), "one reset should clear repeated marks")
}

func TestGate_NilStorage(t *testing.T) {
	// Unavailable storage reads as "flag not set"
	g := New(nil)

	assert.True(t, g.CanRead(false))
	g.MarkFreeReadUsed()
	assert.True(t, g.CanRead(false), "marking without storage is a no-op")
	assert.False(t, g.HasFreeReadUsed())
	g.Reset()
}

func TestGate_StoragesAreIndependent(t *testing.T) {
	first := New(NewMemoryStorage())
	second := New(NewMemoryStorage())

	first.MarkFreeReadUsed()

	assert.False(t, first.CanRead(false))
	assert.True(t, second.CanRead(false), "one visitor's flag must not leak to another")
}

func TestMemoryStorage_GarbageValueIgnored(t *testing.T) {
	store := NewMemoryStorage()
	store.Set("firstFreeReadUsed", "yes-ish")

	g := New(store)
	assert.True(t, g.CanRead(false), "only the literal true value spends the read")
}
