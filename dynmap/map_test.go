package dynmap_test

import (
	"testing"

	"github.com/obsidiandynamics/vtable/ched"
	"github.com/obsidiandynamics/vtable/dynmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetDelete(t *testing.T) {
	tokInt := ched.TokenOf[int]()
	tokStr := ched.TokenOf[string]()

	m := dynmap.New[string]()

	_, replaced := m.Put(ched.New(42, tokInt), "answer")
	assert.False(t, replaced)
	_, replaced = m.Put(ched.New(43, tokInt), "not the answer")
	assert.False(t, replaced)
	_, replaced = m.Put(ched.New("foo", tokStr), "bar")
	assert.False(t, replaced)
	assert.Equal(t, 3, m.Len())

	got, ok := m.Get(ched.New(42, tokInt))
	require.True(t, ok)
	assert.Equal(t, "answer", got)

	_, ok = m.Get(ched.New(44, tokInt))
	assert.False(t, ok)

	assert.True(t, m.Delete(ched.New("foo", tokStr)))
	assert.False(t, m.Delete(ched.New("foo", tokStr)))
	assert.Equal(t, 2, m.Len())
}

func TestOverwriteOnExistingKey(t *testing.T) {
	tok := ched.TokenOf[int]()
	m := dynmap.New[string]()

	m.Put(ched.New(42, tok), "first")
	prev, replaced := m.Put(ched.New(42, tok), "second")
	require.True(t, replaced)
	assert.Equal(t, "first", prev)
	assert.Equal(t, 1, m.Len())

	got, ok := m.Get(ched.New(42, tok))
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestKeysOfDifferentTypesNeverCollide(t *testing.T) {
	m := dynmap.New[int]()

	// int 42 and string "42" render identically but must remain distinct
	// keys.
	m.Put(ched.New(42, ched.TokenOf[int]()), 1)
	m.Put(ched.New("42", ched.TokenOf[string]()), 2)
	assert.Equal(t, 2, m.Len())

	byInt, ok := m.Get(ched.New(42, ched.TokenOf[int]()))
	require.True(t, ok)
	byStr, ok := m.Get(ched.New("42", ched.TokenOf[string]()))
	require.True(t, ok)
	assert.Equal(t, 1, byInt)
	assert.Equal(t, 2, byStr)
}

func TestRange(t *testing.T) {
	tok := ched.TokenOf[int]()
	m := dynmap.New[struct{}]()
	for i := 0; i < 5; i++ {
		m.Put(ched.New(i, tok), struct{}{})
	}

	seen := 0
	m.Range(func(key ched.Object, _ struct{}) bool {
		seen++
		return true
	})
	assert.Equal(t, 5, seen)

	stopped := 0
	m.Range(func(key ched.Object, _ struct{}) bool {
		stopped++
		return false
	})
	assert.Equal(t, 1, stopped)
}
