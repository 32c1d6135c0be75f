package main

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// memoryStorage is the in-memory Storage fake the capability split exists
// for. failPut simulates a quota-style write failure.
type memoryStorage struct {
	mu      sync.Mutex
	data    map[string]string
	failPut error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{data: make(map[string]string)}
}

func (m *memoryStorage) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryStorage) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut != nil {
		return m.failPut
	}
	m.data[key] = value
	return nil
}

func (m *memoryStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func TestSQLiteStorageRoundTrip(t *testing.T) {
	storage, err := openStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer storage.db.Close()

	_, ok, err := storage.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, storage.Put("k", `{"hello":"world"}`))
	value, ok, err := storage.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"hello":"world"}`, value)

	// last writer wins
	require.NoError(t, storage.Put("k", `{"hello":"again"}`))
	value, _, _ = storage.Get("k")
	require.Equal(t, `{"hello":"again"}`, value)

	require.NoError(t, storage.Delete("k"))
	_, ok, err = storage.Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStorageFailureInjection(t *testing.T) {
	storage := newMemoryStorage()
	storage.failPut = errors.New("quota exceeded")
	require.Error(t, storage.Put("k", "v"))
	_, ok, _ := storage.Get("k")
	require.False(t, ok)
}
