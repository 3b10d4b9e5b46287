package store

import (
	"sort"
	"sync"
	"time"

	"github.com/olavoasantos/resolver/pkg/resolver"
)

// MemoryStore is an in-memory path list store.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]storedList
	closed bool
}

// storedList holds an encoded path list with metadata for List().
type storedList struct {
	data      []byte
	version   int
	updatedAt time.Time
}

// NewMemoryStore creates a new in-memory path list store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]storedList),
	}
}

// Save implements Store. The list is encoded, so later changes by the
// caller do not affect the stored copy.
func (m *MemoryStore) Save(name string, list resolver.PathList) error {
	if name == "" {
		return ErrInvalidName
	}
	data, err := encode(list)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.data[name] = storedList{
		data:      data,
		version:   m.data[name].version + 1,
		updatedAt: time.Now().UTC(),
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(name string) (resolver.PathList, error) {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return nil, ErrStoreClosed
	}
	stored, ok := m.data[name]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return decode(stored.data)
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.data))
	for name, stored := range m.data {
		infos = append(infos, Info{
			Name:      name,
			Version:   stored.version,
			UpdatedAt: stored.updatedAt,
			Size:      int64(len(stored.data)),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the number of stored path lists.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
