// Package store persists named path lists.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/olavoasantos/resolver/pkg/resolver"
	"github.com/olavoasantos/resolver/pkg/resolver/pathlist"
)

// Store persists path lists under caller-chosen names.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores list under name, replacing any previous version.
	Save(name string, list resolver.PathList) error

	// Load retrieves the latest version of a path list.
	// Returns ErrNotFound if nothing is stored under name.
	Load(name string) (resolver.PathList, error)

	// List returns metadata for every stored path list, ordered by name.
	// Returns empty slice (not error) if the store is empty.
	List() ([]Info, error)

	// Delete removes a path list.
	// Returns nil if nothing is stored under name.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the path list.
type Info struct {
	Name      string
	Version   int
	UpdatedAt time.Time
	Size      int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no path list is stored under a name.
	ErrNotFound = errors.New("path list not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("path list store closed")

	// ErrInvalidName indicates an empty path list name.
	ErrInvalidName = errors.New("path list name is required")
)

// encode serializes a path list for storage.
func encode(list resolver.PathList) ([]byte, error) {
	if list == nil {
		list = resolver.PathList{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode path list: %w", err)
	}
	return data, nil
}

// decode restores a stored path list.
func decode(data []byte) (resolver.PathList, error) {
	list, err := pathlist.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode path list: %w", err)
	}
	return list, nil
}
