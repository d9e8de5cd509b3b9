package repository

import (
	"context"
	"sync"

	"github.com/velocita/storefront/internal/cart/domain"
)

// MemorySnapshotStore keeps cart snapshots in process memory. It backs
// tests and standalone mode; snapshots do not survive a restart.
type MemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemorySnapshotStore creates an in-memory snapshot store
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{snapshots: make(map[string][]byte)}
}

// Load reads the persisted snapshot for a cart
func (s *MemorySnapshotStore) Load(ctx context.Context, cartID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.snapshots[cartID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save writes the snapshot for a cart, replacing any previous one
func (s *MemorySnapshotStore) Save(ctx context.Context, cartID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.snapshots[cartID] = stored
	return nil
}

// Delete removes the snapshot for a cart
func (s *MemorySnapshotStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshots, cartID)
	return nil
}
