package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/velocita/storefront/internal/cart/domain"
)

// NewSessionID mints a fresh cart session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Provider owns the cart stores for all active sessions. A store is created
// and restored on first access and reused afterwards, so overlapping
// requests for the same session share one serialized store.
type Provider struct {
	mu        sync.Mutex
	stores    map[string]*Store
	snapshots domain.SnapshotStore
	notifier  domain.Notifier
	opts      Options
}

// NewProvider creates a cart provider.
func NewProvider(snapshots domain.SnapshotStore, notifier domain.Notifier, opts Options) *Provider {
	return &Provider{
		stores:    make(map[string]*Store),
		snapshots: snapshots,
		notifier:  notifier,
		opts:      opts,
	}
}

// Get returns the store for the given cart session, restoring its persisted
// snapshot on first access.
func (p *Provider) Get(ctx context.Context, cartID string) *Store {
	p.mu.Lock()
	store, ok := p.stores[cartID]
	if !ok {
		store = NewStore(cartID, p.snapshots, p.notifier, p.opts)
		p.stores[cartID] = store
	}
	p.mu.Unlock()

	store.Restore(ctx)
	return store
}

type ctxKey struct{}

// NewContext binds a cart store to the context.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, store)
}

// FromContext returns the cart store bound to the context. Accessing the
// cart without a bound store is a wiring bug and fails fast with
// ErrStoreNotBound.
func FromContext(ctx context.Context) (*Store, error) {
	store, ok := ctx.Value(ctxKey{}).(*Store)
	if !ok || store == nil {
		return nil, domain.ErrStoreNotBound
	}
	return store, nil
}
