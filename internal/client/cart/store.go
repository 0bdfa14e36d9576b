package cart

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Store is the cart. Every mutation is written to storage before it becomes
// visible; if the write fails the cart is left as it was.
type Store struct {
	mu    sync.Mutex
	repo  storage.Repository
	log   logging.Logger
	items []models.CartItem
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore loads the cart saved in repo. Missing or unreadable data yields an
// empty cart.
func NewStore(ctx context.Context, repo storage.Repository, opts ...Option) *Store {
	s := &Store{repo: repo, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.items = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []models.CartItem {
	raw, err := s.repo.Get(ctx, storageKey)
	if err != nil {
		s.log.Warn(ctx, "cart storage unreadable, starting empty", "error", err)
		return nil
	}
	items, err := decode(raw)
	if err != nil {
		s.log.Warn(ctx, "cart data corrupt, starting empty", "error", err)
		return nil
	}
	items = normalize(items)
	s.log.Debug(ctx, "cart loaded", "lines", len(items))
	return items
}

// commit persists next and, only on success, makes it the current state.
// Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []models.CartItem) error {
	data, err := encode(next)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.repo.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.items = next
	return nil
}

// Add puts item in the cart. If a line for the same product and size exists
// its quantity grows by item.Quantity and its snapshot is kept.
func (s *Store) Add(ctx context.Context, item models.CartItem) error {
	if item.ProductID == "" {
		return ErrInvalidItem
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.items)
	if i := indexOf(next, item.ProductID, item.Size); i >= 0 {
		next[i].Quantity += item.Quantity
	} else {
		next = append(next, item)
	}
	return s.commit(ctx, next)
}

// Remove deletes the line for (productID, size). Removing an absent line is a
// no-op.
func (s *Store) Remove(ctx context.Context, productID, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, productID, size)
}

func (s *Store) removeLocked(ctx context.Context, productID, size string) error {
	i := indexOf(s.items, productID, size)
	if i < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(s.items), i, i+1)
	return s.commit(ctx, next)
}

// UpdateQuantity sets the quantity of an existing line. A quantity below 1
// removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID, size string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return s.removeLocked(ctx, productID, size)
	}

	i := indexOf(s.items, productID, size)
	if i < 0 {
		return nil
	}
	next := slices.Clone(s.items)
	next[i].Quantity = quantity
	return s.commit(ctx, next)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []models.CartItem{})
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// TotalPrice is the sum of price * quantity over all lines.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

// TotalItems is the sum of quantities over all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}
