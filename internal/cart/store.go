package cart

import (
	"sync"

	"bodega-storefront/internal/domain"
)

// Store holds the customer's in-progress selection. It is the only owner of
// cart state; every mutation goes through one of the named operations so the
// uniqueness and quantity invariants stay enforced in one place.
//
// Entries keep insertion order, are unique by item ID, and always have
// quantity >= 1: a quantity reaching zero removes the entry.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewStore() *Store {
	return &Store{}
}

// Add puts one unit of the menu item into the cart. If an entry with the
// same ID already exists its quantity goes up by one, otherwise a new entry
// with quantity 1 is appended. Add never fails.
func (s *Store) Add(item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.find(item.ID); idx >= 0 {
		s.items[idx].Quantity++
		return
	}
	s.items = append(s.items, domain.CartItem{
		ID:         item.ID,
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Quantity:   1,
	})
}

// Remove deletes the entry with the given ID. Removing an absent ID is a
// no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

// UpdateQuantity sets the entry's quantity. A quantity of zero or less
// removes the entry; updating an absent ID is a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(id)
		return
	}
	if idx := s.find(id); idx >= 0 {
		s.items[idx].Quantity = quantity
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the entries in insertion order. Mutating the
// returned slice does not touch the store.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalCents is the sum of price times quantity over all entries.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, it := range s.items {
		total += it.TotalCents()
	}
	return total
}

// ItemCount is the sum of quantities over all entries, not the number of
// distinct entries.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *Store) find(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) remove(id string) {
	if idx := s.find(id); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
}
