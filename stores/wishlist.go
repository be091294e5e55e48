package stores

import (
	"sync"

	"pharmacy-shop/models"
)

// WishlistStore keeps each user's saved products in insertion order with
// set semantics: a product appears at most once.
type WishlistStore struct {
	mu    sync.RWMutex
	lists map[int][]models.Product
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{lists: make(map[int][]models.Product)}
}

// Toggle removes the product when present, adds it otherwise. Returns
// true when the product ended up in the wishlist.
func (s *WishlistStore) Toggle(userID int, product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[userID]
	for i := range list {
		if list[i].ID == product.ID {
			s.lists[userID] = append(list[:i], list[i+1:]...)
			return false
		}
	}
	s.lists[userID] = append(list, product)
	return true
}

// Remove drops the product from the wishlist. Idempotent.
func (s *WishlistStore) Remove(userID, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[userID]
	for i := range list {
		if list[i].ID == productID {
			s.lists[userID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (s *WishlistStore) Contains(userID, productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.lists[userID] {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Entries returns a copy of the wishlist in insertion order.
func (s *WishlistStore) Entries(userID int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[userID]
	out := make([]models.Product, len(list))
	copy(out, list)
	return out
}

func (s *WishlistStore) Count(userID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[userID])
}
